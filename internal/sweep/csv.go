package sweep

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"optimal-execution/internal/model"
)

// WriteTrajectoriesCSV writes a phi-keyed trajectory set as CSV: a time
// column followed by one value column per phi, in the given order. All
// trajectories share the same time grid.
func WriteTrajectoriesCSV(path string, phis []float64, byPhi map[float64]model.Trajectory) error {
	if len(phis) == 0 {
		return fmt.Errorf("no phi values")
	}
	first, ok := byPhi[phis[0]]
	if !ok {
		return fmt.Errorf("missing trajectory for phi=%v", phis[0])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, len(phis)+1)
	header = append(header, "time")
	for _, phi := range phis {
		header = append(header, "phi="+strconv.FormatFloat(phi, 'g', -1, 64))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, s := range first {
		row := make([]string, 0, len(phis)+1)
		row = append(row, fmtFloat(s.Time))
		for _, phi := range phis {
			tr, ok := byPhi[phi]
			if !ok || len(tr) != len(first) {
				return fmt.Errorf("trajectory for phi=%v does not match the shared grid", phi)
			}
			row = append(row, fmtFloat(tr[i].Value))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
