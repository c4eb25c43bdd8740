package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mgrid/casim/internal/metrics"
)

type ExportData struct {
	Mode     string          `json:"mode"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Rule     string          `json:"rule,omitempty"`
	Boundary string          `json:"boundary"`
	Pattern  string          `json:"pattern,omitempty"`
	Seed     int64           `json:"seed"`
	Steps    int             `json:"steps"`
	Log      []metrics.Step  `json:"log"`
	Summary  metrics.Summary `json:"summary"`
}

// ExportJSON writes a run's full metrics log and summary to path, or to
// stdout when path is empty.
func ExportJSON(path string, data ExportData) error {
	var out io.Writer = os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
