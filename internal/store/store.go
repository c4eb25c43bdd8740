// Package store persists simulation runs to disk: per-run metadata as
// JSON plus the metrics log as CSV.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mgrid/casim/internal/metrics"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string          `json:"id"`
	Mode      string          `json:"mode"`
	Timestamp time.Time       `json:"timestamp"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Rule      string          `json:"rule,omitempty"`
	Boundary  string          `json:"boundary"`
	Pattern   string          `json:"pattern,omitempty"`
	Seed      int64           `json:"seed"`
	Steps     int             `json:"steps"`
	Summary   metrics.Summary `json:"summary"`
}

// Save writes a run directory containing metadata.json and metrics.csv
// and returns the generated run ID.
func (s *Store) Save(meta RunMetadata, log []metrics.Step) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Mode, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "metrics.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"generation", "population", "density"}); err != nil {
		return "", err
	}
	for _, m := range log {
		row := []string{
			strconv.Itoa(m.Generation),
			strconv.Itoa(m.Population),
			strconv.FormatFloat(m.Density, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every saved run. Run directories with broken
// or missing metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadMetrics reads back a run's metrics.csv. Malformed rows are skipped.
func (s *Store) LoadMetrics(runID string) ([]metrics.Step, error) {
	csvPath := filepath.Join(s.baseDir, runID, "metrics.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []metrics.Step{}, nil
	}

	log := make([]metrics.Step, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		gen, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		pop, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		dens, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		log = append(log, metrics.Step{Generation: gen, Population: pop, Density: dens})
	}

	return log, nil
}
