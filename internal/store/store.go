package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// Store keeps saved runs as <base>/<id>/{record.json,data.csv}.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Save writes rec under a fresh ID and returns it.
func (s *Store) Save(rec *Record) (string, error) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	rec.ID = fmt.Sprintf("%s_%d", rec.Operation, rec.Timestamp.UnixNano())
	runDir := filepath.Join(s.baseDir, rec.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := ExportJSON(filepath.Join(runDir, "record.json"), rec); err != nil {
		return "", err
	}
	if err := ExportCSV(filepath.Join(runDir, "data.csv"), rec.Result); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// List returns saved runs oldest first, skipping unreadable entries.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	runs := make([]Record, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rec, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *rec)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

// Load reads a run's record. The result is decoded generically.
func (s *Store) Load(id string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "record.json"))
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadTable reads a run's numeric columns back. Non-numeric cells read as
// zero.
func (s *Store) LoadTable(id string) ([]string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "data.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("store: %s has no header", id)
	}

	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, len(record))
		for i, cell := range record {
			row[i], _ = strconv.ParseFloat(cell, 64)
		}
		rows = append(rows, row)
	}
	return records[0], rows, nil
}
