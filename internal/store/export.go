package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"time"
)

// Record describes one engine invocation and its result.
type Record struct {
	ID        string    `json:"id,omitempty"`
	Operation string    `json:"operation"`
	Formula   string    `json:"formula"`
	Variable  string    `json:"variable,omitempty"`
	Stepper   string    `json:"stepper,omitempty"`
	Args      []string  `json:"args"`
	Timestamp time.Time `json:"timestamp"`
	Result    any       `json:"result"`
}

func WriteJSON(w io.Writer, rec *Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rec)
}

func WriteCSV(w io.Writer, result any) error {
	header, rows, err := Table(result)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func ExportJSON(path string, rec *Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, rec)
}

func ExportCSV(path string, result any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, result)
}
