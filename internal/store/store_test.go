package store

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/numcalc/internal/integrators"
	"github.com/san-kum/numcalc/internal/numeric"
)

func trajectory() *integrators.Trajectory2 {
	return &integrators.Trajectory2{
		Stepper: "rk4",
		Points: []integrators.Point2{
			{T: 0, X: 0, V: 1},
			{T: 0.5, X: 0.4, V: 0.75},
		},
	}
}

func TestTable(t *testing.T) {
	tests := []struct {
		name   string
		result any
		header string
		first  string
		rows   int
	}{
		{"value", 2.5, "value", "2.5", 1},
		{"diff", &numeric.DiffResult{X0: 1, Nonsingular: true, Derivs: [4]float64{2.5, 1, -0.5, 0.25}}, "x0,f,df,d2f,d3f,nonsingular", "1,2.5,1,-0.5,0.25,true", 1},
		{"integral", &numeric.IntegrateResult{Xi: 1, Xf: 6, Integral: 35.4, Subdivisions: 1024, Epsilon: 1e-12}, "xi,xf,integral,subdivisions,epsilon", "1,6,35.4,1024,1e-12", 1},
		{"root", &numeric.RootResult{Xi: 1, X: 0.3, BracketSteps: 2, RootSteps: 6, Epsilon: 1e-10}, "xi,x,bracket_steps,root_steps,epsilon", "1,0.3,2,6,1e-10", 1},
		{"max", &numeric.MaxResult{Xi: 1, X: 2, F: 1.9, BracketSteps: 4, MaxSteps: 10, Epsilon: 1e-5}, "xi,x,f,bracket_steps,max_steps,epsilon", "1,2,1.9,4,10,1e-05", 1},
		{"trajectory", trajectory(), "t,x,v", "0,0,1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, rows, err := Table(tt.result)
			if err != nil {
				t.Fatal(err)
			}
			if got := strings.Join(header, ","); got != tt.header {
				t.Errorf("expected header %s, got %s", tt.header, got)
			}
			if len(rows) != tt.rows {
				t.Fatalf("expected %d rows, got %d", tt.rows, len(rows))
			}
			if got := strings.Join(rows[0], ","); got != tt.first {
				t.Errorf("expected first row %s, got %s", tt.first, got)
			}
		})
	}
}

func TestTableUnsupported(t *testing.T) {
	if _, _, err := Table("text"); err == nil {
		t.Error("expected error for unsupported result")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, trajectory()); err != nil {
		t.Fatal(err)
	}
	want := "t,x,v\n0,0,1\n0.5,0.4,0.75\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	rec := &Record{Operation: "root", Formula: "x-1", Args: []string{"0"}, Result: &numeric.RootResult{X: 1}}
	if err := WriteJSON(&buf, rec); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Operation string `json:"operation"`
		Result    struct {
			X         float64 `json:"x"`
			RootSteps int     `json:"root_steps"`
		} `json:"result"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Operation != "root" || decoded.Result.X != 1 {
		t.Errorf("unexpected round trip %+v", decoded)
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	rec := &Record{Operation: "ode2", Formula: "-2x-v+3t", Stepper: "rk4", Args: []string{"0", "1", "0.5", "1"}, Result: trajectory()}
	runID, err := st.Save(rec)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" || !strings.HasPrefix(runID, "ode2_") {
		t.Errorf("unexpected run id %q", runID)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Formula != "-2x-v+3t" {
		t.Errorf("expected formula '-2x-v+3t', got '%s'", loaded.Formula)
	}

	header, rows, err := st.LoadTable(runID)
	if err != nil {
		t.Fatalf("load table failed: %v", err)
	}
	if len(header) != 3 || len(rows) != 2 {
		t.Fatalf("expected 3 columns and 2 rows, got %v and %d", header, len(rows))
	}
	if rows[1][1] != 0.4 {
		t.Errorf("expected x 0.4, got %v", rows[1][1])
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("expected one run %s, got %+v", runID, runs)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	runs, err := New(t.TempDir() + "/absent").List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
