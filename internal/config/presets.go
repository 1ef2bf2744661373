package config

import "sort"

// Preset is a ready-made invocation of one engine operation. Args are in
// the operation's argument order, formula excluded.
type Preset struct {
	Operation   string
	Formula     string
	Args        []string
	Description string
}

var Presets = map[string]*Preset{
	"derivative": {
		Operation: "diff", Formula: "2x+3/(x^4+5)", Args: []string{"1"},
		Description: "derivatives of a rational function at x=1",
	},
	"removable": {
		Operation: "diff", Formula: "sin(x)/x", Args: []string{"0"},
		Description: "derivatives across the removable singularity of sin(x)/x",
	},
	"integral": {
		Operation: "integrate", Formula: "2x+3/(x^4+5)", Args: []string{"1", "6"},
		Description: "definite integral over [1, 6]",
	},
	"gaussian": {
		Operation: "integrate", Formula: "exp(-x^2)", Args: []string{"-3", "3"},
		Description: "area under a Gaussian",
	},
	"root": {
		Operation: "root", Formula: "2x-3/(x^4+5)", Args: []string{"1"},
		Description: "root near x=1",
	},
	"max": {
		Operation: "max", Formula: "sin(x)+x/2", Args: []string{"1"},
		Description: "local maximum near x=1",
	},
	"ode1": {
		Operation: "ode1", Formula: "2x-t-2", Args: []string{"1", "2", "10"},
		Description: "dx/dt = 2x - t - 2 with x(0)=1 to t=2",
	},
	"ode2": {
		Operation: "ode2", Formula: "-2x-v+3t", Args: []string{"0", "1", "4", "10"},
		Description: "damped oscillator driven by 3t with x(0)=0, v(0)=1 to t=4",
	},
	"pendulum": {
		Operation: "ode2", Formula: "-sin(x)", Args: []string{"0.5", "0", "20", "400"},
		Description: "undamped pendulum released from 0.5 rad",
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
