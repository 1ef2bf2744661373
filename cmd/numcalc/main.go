package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/numcalc/internal/calc"
	"github.com/san-kum/numcalc/internal/calculus"
	"github.com/san-kum/numcalc/internal/config"
	"github.com/san-kum/numcalc/internal/expr"
	"github.com/san-kum/numcalc/internal/integrators"
	"github.com/san-kum/numcalc/internal/store"
	"github.com/san-kum/numcalc/internal/viz"
)

var (
	configFile string
	format     string
	variable   string
	stepper    string
	dataDir    string
	verbose    bool
	save       bool
	showPlot   bool
	width      int
	height     int
)

// operation is an engine call taking nargs numeric arguments followed by
// a formula.
type operation struct {
	title string
	nargs int
	usage string
	run   func(e *calculus.Engine, args []string, formula string) (any, error)
}

var operations = map[string]operation{
	"diff": {
		title: "derivatives", nargs: 1, usage: "diff [x0] [formula]",
		run: func(e *calculus.Engine, a []string, f string) (any, error) { return e.Differentiate(a[0], f) },
	},
	"integrate": {
		title: "integral", nargs: 2, usage: "integrate [xi] [xf] [formula]",
		run: func(e *calculus.Engine, a []string, f string) (any, error) { return e.Integrate(a[0], a[1], f) },
	},
	"root": {
		title: "root", nargs: 1, usage: "root [xi] [formula]",
		run: func(e *calculus.Engine, a []string, f string) (any, error) { return e.FindRoot(a[0], f) },
	},
	"max": {
		title: "local maximum", nargs: 1, usage: "max [xi] [formula]",
		run: func(e *calculus.Engine, a []string, f string) (any, error) { return e.FindMax(a[0], f) },
	},
	"ode1": {
		title: "dx/dt = f(x, t)", nargs: 3, usage: "ode1 [x0] [t] [steps] [formula]",
		run: func(e *calculus.Engine, a []string, f string) (any, error) { return e.SolveODE1(a[0], a[1], a[2], f) },
	},
	"ode2": {
		title: "d²x/dt² = f(x, v, t)", nargs: 4, usage: "ode2 [x0] [v0] [t] [steps] [formula]",
		run: func(e *calculus.Engine, a []string, f string) (any, error) {
			return e.SolveODE2(a[0], a[1], a[2], a[3], f)
		},
	},
}

// main registers the commands, starts the REPL when no subcommand is
// given, and exits 1 after printing any error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "numcalc",
		Short:         "expression evaluator and numerical analysis",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runREPL,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&format, "format", "text", "output format: text, json or csv")
	pf.StringVar(&variable, "var", "x", "variable of single-variable operations")
	pf.StringVar(&stepper, "stepper", integrators.DefaultStepper, "ode stepper: rk4 or euler")
	pf.StringVar(&dataDir, "data", ".numcalc", "directory of saved runs")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log solver progress to stderr")
	pf.BoolVar(&save, "save", false, "save the result under the data directory")

	evalCmd := &cobra.Command{
		Use:   "eval [formula] [name=value]...",
		Short: "evaluate a formula",
		Args:  cobra.MinimumNArgs(1),
		RunE:  evalFormula,
	}

	for _, name := range []string{"diff", "integrate", "root", "max", "ode1", "ode2"} {
		name := name
		op := operations[name]
		cmd := &cobra.Command{
			Use:   op.usage,
			Short: op.title,
			Args:  cobra.ExactArgs(op.nargs + 1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, name, args[:op.nargs], args[op.nargs])
			},
		}
		if strings.HasPrefix(name, "ode") {
			cmd.Flags().BoolVar(&showPlot, "plot", false, "plot the trajectory")
			cmd.Flags().IntVar(&width, "width", viz.DefaultWidth, "plot width")
			cmd.Flags().IntVar(&height, "height", viz.DefaultHeight, "plot height")
		}
		rootCmd.AddCommand(cmd)
	}

	plotCmd := &cobra.Command{
		Use:   "plot [formula] [lo] [hi]",
		Short: "plot a formula over an interval",
		Args:  cobra.ExactArgs(3),
		RunE:  plotFormula,
	}
	plotCmd.Flags().IntVar(&width, "width", viz.DefaultWidth, "plot width")
	plotCmd.Flags().IntVar(&height, "height", viz.DefaultHeight, "plot height")

	exampleCmd := &cobra.Command{
		Use:   "example [preset]",
		Short: "run a worked example",
		Args:  cobra.ExactArgs(1),
		RunE:  runExample,
	}
	exampleCmd.Flags().BoolVar(&showPlot, "plot", false, "plot ode trajectories")
	exampleCmd.Flags().IntVar(&width, "width", viz.DefaultWidth, "plot width")
	exampleCmd.Flags().IntVar(&height, "height", viz.DefaultHeight, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list worked examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOPERATION\tFORMULA\tARGS\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, p.Operation, p.Formula, strings.Join(p.Args, " "), p.Description)
			}
			return w.Flush()
		},
	}

	functionsCmd := &cobra.Command{
		Use:   "functions",
		Short: "list the unary functions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(strings.Join(expr.Functions(), " "))
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "interactive evaluator",
		Args:  cobra.NoArgs,
		RunE:  runREPL,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the saved table")
	showCmd.Flags().IntVar(&width, "width", viz.DefaultWidth, "plot width")
	showCmd.Flags().IntVar(&height, "height", viz.DefaultHeight, "plot height")
	runsCmd.AddCommand(showCmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "numcalc.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	})

	rootCmd.AddCommand(evalCmd, plotCmd, exampleCmd, presetsCmd, functionsCmd, replCmd, runsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// loadConfig reads --config when given; explicit flags win over file
// values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") || configFile == "" {
		cfg.Format = format
	}
	if flags.Changed("var") || configFile == "" {
		cfg.Variable = variable
	}
	if flags.Changed("stepper") || configFile == "" {
		cfg.Stepper = stepper
	}
	format = cfg.Format

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newEngine(cmd *cobra.Command) (*calculus.Engine, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger()
	e, err := calculus.New(cfg.Numeric(), calculus.WithLogger(logger), calculus.WithStepper(cfg.Stepper))
	if err != nil {
		return nil, nil, err
	}
	e, err = e.WithVariable(cfg.Variable)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("engine ready", "variable", e.Variable(), "stepper", e.Stepper(), "format", cfg.Format)
	return e, cfg, nil
}

func evalFormula(cmd *cobra.Command, args []string) error {
	e, _, err := newEngine(cmd)
	if err != nil {
		return err
	}

	bindings := make(map[string]string, len(args)-1)
	for _, arg := range args[1:] {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: binding %q is not name=value", calc.ErrInput, arg)
		}
		bindings[strings.TrimSpace(name)] = value
	}

	v, err := e.Evaluate(args[0], bindings)
	if err != nil {
		return err
	}
	return emit(&store.Record{Operation: "eval", Formula: args[0], Args: args[1:], Result: v}, "value")
}

func runOperation(cmd *cobra.Command, name string, args []string, formula string) error {
	e, _, err := newEngine(cmd)
	if err != nil {
		return err
	}
	op := operations[name]

	res, err := op.run(e, args, formula)
	if err != nil {
		return err
	}

	rec := &store.Record{Operation: name, Formula: formula, Args: args, Result: res}
	if strings.HasPrefix(name, "ode") {
		rec.Stepper = e.Stepper()
	} else {
		rec.Variable = e.Variable()
	}
	return emit(rec, op.title)
}

func runExample(cmd *cobra.Command, args []string) error {
	p := config.GetPreset(args[0])
	if p == nil {
		return fmt.Errorf("%w: unknown preset: %s (available: %v)", calc.ErrInput, args[0], config.ListPresets())
	}
	if format == "text" {
		fmt.Println(viz.Subtle.Render(p.Description))
		fmt.Printf("%s %s %s\n\n", p.Operation, strings.Join(p.Args, " "), p.Formula)
	}
	return runOperation(cmd, p.Operation, p.Args, p.Formula)
}

// emit writes rec in the selected format and saves it when asked.
func emit(rec *store.Record, title string) error {
	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(rec)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved run %s\n", id)
	}

	switch format {
	case "json":
		return store.WriteJSON(os.Stdout, rec)
	case "csv":
		return store.WriteCSV(os.Stdout, rec.Result)
	}

	fmt.Println(viz.Result(title, rec.Result))
	if showPlot {
		switch tr := rec.Result.(type) {
		case *integrators.Trajectory:
			fmt.Println(viz.PlotTrajectory(tr, width, height))
		case *integrators.Trajectory2:
			fmt.Println(viz.PlotTrajectory2(tr, width, height))
		}
	}
	return nil
}

func plotFormula(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := expr.New(args[0]).Func(cfg.Variable)
	if err != nil {
		return err
	}
	lo, err := expr.Evaluate(args[1], nil)
	if err != nil {
		return fmt.Errorf("lo: %w", err)
	}
	hi, err := expr.Evaluate(args[2], nil)
	if err != nil {
		return fmt.Errorf("hi: %w", err)
	}

	caption := fmt.Sprintf("%s, %s in [%s, %s]", args[0], cfg.Variable, viz.Number(lo), viz.Number(hi))
	fmt.Println(viz.PlotFunction(f, lo, hi, width, height, caption))
	return nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	e, _, err := newEngine(cmd)
	if err != nil {
		return err
	}
	return viz.RunREPL(e)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOPERATION\tTIME\tFORMULA\tARGS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Operation,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Formula,
			strings.Join(run.Args, " "),
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	rec, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("%w: run %s: %v", calc.ErrInput, args[0], err)
	}
	header, rows, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}

	if format == "json" {
		return store.WriteJSON(os.Stdout, rec)
	}

	fields := []viz.Field{
		{Label: "operation", Value: rec.Operation},
		{Label: "formula", Value: rec.Formula},
		{Label: "args", Value: strings.Join(rec.Args, " ")},
		{Label: "time", Value: rec.Timestamp.Format("2006-01-02 15:04:05")},
	}
	if rec.Variable != "" {
		fields = append(fields, viz.Field{Label: "variable", Value: rec.Variable})
	}
	if rec.Stepper != "" {
		fields = append(fields, viz.Field{Label: "stepper", Value: rec.Stepper})
	}
	fmt.Println(viz.KeyValues(args[0], fields))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = viz.Number(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if showPlot {
		fmt.Println(viz.PlotTable(header, rows, width, height))
	}
	return nil
}

func printError(err error) {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]any{
			"error": map[string]string{
				"kind":    calc.KindOf(err),
				"message": err.Error(),
			},
		})
		return
	}
	fmt.Fprintln(os.Stderr, viz.Error(err))
}
