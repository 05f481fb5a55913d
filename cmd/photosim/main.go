package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/san-kum/photosim/internal/automation"
	"github.com/san-kum/photosim/internal/config"
	"github.com/san-kum/photosim/internal/controller"
	"github.com/san-kum/photosim/internal/export"
	"github.com/san-kum/photosim/internal/gui"
	"github.com/san-kum/photosim/internal/photon"
	"github.com/san-kum/photosim/internal/scene"
	"github.com/san-kum/photosim/internal/spectrum"
	"github.com/san-kum/photosim/internal/storage"
	"github.com/san-kum/photosim/internal/tui"
	"github.com/san-kum/photosim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string
	metal      string
	wavelength int
	intensity  int
	voltage    float64
	theme      string
	// render
	format    string
	outFile   string
	outWidth  int
	outHeight int
	// sweep, compare
	sweepOpts   sweepFlags
	compareOpts sweepFlags
	noSave      bool

	log = slog.Default()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "photosim",
		Short: "photoelectric effect lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			log = l
			slog.SetDefault(l)
			return nil
		},
		RunE:         runTUI,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".photosim", "data directory")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&metal, "metal", config.DefaultMetal, "cathode metal")
	pf.IntVar(&wavelength, "wavelength", config.DefaultWavelength, "light wavelength (nm)")
	pf.IntVar(&intensity, "intensity", config.DefaultIntensity, "light intensity (0-100)")
	pf.Float64Var(&voltage, "voltage", config.DefaultVoltage, "anode voltage (V)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the raylib window",
		RunE:  runGUI,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the apparatus to svg or png",
		RunE:  renderScene,
	}
	renderCmd.Flags().StringVar(&format, "format", "svg", "output format (svg, png)")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default photosim.<format>, - for stdout)")
	renderCmd.Flags().IntVar(&outWidth, "width", config.DefaultWidth, "image width")
	renderCmd.Flags().IntVar(&outHeight, "height", config.DefaultHeight, "image height")

	colorCmd := &cobra.Command{
		Use:   "color [nm]",
		Short: "show the colour of a wavelength",
		Args:  cobra.ExactArgs(1),
		RunE:  showColor,
	}

	metalsCmd := &cobra.Command{
		Use:   "metals",
		Short: "list cathode metals",
		RunE:  listMetals,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "compute photon energy, stopping voltage and current",
		RunE:  evaluate,
	}

	sweepCmd := newSweepCmd()

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweeps",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored sweep to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	compareCmd := newCompareCmd()

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted lesson",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	rootCmd.AddCommand(guiCmd, renderCmd, colorCmd, metalsCmd, presetsCmd, evaluateCmd, sweepCmd, listCmd, plotCmd, exportJSONCmd, compareCmd, scenarioCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// sweepFlags holds the range flags of one sweeping command.
type sweepFlags struct {
	param string
	min   float64
	max   float64
	steps int
}

func (o *sweepFlags) register(cmd *cobra.Command, param automation.SweepParam) {
	cmd.Flags().StringVar(&o.param, "param", string(param), "swept input (voltage, wavelength, intensity)")
	cmd.Flags().Float64Var(&o.min, "min", 0, "range start")
	cmd.Flags().Float64Var(&o.max, "max", 0, "range end")
	cmd.Flags().IntVar(&o.steps, "steps", 81, "number of samples")
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one input and plot the current",
		RunE:  runSweep,
	}
	sweepOpts.register(cmd, automation.SweepVoltage)
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	return cmd
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [metal] [metal] ...",
		Short: "sweep several metals and plot them together",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareMetals,
	}
	compareOpts.register(cmd, automation.SweepWavelength)
	return cmd
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})), nil
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("metal") {
		cfg.Metal = metal
	}
	if flags.Changed("wavelength") {
		cfg.Wavelength = wavelength
	}
	if flags.Changed("intensity") {
		cfg.Intensity = intensity
	}
	if flags.Changed("voltage") {
		cfg.Voltage = voltage
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newController(cmd *cobra.Command) (*config.Config, *controller.Controller, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	in, err := cfg.Inputs()
	if err != nil {
		return nil, nil, err
	}
	log.Debug("inputs resolved", "metal", in.Metal, "nm", in.Wavelength, "intensity", in.Intensity, "volts", in.Voltage)
	return cfg, controller.New(in, log), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, ctrl, err := newController(cmd)
	if err != nil {
		return err
	}
	m, err := tui.New(ctrl, viz.GetTheme(cfg.Theme), log)
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), m)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, ctrl, err := newController(cmd)
	if err != nil {
		return err
	}
	app, err := gui.NewApp(ctrl, viz.GetTheme(cfg.Theme), cfg.FrameRate, log)
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

func renderScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("width") {
		outWidth = cfg.Export.Width
	}
	if !cmd.Flags().Changed("height") {
		outHeight = cfg.Export.Height
	}

	f := scene.Frame{
		Wavelength: float64(cfg.Wavelength),
		Intensity:  float64(cfg.Intensity),
		Voltage:    cfg.Voltage,
	}
	st := viz.GetTheme(cfg.Theme).SceneStyle()

	if outFile == "" {
		outFile = "photosim." + format
	}
	out := os.Stdout
	if outFile != "-" {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	switch format {
	case "svg":
		if _, err := out.WriteString(export.RenderSVG(f, st, outWidth, outHeight)); err != nil {
			return err
		}
	case "png":
		if err := export.RenderPNG(out, f, st, outWidth, outHeight); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (available: svg, png)", format)
	}

	log.Info("rendered", "format", format, "out", outFile, "width", outWidth, "height", outHeight)
	return nil
}

func showColor(cmd *cobra.Command, args []string) error {
	nm, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("wavelength %q: %w", args[0], err)
	}

	c := spectrum.WavelengthToRGB(nm)
	r, g, b := spectrum.Weights(nm)
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("        ")

	fmt.Printf("wavelength: %.1f nm  %s\n", nm, swatch)
	fmt.Printf("rgb: %d %d %d  (%s)\n", c.R, c.G, c.B, c.Hex())
	fmt.Printf("weights: r=%.3f g=%.3f b=%.3f\n", r, g, b)
	fmt.Printf("visibility: %.3f\n", spectrum.VisibilityFactor(nm))
	fmt.Printf("photon energy: %.3f eV\n", photon.PhotonEnergy(nm))
	return nil
}

func listMetals(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METAL\tSYMBOL\tWORK FUNCTION\tTHRESHOLD")
	for _, m := range photon.Metals() {
		fmt.Fprintf(w, "%s\t%s\t%.2f eV\t%.0f nm\n", m.Name, m.Symbol, m.WorkFunction, m.ThresholdWavelength())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMETAL\tWAVELENGTH\tINTENSITY\tVOLTAGE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d nm\t%d\t%+.1f V\n", name, p.Metal, p.Wavelength, p.Intensity, p.Voltage)
	}
	return w.Flush()
}

func evaluate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	in, err := cfg.Inputs()
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	o := photon.Evaluate(in)
	info := photon.Info(in.Metal)

	fmt.Printf("metal: %s (%s)\n", info.Name, info.Symbol)
	fmt.Printf("wavelength: %.0f nm  intensity: %.0f  voltage: %+.2f V\n\n", in.Wavelength, in.Intensity, in.Voltage)
	fmt.Printf("  photon energy:    %.3f eV\n", o.PhotonEnergy)
	fmt.Printf("  work function:    %.3f eV\n", o.ExitEnergy)
	fmt.Printf("  kinetic energy:   %.3f eV\n", o.KineticEnergy)
	fmt.Printf("  stopping voltage: %.3f V\n", o.StoppingVoltage)
	fmt.Printf("  current:          %s\n", photon.NewExpNumber(o.Current).Format("A"))
	if !o.Emitting() {
		fmt.Printf("\nno emission: threshold is %.0f nm\n", info.ThresholdWavelength())
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base, err := cfg.Inputs()
	if err != nil {
		return err
	}

	sweep := newSweep(cmd, sweepOpts, base)

	start := time.Now()
	points, err := automation.RunSweep(cmd.Context(), sweep)
	if err != nil {
		return err
	}
	log.Info("sweep complete", "param", sweep.Param, "points", len(points), "elapsed", time.Since(start))

	fmt.Printf("%s sweep on %s, %g .. %g\n\n", sweep.Param, base.Metal, sweep.Min, sweep.Max)
	fmt.Println(plotCurrents(automation.Currents(points), fmt.Sprintf("current (uA) vs %s", sweep.Param)))

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sweep, points)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

// newSweep builds a sweep from the flags of cmd. Without an explicit range
// the full span of the swept input is used.
func newSweep(cmd *cobra.Command, opts sweepFlags, base photon.Inputs) automation.Sweep {
	param := automation.SweepParam(opts.param)
	lo, hi := opts.min, opts.max
	if !cmd.Flags().Changed("min") && !cmd.Flags().Changed("max") {
		switch param {
		case automation.SweepVoltage:
			lo, hi = controller.MinVoltage, controller.MaxVoltage
		case automation.SweepWavelength:
			lo, hi = 200, 800
		case automation.SweepIntensity:
			lo, hi = controller.MinIntensity, controller.MaxIntensity
		}
	}
	return automation.Sweep{
		Base:  base,
		Param: param,
		Min:   lo,
		Max:   hi,
		Steps: opts.steps,
	}
}

func plotCurrents(currents []float64, caption string) string {
	data := make([]float64, len(currents))
	for i, c := range currents {
		data[i] = c * 1e6
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	)
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red, asciigraph.Green, asciigraph.Yellow, asciigraph.Blue,
	asciigraph.Magenta, asciigraph.Cyan, asciigraph.White,
}

func compareMetals(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base, err := cfg.Inputs()
	if err != nil {
		return err
	}

	metals := make([]photon.Metal, len(args))
	for i, name := range args {
		m, err := photon.ParseMetal(name)
		if err != nil {
			return err
		}
		metals[i] = m
	}

	sweep := newSweep(cmd, compareOpts, base)
	series, err := automation.CompareMetals(cmd.Context(), sweep, metals)
	if err != nil {
		return err
	}

	data := make([][]float64, len(series))
	colors := make([]asciigraph.AnsiColor, len(series))
	for i, points := range series {
		currents := automation.Currents(points)
		for j := range currents {
			currents[j] *= 1e6
		}
		data[i] = currents
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	fmt.Println(asciigraph.PlotMany(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Precision(3),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("current (uA) vs %s, %g .. %g", sweep.Param, sweep.Min, sweep.Max)),
	))
	fmt.Println()
	for i, m := range metals {
		info := photon.Info(m)
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(colors[i])))).Render("━━")
		fmt.Printf("  %s  %s  threshold %.0f nm\n", swatch, info.Name, info.ThresholdWavelength())
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMETAL\tTIME\tPARAM\tRANGE\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g..%g\t%d\n",
			run.ID,
			run.Metal,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Param,
			run.Min, run.Max,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("metal: %s\n", meta.Metal)
	fmt.Printf("samples: %d\n\n", len(points))
	fmt.Println(plotCurrents(automation.Currents(points), fmt.Sprintf("current (uA) vs %s", meta.Param)))
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	results, err := automation.RunScenario(cmd.Context(), sc, log)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tMETAL\tNM\tINTENSITY\tVOLTS\tPHOTON eV\tSTOP V\tCURRENT")
	for i, r := range results {
		label := r.Step.Label
		if label == "" {
			label = strconv.Itoa(i + 1)
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%+.2f\t%.3f\t%.3f\t%s\n",
			label,
			r.Inputs.Metal,
			r.Inputs.Wavelength,
			r.Inputs.Intensity,
			r.Inputs.Voltage,
			r.Outcome.PhotonEnergy,
			r.Outcome.StoppingVoltage,
			photon.NewExpNumber(r.Outcome.Current).Format("A"),
		)
	}
	return w.Flush()
}
