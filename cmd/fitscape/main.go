package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/fitscape/internal/alphabet"
	"github.com/san-kum/fitscape/internal/annotate"
	"github.com/san-kum/fitscape/internal/config"
	"github.com/san-kum/fitscape/internal/export"
	"github.com/san-kum/fitscape/internal/figure"
	"github.com/san-kum/fitscape/internal/landscape"
	"github.com/san-kum/fitscape/internal/logging"
	"github.com/san-kum/fitscape/internal/viz"
)

var (
	configFile string
	preset     string
	theme      string
	pairs      []string
	verbose    bool
	// show
	outFile string
	noOpen  bool
	// svg
	svgOut    string
	svgWidth  int
	svgHeight int
	svgStyle  string
	// profile
	rowSymbol string
	// config
	writeConfig string

	logger = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fitscape",
		Short: "amino-acid pair fitness landscape",
		Long:  "fitscape renders a synthetic fitness landscape over pairs of amino acids with an annotated path.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage: true,
		RunE:         showFigure,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "camera preset")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().StringArrayVar(&pairs, "pair", nil, "annotated pair such as A,C (repeatable, replaces the default path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&outFile, "out", "", "html output path (default: temp file)")
	rootCmd.Flags().BoolVar(&noOpen, "no-open", false, "write the page without opening a browser")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "render the landscape in the browser",
		Args:  cobra.NoArgs,
		RunE:  showFigure,
	}
	showCmd.Flags().StringVar(&outFile, "out", "", "html output path (default: temp file)")
	showCmd.Flags().BoolVar(&noOpen, "no-open", false, "write the page without opening a browser")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive 3d view in the terminal",
		Args:  cobra.NoArgs,
		RunE:  viewTerminal,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write a static svg snapshot",
		Args:  cobra.NoArgs,
		RunE:  writeSVG,
	}
	svgCmd.Flags().StringVar(&svgOut, "out", "landscape.svg", "svg output path")
	svgCmd.Flags().IntVar(&svgWidth, "width", 900, "width in pixels")
	svgCmd.Flags().IntVar(&svgHeight, "height", 700, "height in pixels")
	svgCmd.Flags().StringVar(&svgStyle, "style", "vector", "vector or braille")

	pointsCmd := &cobra.Command{
		Use:   "points",
		Short: "list the annotated path",
		Args:  cobra.NoArgs,
		RunE:  listPoints,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot fitness along the path",
		Args:  cobra.NoArgs,
		RunE:  plotProfile,
	}
	profileCmd.Flags().StringVar(&rowSymbol, "row", "", "also plot f(SYMBOL, ·) across the alphabet")

	figureCmd := &cobra.Command{
		Use:   "figure",
		Short: "print the figure json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fig, err := buildFigure()
			if err != nil {
				return err
			}
			return figure.WriteJSON(cmd.OutOrStdout(), fig)
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}
	configCmd.Flags().StringVar(&writeConfig, "write", "", "write the configuration to this path instead")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list camera presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tX\tY\tZ")
			for _, name := range config.ListPresets() {
				eye, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", name, eye.X, eye.Y, eye.Z)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(showCmd, viewCmd, svgCmd, pointsCmd, profileCmd, figureCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configFile, err)
		}
		cfg = loaded
		logger.Debug("Loaded config", zap.String("path", configFile))
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", err, preset, config.ListPresets())
		}
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if _, err := viz.LookupTheme(cfg.Theme); err != nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", err, cfg.Theme, viz.ThemeNames())
	}
	if len(pairs) > 0 {
		cfg.Pairs = pairs
	}
	return cfg, nil
}

// pipeline runs generation then annotation once, in that order.
func pipeline() (*config.Config, *landscape.Landscape, *annotate.Path, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	land, err := landscape.Generate(alphabet.AminoAcids.Len())
	if err != nil {
		return nil, nil, nil, err
	}
	lo, hi := land.Bounds()
	logger.Debug("Generated landscape",
		zap.Int("size", land.Size()),
		zap.Float64("min", lo),
		zap.Float64("max", hi))

	list, err := annotate.ParsePairs(cfg.Pairs)
	if err != nil {
		return nil, nil, nil, err
	}
	path, err := annotate.Build(alphabet.AminoAcids, land, list)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("annotate path: %w", err)
	}
	logger.Debug("Built path",
		zap.Int("points", len(path.Points)),
		zap.Int("segments", len(path.Segments)))

	return cfg, land, path, nil
}

func buildFigure() (*figure.Figure, error) {
	cfg, land, path, err := pipeline()
	if err != nil {
		return nil, err
	}
	return figure.Build(cfg, alphabet.AminoAcids, land, path), nil
}

func showFigure(cmd *cobra.Command, args []string) error {
	cfg, land, path, err := pipeline()
	if err != nil {
		return err
	}
	fig := figure.Build(cfg, alphabet.AminoAcids, land, path)

	out := outFile
	if out == "" {
		out = cfg.Output
	}
	written, err := figure.Show(fig, out, !noOpen)
	if written != "" {
		logger.Info("Wrote figure", zap.String("path", written), zap.Int("traces", len(fig.Data)))
	}
	if err != nil {
		return fmt.Errorf("show figure: %w", err)
	}
	return nil
}

func eyeOf(cfg *config.Config) viz.Vec3 {
	return viz.Vec3{X: cfg.Camera.X, Y: cfg.Camera.Y, Z: cfg.Camera.Z}
}

func viewTerminal(cmd *cobra.Command, args []string) error {
	cfg, land, path, err := pipeline()
	if err != nil {
		return err
	}
	lo, hi := land.Bounds()
	summary := []string{
		fmt.Sprintf("%d×%d landscape, fitness %.2f..%.2f, %d annotated points",
			land.Size(), land.Size(), lo, hi, len(path.Points)),
	}
	v := viz.NewViewer(cfg.Title, viz.NewScene(land, path), viz.NewCamera(eyeOf(cfg)), cfg.Theme, summary)
	return viz.Run(v)
}

// Braille cells are 2x4 dots drawn at 4 pixels per dot.
const (
	brailleScale      = 4
	brailleCellWidth  = 2 * brailleScale
	brailleCellHeight = 4 * brailleScale
)

var errSVGSize = errors.New("svg: invalid size")

func checkSVGSize(style string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d must be positive", errSVGSize, width, height)
	}
	if style == "braille" && (width < brailleCellWidth || height < brailleCellHeight) {
		return fmt.Errorf("%w: braille needs at least %dx%d, got %dx%d",
			errSVGSize, brailleCellWidth, brailleCellHeight, width, height)
	}
	return nil
}

func writeSVG(cmd *cobra.Command, args []string) error {
	if err := checkSVGSize(svgStyle, svgWidth, svgHeight); err != nil {
		return err
	}
	cfg, land, path, err := pipeline()
	if err != nil {
		return err
	}
	scene := viz.NewScene(land, path)
	cam := viz.NewCamera(eyeOf(cfg))
	th := viz.GetTheme(cfg.Theme)

	var svg string
	switch svgStyle {
	case "vector":
		svg = export.SceneToSVG(scene, cam, svgWidth, svgHeight, th)
	case "braille":
		canvas := viz.NewCanvas(svgWidth/brailleCellWidth, svgHeight/brailleCellHeight)
		viz.Render3D(canvas, scene, cam)
		svg = export.CanvasToSVG(canvas, brailleScale, th)
	default:
		return fmt.Errorf("unknown svg style: %s (available: vector, braille)", svgStyle)
	}

	f, err := os.Create(svgOut)
	if err != nil {
		return err
	}
	if err := export.WriteSVG(f, svg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("Wrote svg", zap.String("path", svgOut), zap.String("style", svgStyle))
	return nil
}

func listPoints(cmd *cobra.Command, args []string) error {
	cfg, _, path, err := pipeline()
	if err != nil {
		return err
	}

	best := 0
	for k, pt := range path.Points {
		if pt.Height > path.Points[best].Height {
			best = k
		}
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPAIR\tI\tJ\tFITNESS\tLABEL")
	for k, pt := range path.Points {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.6f\t%s\n", k, pt.Pair, pt.I, pt.J, pt.Height, pt.Label())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	th := viz.GetTheme(cfg.Theme)
	header := lipgloss.NewStyle().Bold(true)
	peak := lipgloss.NewStyle().Foreground(th.Accent)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	out := cmd.OutOrStdout()
	for k, line := range lines {
		switch {
		case k == 0:
			line = header.Render(line)
		case len(path.Points) > 0 && k-1 == best:
			line = peak.Render(line)
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "\n%d points, %d segments\n", len(path.Points), len(path.Segments))
	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	_, land, path, err := pipeline()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(path.Points) > 0 {
		stops := make([]string, len(path.Points))
		for k, pt := range path.Points {
			stops[k] = pt.Pair.String()
		}
		graph := asciigraph.Plot(path.Heights(),
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("fitness along path: "+strings.Join(stops, " → ")),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	if rowSymbol == "" {
		return nil
	}
	i, err := alphabet.AminoAcids.Index(rowSymbol)
	if err != nil {
		return err
	}
	row, err := land.Row(i)
	if err != nil {
		return err
	}
	graph := asciigraph.Plot(row,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("f(%s, ·) over %s", rowSymbol, alphabet.Symbols)),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if writeConfig != "" {
		if err := config.Save(writeConfig, cfg); err != nil {
			return err
		}
		logger.Info("Wrote config", zap.String("path", writeConfig))
		return nil
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
