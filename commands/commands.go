// Package commands defines the camparams command line surface.
//
// The desktop shell is injected as a GUILauncher so the command layer can be
// exercised without a display.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/soocke/camparams-go/config"
	"github.com/soocke/camparams-go/domain/camera"
	"github.com/soocke/camparams-go/domain/export"
)

// DefaultConfigPath is used when --config is not given.
const DefaultConfigPath = "camparams.json"

// LoggerFactory builds the process logger once flags are parsed.
type LoggerFactory func(level slog.Leveler) *slog.Logger

// GUILauncher opens the desktop window. scenePath may be empty.
type GUILauncher func(cfg *config.Config, cfgPath, scenePath string, logger *slog.Logger) error

type env struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

// New returns the camparams CLI application writing human output to out.
func New(out io.Writer, newLogger LoggerFactory, gui GUILauncher) *cli.App {
	e := &env{}

	app := cli.NewApp()
	app.Name = "camparams"
	app.Usage = "export the active scene camera as renderer camera parameters"
	app.Version = "0.1.0"
	app.Writer = out
	app.ErrWriter = out
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: DefaultConfigPath, Usage: "JSON configuration file"},
		cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
	}
	app.Before = func(c *cli.Context) error {
		e.cfgPath = c.GlobalString("config")
		cfg, err := config.Load(e.cfgPath)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("config %s: %v", e.cfgPath, err), 2)
		}
		if c.GlobalBool("debug") {
			cfg.Debug = true
		}
		e.cfg = cfg
		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		e.logger = newLogger(level)
		e.logger.Debug("config loaded", "path", e.cfgPath, "legacy_half_fov", cfg.LegacyHalfFOV, "indent", cfg.Indent)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "export",
			Usage: "convert a scene snapshot into a camera parameter file",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scene, s", Usage: "scene snapshot (.json, .yaml, .yml)"},
				cli.StringFlag{Name: "out, o", Value: "camera.json", Usage: "output parameter file"},
				cli.BoolFlag{Name: "legacy-half-fov", Usage: "emit half of the vertical FOV like earlier exporter versions"},
				cli.IntFlag{Name: "indent", Value: export.DefaultIndent, Usage: "spaces per JSON indent level"},
			},
			Action: func(c *cli.Context) error { return e.runExport(c) },
		},
		{
			Name:      "inspect",
			Usage:     "validate a camera parameter file and print the derived viewport",
			ArgsUsage: "FILE",
			Action:    func(c *cli.Context) error { return e.runInspect(c) },
		},
		{
			Name:  "gui",
			Usage: "open the desktop exporter",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scene, s", Usage: "scene snapshot to open on start"},
			},
			Action: func(c *cli.Context) error {
				if gui == nil {
					return cli.NewExitError("gui is not available in this build", 1)
				}
				scenePath := c.String("scene")
				if scenePath == "" {
					scenePath = e.cfg.LastScenePath
				}
				return gui(e.cfg, e.cfgPath, scenePath, e.logger)
			},
		},
	}
	return app
}

func (e *env) runExport(c *cli.Context) error {
	scenePath := c.String("scene")
	if scenePath == "" {
		return cli.NewExitError("export: --scene is required", 2)
	}
	cfg := *e.cfg
	if c.IsSet("legacy-half-fov") {
		cfg.LegacyHalfFOV = c.Bool("legacy-half-fov")
	}
	if c.IsSet("indent") {
		cfg.Indent = c.Int("indent")
	}
	_ = cfg.Validate()

	out := c.String("out")
	if _, err := export.NewExporter(e.logger, &cfg).ExportSnapshot(scenePath, out); err != nil {
		return cli.NewExitError(export.Describe(err), exitCode(err))
	}
	fmt.Fprintf(c.App.Writer, "Camera parameters exported to %s\n", out)
	return nil
}

func (e *env) runInspect(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.NewExitError("inspect: FILE is required", 2)
	}
	p, err := export.ReadJSON(path)
	if err != nil {
		return cli.NewExitError(export.Describe(err), exitCode(err))
	}
	v, err := camera.Viewport(p)
	if err != nil {
		return cli.NewExitError(export.Describe(err), exitCode(err))
	}
	w := c.App.Writer
	fmt.Fprintf(w, "image:          %dx%d (aspect %.4f)\n", v.ImageWidth, v.ImageHeight, p.AspectRatio)
	fmt.Fprintf(w, "vertical fov:   %.4f deg\n", p.VerticalFOVInDegrees)
	fmt.Fprintf(w, "look from:      %s\n", formatVec(p.LookFrom))
	fmt.Fprintf(w, "look at:        %s\n", formatVec(p.LookAt))
	fmt.Fprintf(w, "up:             %s\n", formatVec(p.VecUp))
	fmt.Fprintf(w, "focus distance: %.4f\n", p.FocusDistance)
	fmt.Fprintf(w, "defocus:        %.4f deg (radius %.4f)\n", p.DefocusAngleInDegrees, v.DefocusRadius)
	fmt.Fprintf(w, "viewport:       %.4f x %.4f\n", v.ViewportWidth, v.ViewportHeight)
	e.logger.Debug("inspected", "path", path, "u", v.U, "v", v.V, "w", v.W)
	return nil
}

func formatVec(v [3]float64) string {
	return fmt.Sprintf("[%.4f, %.4f, %.4f]", v[0], v[1], v[2])
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, camera.ErrUnsupportedProjection):
		return 3
	case errors.Is(err, export.ErrIOFailure):
		return 4
	default:
		return 1
	}
}
