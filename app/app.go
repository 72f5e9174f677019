package app

import (
	"fmt"
	"log/slog"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/camparams-go/config"
	"github.com/soocke/camparams-go/ui/theme"
	"github.com/soocke/camparams-go/ui/view"
)

const (
	windowTitle  = "Camera Parameters"
	windowWidth  = 640
	windowHeight = 420
)

type app struct {
	c       *AppContainer
	cfgPath string
}

// Run opens the exporter window and blocks until it is closed. When scenePath is
// set the snapshot is loaded before the event loop starts.
func Run(cfg *config.Config, cfgPath, scenePath string, logger *slog.Logger) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	a := &app{c: BuildContainer(cfg, logger, cfgPath), cfgPath: cfgPath}

	App.WmTitle(windowTitle)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", windowWidth, windowHeight))
	theme.SetDark(cfg.DarkMode)

	a.c.RootView.Build(view.Handlers{
		OnOpenScene:     a.c.Presenter.OpenScene,
		OnExport:        a.c.Presenter.Export,
		OnOptionsChange: a.c.Presenter.Refresh,
		OnToggleTheme:   a.toggleTheme,
		OnExit:          a.exitHandler,
	})
	if scenePath != "" {
		a.c.Presenter.LoadScene(scenePath)
	}
	logger.Info("window started", "config", cfgPath, "scene", scenePath)

	App.Wait()
	return nil
}

func (a *app) toggleTheme() {
	a.c.Config.DarkMode = theme.ToggleDark()
	if a.cfgPath == "" {
		return
	}
	if err := a.c.Config.Save(a.cfgPath); err != nil {
		a.c.Logger.Error("config save failed", "error", err)
	}
}

func (a *app) exitHandler() {
	Destroy(App)
}
