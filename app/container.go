package app

import (
	"log/slog"

	"github.com/soocke/camparams-go/config"
	"github.com/soocke/camparams-go/domain/export"
	"github.com/soocke/camparams-go/domain/scene"
	"github.com/soocke/camparams-go/ui/model"
	"github.com/soocke/camparams-go/ui/presenter"
	"github.com/soocke/camparams-go/ui/view"
)

// AppContainer assembles the model, exporter, root view and presenter.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Scene    *model.SceneModel
	Exporter *export.Exporter
	RootView *view.RootView

	Presenter *presenter.ExportPresenter
}

// BuildContainer constructs all components. No widgets are created here.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Scene = model.NewSceneModel()
	c.Exporter = export.NewExporter(logger, cfg)
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.Presenter = presenter.NewExportPresenter(c.Scene, c.Exporter, scene.Load, c.RootView, cfg, cfgPath, logger)
	return c
}
