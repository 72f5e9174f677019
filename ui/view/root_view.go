package view

import (
	"log/slog"

	"github.com/soocke/camparams-go/config"
	"github.com/soocke/camparams-go/domain/camera"
	"github.com/soocke/camparams-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user actions the root view dispatches.
type Handlers struct {
	OnOpenScene     func()
	OnExport        func()
	OnOptionsChange func()
	OnToggleTheme   func()
	OnExit          func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Params ParamsPanel

	// Widgets
	StateLabel *TLabelWidget
	SceneLabel *TLabelWidget
	fileMenu   *MenuWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the menubar and layout. Handlers are invoked on user actions.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	menubar := Menu()
	rv.fileMenu = menubar.Menu()
	rv.fileMenu.AddCommand(Lbl("Open Scene Snapshot..."), Underline(0), Accelerator("Ctrl+O"), Command(h.OnOpenScene))
	rv.fileMenu.AddCommand(Lbl("Export Camera Parameters (.json)"), Underline(0), Accelerator("Ctrl+E"), Command(h.OnExport))
	rv.fileMenu.AddSeparator()
	rv.fileMenu.AddCommand(Lbl("Toggle Dark Mode"), Underline(7), Command(h.OnToggleTheme))
	rv.fileMenu.AddCommand(Lbl("Exit"), Underline(1), Accelerator("Ctrl+Q"), Command(h.OnExit))
	menubar.AddCascade(Lbl("File"), Underline(0), Mnu(rv.fileMenu))
	App.Configure(Mnu(menubar))
	Bind(App, "<Control-o>", Command(h.OnOpenScene))
	Bind(App, "<Control-e>", Command(h.OnExport))
	Bind(App, "<Control-q>", Command(h.OnExit))

	// Row 0: state label and action buttons
	rv.StateLabel = TLabel(Style(theme.StyleStateLabel), Txt("State: no scene"))
	Grid(rv.StateLabel, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(2), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	openBtn := TButton(Txt("Open Scene..."), Command(h.OnOpenScene))
	Grid(openBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exportBtn := TButton(Style(theme.StylePrimaryButton), Txt("Export..."), Command(h.OnExport))
	Grid(exportBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Style(theme.StyleDangerButton), Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: loaded scene
	rv.SceneLabel = TLabel(Style(theme.StyleSceneLabel), Txt("Scene: <none>"), Anchor("w"))
	Grid(rv.SceneLabel, Row(1), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	rv.Params = NewParamsPanel(rv.cfg, rv.cfgPath, rv.logger, h.OnOptionsChange)
	rv.Params.Build(2)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// ShowScene displays the loaded snapshot summary.
func (rv *RootView) ShowScene(path, summary string) {
	if rv != nil && rv.SceneLabel != nil {
		rv.SceneLabel.Configure(Txt("Scene: " + summary + "  [" + path + "]"))
	}
}

// ShowParams proxies to the parameters panel.
func (rv *RootView) ShowParams(p camera.CameraParameters) {
	if rv != nil && rv.Params != nil {
		rv.Params.ShowParams(p)
	}
}

// ClearParams resets the parameters panel.
func (rv *RootView) ClearParams() {
	if rv != nil && rv.Params != nil {
		rv.Params.Clear()
	}
}

// AskScenePath opens the file dialog for a scene snapshot. Returns "" on cancel.
func (rv *RootView) AskScenePath(initialDir string) string {
	files := GetOpenFile(
		Title("Open Scene Snapshot"),
		Initialdir(initialDir),
		Filetypes([]FileType{
			{TypeName: "Scene snapshot", Extensions: []string{".yaml", ".yml", ".json"}},
			{TypeName: "All files", Extensions: []string{"*"}},
		}),
	)
	if len(files) == 0 {
		return ""
	}
	return files[0]
}

// AskExportPath opens the save dialog for the parameter file. Returns "" on cancel.
func (rv *RootView) AskExportPath(initialDir, initialFile string) string {
	return GetSaveFile(
		Title("Export Camera Parameters"),
		Initialdir(initialDir),
		Initialfile(initialFile),
		Defaultextension(".json"),
		Filetypes([]FileType{{TypeName: "JSON", Extensions: []string{".json"}}}),
	)
}

// ReportError surfaces an error to the user.
func (rv *RootView) ReportError(title, msg string) {
	if rv != nil && rv.logger != nil {
		rv.logger.Error("ui error", "title", title, "message", msg)
	}
	MessageBox(Icon("error"), Title(title), Msg(msg))
}

// ReportInfo surfaces a success message to the user.
func (rv *RootView) ReportInfo(msg string) {
	if rv != nil && rv.logger != nil {
		rv.logger.Info(msg)
	}
	MessageBox(Icon("info"), Title("Camera Parameters"), Msg(msg))
}
