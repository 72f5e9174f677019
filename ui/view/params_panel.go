package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/camparams-go/config"
	"github.com/soocke/camparams-go/domain/camera"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ParamsPanel shows the extracted camera parameters and the editable export options.
// Option edits are written back into *config.Config on ApplyChanges.
type ParamsPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	ShowParams(p camera.CameraParameters)
	Clear()
	ApplyChanges() // parses option fields into the config, persists it and notifies onApplied
}

type paramsPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func()
	applyBtn  *ButtonWidget
	values    map[string]*LabelWidget // read-only parameter values keyed by JSON name
	options   map[string]*TextWidget  // editable option fields keyed by internal id
}

var paramRows = []struct{ key, label string }{
	{"aspect_ratio", "Aspect Ratio"},
	{"image_width", "Image Width"},
	{"vertical_fov_in_degrees", "Vertical FOV (deg)"},
	{"look_from", "Look From"},
	{"look_at", "Look At"},
	{"vec_up", "Up"},
	{"defocus_angle_in_degrees", "Defocus Angle (deg)"},
	{"focus_distance", "Focus Distance"},
}

// NewParamsPanel creates the view bound to cfg. onApplied runs after options are saved.
func NewParamsPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func()) ParamsPanel {
	return &paramsPanel{
		cfg:       cfg,
		cfgPath:   cfgPath,
		logger:    logger,
		onApplied: onApplied,
		values:    make(map[string]*LabelWidget),
		options:   make(map[string]*TextWidget),
	}
}

func (v *paramsPanel) Build(startRow int) (row int) {
	row = startRow
	for _, r := range paramRows {
		lbl := Label(Txt(r.label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		val := Label(Txt("-"), Anchor("w"), Width(36))
		Grid(val, Row(row), Column(1), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		v.values[r.key] = val
		row++
	}

	makeOption := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.options[id] = w
		row++
	}
	makeOption("legacyHalfFOV", "Legacy Half FOV (true/false)", fmt.Sprintf("%t", v.cfg.LegacyHalfFOV))
	makeOption("indent", "JSON Indent", fmt.Sprintf("%d", v.cfg.Indent))
	v.applyBtn = Button(Txt("Apply Options"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *paramsPanel) ShowParams(p camera.CameraParameters) {
	set := func(key, text string) {
		if w := v.values[key]; w != nil {
			w.Configure(Txt(text))
		}
	}
	set("aspect_ratio", fmt.Sprintf("%.4f", p.AspectRatio))
	set("image_width", strconv.Itoa(p.ImageWidth))
	set("vertical_fov_in_degrees", fmt.Sprintf("%.4f", p.VerticalFOVInDegrees))
	set("look_from", formatVec(p.LookFrom))
	set("look_at", formatVec(p.LookAt))
	set("vec_up", formatVec(p.VecUp))
	set("defocus_angle_in_degrees", fmt.Sprintf("%.4f", p.DefocusAngleInDegrees))
	set("focus_distance", fmt.Sprintf("%.4f", p.FocusDistance))
}

func (v *paramsPanel) Clear() {
	for _, w := range v.values {
		if w != nil {
			w.Configure(Txt("-"))
		}
	}
}

func (v *paramsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *paramsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	if w := v.options["legacyHalfFOV"]; w != nil {
		if b, ok := parseBoolLoose(v.text(w)); ok {
			cfg.LegacyHalfFOV = b
		}
	}
	if w := v.options["indent"]; w != nil {
		if i, ok := parseIntField(v.text(w)); ok {
			cfg.Indent = i
		}
	}
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if v.cfgPath != "" {
		if err := v.cfg.Save(v.cfgPath); err != nil {
			if v.logger != nil {
				v.logger.Error("config save failed", "error", err)
			}
		} else if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
	if v.onApplied != nil {
		v.onApplied()
	}
}

func formatVec(a [3]float64) string {
	return fmt.Sprintf("[%.4f, %.4f, %.4f]", a[0], a[1], a[2])
}

// parsing helpers (unexported)
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
