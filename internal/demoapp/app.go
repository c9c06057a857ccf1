// Package demoapp wires the IndicatorBar widget, presets, scripted replay and
// configuration persistence into a small desktop window.
package demoapp

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/indicatorbar/internal/config"
	"github.com/edward-ap/indicatorbar/internal/indicator"
	applog "github.com/edward-ap/indicatorbar/internal/log"
	"github.com/edward-ap/indicatorbar/internal/presets"
	"github.com/edward-ap/indicatorbar/internal/script"
	"github.com/edward-ap/indicatorbar/internal/ui"
)

// Options tune the demo window.
type Options struct {
	// Script, when set, can be replayed onto the bar from the toolbar.
	Script *script.Script
	// ReplayInterval paces scripted events; zero uses ui.DefaultReplayInterval.
	ReplayInterval time.Duration
	// Autoplay starts the script as soon as the window is built.
	Autoplay bool
	Logger   *slog.Logger
}

// App owns the fyne application, the window, the bar and its controls.
type App struct {
	fa     fyne.App
	w      fyne.Window
	config *config.Config
	log    *slog.Logger
	opts   Options

	model    *presets.Model
	bar      *ui.IndicatorBar
	replayer *ui.Replayer

	committedLbl *widget.Label
	presetSel    *widget.Select
	policyChk    *widget.Check
	enabledChk   *widget.Check
	replayBtn    *widget.Button

	// silentUpdating suppresses change handlers while widgets are synced from code.
	silentUpdating bool
}

// NewApp loads the configuration and builds the window on a new fyne app.
func NewApp(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = applog.Discard()
	}
	cfg, err := config.Load()
	if err != nil {
		opts.Logger.Warn("config load error", "err", err)
		cfg = config.Defaults()
	}
	fa := app.NewWithID(config.AppID)
	fa.Settings().SetTheme(theme.DarkTheme())
	if AppIcon != nil {
		fa.SetIcon(AppIcon)
	}
	return newApp(fa, cfg, opts)
}

func newApp(fa fyne.App, cfg *config.Config, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = applog.Discard()
	}
	a := &App{
		fa:     fa,
		config: cfg,
		log:    opts.Logger,
		opts:   opts,
		model:  presets.NewModel(cfg.Preset),
	}
	a.w = fa.NewWindow("IndicatorBar")
	a.w.SetMaster()
	if AppIcon != nil {
		a.w.SetIcon(AppIcon)
	}
	a.buildUI()
	a.w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))

	a.w.SetCloseIntercept(func() {
		sz := a.w.Canvas().Size()
		if sz.Width > 0 && sz.Height > 0 {
			cfg.WindowW = int(sz.Width)
			cfg.WindowH = int(sz.Height)
		}
		a.replayer.Stop()
		a.save()
		a.w.Close()
		fa.Quit()
	})
	a.w.Canvas().SetOnTypedKey(a.handleShortcutKey)

	if opts.Autoplay && opts.Script != nil {
		a.startReplay()
	}
	return a
}

// Run shows the window and blocks until it closes.
func (a *App) Run() {
	a.w.ShowAndRun()
}

func (a *App) buildUI() {
	bar, err := ui.NewIndicatorBar(a.config.Min, a.config.Max, a.config.Step)
	if err != nil {
		// applyRuntimeDefaults keeps the stored range valid; this only trips on
		// a hand-built Config.
		a.log.Warn("invalid range in config", "err", err)
		bar, _ = ui.NewIndicatorBar(indicator.DefaultMin, indicator.DefaultMax, indicator.DefaultStep)
	}
	a.bar = bar
	a.bar.Controller().SetLogger(a.log)
	a.bar.Controller().OnReject = func(id indicator.PointerID) {
		a.log.Info("second pointer ignored", "pointer", int(id))
	}
	_ = a.bar.SetProgress(a.config.Progress)
	a.bar.SetDisplayPolicy(a.config.DisplayPolicy())
	if a.config.Disabled {
		a.bar.Disable()
	}
	a.bar.OnCommit = a.handleCommit
	a.replayer = ui.NewReplayer(a.bar, a.opts.ReplayInterval)

	a.committedLbl = widget.NewLabel("")
	a.committedLbl.Alignment = fyne.TextAlignCenter
	a.updateCommittedLabel(a.bar.Value())

	a.presetSel = widget.NewSelect(presets.Names(), a.selectPreset)
	a.presetSel.PlaceHolder = "Custom"
	if a.config.Preset != "" {
		a.silentUpdating = true
		a.presetSel.SetSelected(a.model.Current.Name)
		a.silentUpdating = false
	}

	// Checked is set before OnChanged so building the window does not save.
	a.policyChk = widget.NewCheck("Always show value", nil)
	a.policyChk.Checked = a.config.DisplayPolicy() == indicator.AlwaysShow
	a.policyChk.OnChanged = a.setAlwaysShow

	a.enabledChk = widget.NewCheck("Enabled", nil)
	a.enabledChk.Checked = !a.config.Disabled
	a.enabledChk.OnChanged = a.setEnabled

	a.replayBtn = widget.NewButtonWithIcon("Replay", theme.MediaPlayIcon(), a.startReplay)
	if a.opts.Script == nil {
		a.replayBtn.Disable()
	}

	controls := container.NewHBox(a.presetSel, a.policyChk, a.enabledChk, a.replayBtn)
	content := container.NewBorder(nil, container.NewVBox(a.committedLbl, controls), nil, nil,
		container.NewPadded(a.bar))
	a.w.SetContent(content)
}

func (a *App) handleCommit(progress float64, value int64) {
	a.log.Info("commit", "progress", progress, "value", value)
	a.config.Progress = progress
	a.updateCommittedLabel(value)
	a.save()
}

func (a *App) updateCommittedLabel(v int64) {
	a.committedLbl.SetText(fmt.Sprintf("Committed: %d  %s", v, a.bar.Range()))
}

// selectPreset applies the named preset; bad presets are reported, not applied.
func (a *App) selectPreset(name string) {
	if a.silentUpdating {
		return
	}
	p, err := a.model.Select(name)
	if err == nil {
		err = presets.Apply(p, a.bar)
	}
	if err != nil {
		dialog.ShowError(err, a.w)
		return
	}
	a.config.ApplyPreset(p)
	a.updateCommittedLabel(a.bar.Value())
	a.save()
}

func (a *App) setAlwaysShow(on bool) {
	p := indicator.HideWhileDragging
	if on {
		p = indicator.AlwaysShow
	}
	a.bar.SetDisplayPolicy(p)
	a.config.Policy = p.String()
	a.save()
}

func (a *App) setEnabled(on bool) {
	if on {
		a.bar.Enable()
	} else {
		a.bar.Disable()
	}
	a.config.Disabled = !on
	a.save()
}

func (a *App) startReplay() { a.replay() }

// replay configures the script's range, if any, and animates its events. The
// returned channel closes when the replay ends; it is nil when nothing started.
func (a *App) replay() <-chan struct{} {
	s := a.opts.Script
	if s == nil {
		return nil
	}
	if s.Range != nil {
		if err := a.bar.Configure(s.Range.Min, s.Range.Max, s.Range.Step); err != nil {
			dialog.ShowError(fmt.Errorf("script %q: %w", s.Name, err), a.w)
			return nil
		}
		a.silentUpdating = true
		a.presetSel.ClearSelected()
		a.silentUpdating = false
		a.config.Preset = ""
		r := a.bar.Range()
		a.config.Min, a.config.Max, a.config.Step = r.Min(), r.Max(), r.Step()
	}
	a.log.Info("replaying script", "name", s.Name, "events", len(s.Events))
	return a.replayer.Start(s.Events)
}

// handleShortcutKey steps the bar with the arrow keys and picks presets with
// the digit keys.
func (a *App) handleShortcutKey(ke *fyne.KeyEvent) {
	if ke == nil || !a.bar.Frame().Enabled {
		return
	}
	r := a.bar.Range()
	v := a.bar.Value()
	switch ke.Name {
	case fyne.KeyLeft, fyne.KeyDown:
		v -= r.Step()
	case fyne.KeyRight, fyne.KeyUp:
		v += r.Step()
	case fyne.KeyHome:
		v = r.Min()
	case fyne.KeyEnd:
		v = r.Max()
	default:
		if idx := keyToPresetIndex(ke.Name); idx >= 0 && idx < len(a.model.Presets) {
			a.presetSel.SetSelected(a.model.Presets[idx].Name)
		}
		return
	}
	v = max(r.Min(), min(r.Max(), v))
	if err := a.bar.SetValue(v); err != nil {
		a.log.Warn("step failed", "err", err)
		return
	}
	a.handleCommit(a.bar.Progress(), a.bar.Value())
}

func keyToPresetIndex(key fyne.KeyName) int {
	switch key {
	case fyne.Key1:
		return 0
	case fyne.Key2:
		return 1
	case fyne.Key3:
		return 2
	case fyne.Key4:
		return 3
	}
	return -1
}

func (a *App) save() {
	if err := a.config.Save(); err != nil {
		a.log.Warn("config save error", "err", err)
	}
}
