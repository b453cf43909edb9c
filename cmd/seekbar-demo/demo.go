package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/withseekbar/internal/logger"
	"github.com/oukeidos/withseekbar/internal/seekbar"
	"github.com/oukeidos/withseekbar/internal/ui"
)

type barEntry struct {
	name     string
	size     fyne.Size
	reversed bool
}

var demoBars = []barEntry{
	{name: "horizontal", size: fyne.NewSize(240, 36)},
	{name: "horizontal reversed", size: fyne.NewSize(240, 36), reversed: true},
	{name: "vertical", size: fyne.NewSize(36, 200)},
	{name: "vertical reversed", size: fyne.NewSize(36, 200), reversed: true},
}

type demoApp struct {
	window fyne.Window
	bars   []*ui.SeekBar
	labels []*widget.Label
	status *widget.Label
}

func newDemoApp(w fyne.Window, attrs seekbar.Attributes) *demoApp {
	d := &demoApp{window: w, status: widget.NewLabel("Drag any bar")}
	base := seekbar.ConfigFromAttributes(attrs)

	for _, entry := range demoBars {
		cfg := base
		cfg.ReverseProgress = base.ReverseProgress != entry.reversed
		d.addBar(entry, cfg)
	}
	return d
}

func (d *demoApp) addBar(entry barEntry, cfg seekbar.Config) {
	bar := ui.NewSeekBarWithConfig(cfg)
	label := widget.NewLabel(progressText(entry.name, bar.Progress(), bar.Max()))

	bar.OnProgressChanged = func(_ *ui.SeekBar, progress, max int) {
		withPanicGuard("demo."+entry.name+".changed", nil, func() {
			label.SetText(progressText(entry.name, progress, max))
		})
	}
	bar.OnProgressConfirmed = func(_ *ui.SeekBar, progress, max int) {
		withPanicGuard("demo."+entry.name+".confirmed", nil, func() {
			logger.Info("Progress confirmed", "bar", entry.name, "progress", progress, "max", max)
			d.status.SetText(fmt.Sprintf("%s set to %d", entry.name, progress))
		})
	}

	d.bars = append(d.bars, bar)
	d.labels = append(d.labels, label)
}

func progressText(name string, progress, max int) string {
	return fmt.Sprintf("%s: %d / %d", name, progress, max)
}

// content stacks horizontal bars and lines vertical bars up side by side,
// each in a fixed size cell.
func (d *demoApp) content() fyne.CanvasObject {
	var horizontal, vertical []fyne.CanvasObject
	for i, entry := range demoBars {
		box := container.NewGridWrap(entry.size, d.bars[i])
		cell := container.NewVBox(d.labels[i], box)
		if entry.size.Width > entry.size.Height {
			horizontal = append(horizontal, cell)
		} else {
			vertical = append(vertical, cell)
		}
	}
	return container.NewVBox(
		container.NewVBox(horizontal...),
		container.NewHBox(append(vertical, layout.NewSpacer())...),
		widget.NewSeparator(),
		d.status,
	)
}
