package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"

	"github.com/oukeidos/withseekbar/internal/logger"
)

func main() {
	stylePath := pflag.String("style", "", "TOML or YAML style file applied to every bar")
	debug := pflag.Bool("debug", false, "Enable debug logging")
	pflag.Parse()

	level := logger.LevelInfo
	if *debug {
		level = logger.LevelDebug
	}
	logger.Init(level, nil)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
			os.Exit(1)
		}
	}()

	myApp := app.NewWithID("io.github.oukeidos.withseekbar.demo")
	w := myApp.NewWindow("seekbar demo")
	w.SetMaster()

	demo := newDemoApp(w, loadAttributes(myApp.Preferences(), *stylePath))
	w.SetContent(demo.content())
	w.Resize(fyne.NewSize(320, 480))
	w.CenterOnScreen()
	w.ShowAndRun()
}
