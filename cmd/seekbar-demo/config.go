package main

import (
	"fyne.io/fyne/v2"

	"github.com/oukeidos/withseekbar/internal/logger"
	"github.com/oukeidos/withseekbar/internal/seekbar"
	"github.com/oukeidos/withseekbar/internal/style"
)

const prefsPrefix = "seekbar."

// loadAttributes prefers an explicit style file and falls back to the app
// preferences under prefsPrefix.
func loadAttributes(prefs fyne.Preferences, stylePath string) seekbar.Attributes {
	if stylePath != "" {
		values, err := style.LoadFile(stylePath)
		if err == nil {
			if verr := values.Validate(); verr != nil {
				logger.Warn("Style file has problems, malformed values use defaults", "path", stylePath, "error", verr)
			}
			return values
		}
		logger.Error("Failed to load style file", "path", stylePath, "error", err)
	}
	return style.NewPreferences(prefs, prefsPrefix)
}
