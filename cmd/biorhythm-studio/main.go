package main

import (
	"log"
	"os"

	"biorhythm-studio/internal/app"
	"biorhythm-studio/internal/config"
	"biorhythm-studio/internal/logger"
)

// defaultPreferencesPath is used unless BIORHYTHM_PREFERENCES points
// elsewhere. A missing file is fine; defaults apply.
const defaultPreferencesPath = "preferences.toml"

func main() {
	prefsPath := os.Getenv("BIORHYTHM_PREFERENCES")
	if prefsPath == "" {
		prefsPath = defaultPreferencesPath
	}

	prefs, err := config.Load(prefsPath)
	if err != nil {
		log.Fatalf("Preferences load failed: %v", err)
	}

	logManager := logger.NewManager()
	defer logManager.Close()

	logManager.SetStdout(prefs.LogStdout)
	if err := logManager.SetLevelLabel(prefs.LogLevel); err != nil {
		logManager.Warn("Main", "unknown log level in preferences, keeping INFO", map[string]interface{}{
			"log_level": prefs.LogLevel,
		})
	}

	application := app.NewApplication(prefs, logManager)
	application.Run()
}
