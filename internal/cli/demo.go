package cli

import (
	"github.com/philipp01105/fanlog/color"
	"github.com/philipp01105/fanlog/logger"
)

func runDemo(log *logger.Logger) {
	log.Section("Basic logging")
	log.Info("Server started on port", 3000)
	log.Success("Database connected")
	log.Warn("Disk space low")
	log.Error("Failed to load module")

	log.Section("Debug")
	log.Debug("Only shown if DEBUG=true")

	log.Section("Custom label")
	log.Log("BUILD", color.BlueBright, "Building frontend...")
	log.Log("CUSTOM", color.Magenta, "Custom message output")

	log.Section("Scoped loggers")
	apiLog := log.Scope("API")
	apiLog.Info("GET /users")
	apiLog.Error("User not found")

	playerLog := log.Child("Player")
	playerLog.Success("Playback started")
	playerLog.Success(map[string]string{"playback": "https://test.url/test", "query": "language=eng"})
	playerLog.Scope("Loader").Info("Loading player...")

	log.Section("")

	log.Section("Blue line", logger.Width(80), logger.Color(color.Blue))
	log.Section("Red line", logger.Width(30), logger.Color(color.Red))
	log.Section("Green line", logger.Width(0), logger.Color(color.Green))
	log.Separator(logger.Width(60), logger.Color(color.GreenBright))
	log.Separator()
	log.Separator(logger.Width(40))

	log.Section("release", logger.Width(60), logger.Color(color.Cyan))

	log.Fatal("FATAL ERROR!")
}
