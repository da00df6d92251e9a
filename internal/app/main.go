package app

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/config"
	"github.com/Faultbox/learngl/internal/logger"
)

// ErrUsage is returned by a lesson factory when its arguments are wrong;
// Main exits with status 1 without logging it as a failure.
var ErrUsage = errors.New("usage")

// Main is the shared body of the lesson binaries. build receives the
// positional arguments left after flag parsing. It returns the exit code.
func Main(build func(args []string) (Lesson, error)) int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.SavePath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", path)
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	lesson, err := build(config.Args())
	if err != nil {
		if !errors.Is(err, ErrUsage) {
			logger.Error("invalid arguments", zap.Error(err))
		}
		return 1
	}

	a, err := New(cfg, lesson)
	if err != nil {
		logger.Error("failed to start lesson", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("lesson error", zap.Error(err))
		return 1
	}

	logger.Info("lesson closed normally")
	return 0
}
