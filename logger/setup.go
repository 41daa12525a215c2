package logger

import (
	"runtime"

	"github.com/ochinchina/sysctld/model"
	log "github.com/sirupsen/logrus"
)

// Setup builds the logrus logger configured by cfg together with its sink.
// The caller closes the sink on exit.
func Setup(cfg *model.Log) (*log.Logger, Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	sink := NewLogger(cfg.File, cfg.MaxBytes, cfg.Backups)
	l := log.New()
	l.SetOutput(sink)
	l.SetLevel(level)
	if cfg.Format == "json" {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
			DisableColors: runtime.GOOS == "windows",
		})
	}
	return l, sink, nil
}
