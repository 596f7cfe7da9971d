// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Console as a path keeps output on stderr.
const Console = "console"

// Init parses level and points the standard logger at path, rotating the file
// with lumberjack. JSON output is used for files, text for the console.
func Init(level, path string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	if path == "" || path == Console {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		return nopCloser{}, nil
	}
	out := &lumberjack.Logger{
		Filename:   filepath.ToSlash(path),
		MaxSize:    5, // MB
		MaxBackups: 10,
		MaxAge:     30, // days
		Compress:   true,
	}
	log.SetOutput(out)
	log.SetFormatter(&log.JSONFormatter{})
	return out, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
