// Package logger provides the small leveled interface the library logs
// through, a zerolog-backed build, and an slog adapter.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	permission = 0664
)

// Interface is what the library accepts for its own diagnostics, such as
// auto-transform decisions. Both the zerolog build and the slog adapter
// satisfy it.
type Interface interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

type LogBuild struct {
	writer io.Writer
	path   string
}

type LogData struct {
	writer  io.Writer
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{}
}

func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

func (build *LogBuild) Make() (logData *LogData, err error) {
	logData = new(LogData)
	logData.writer = os.Stdout
	if build.writer != nil {
		logData.writer = build.writer
	}
	if build.path != "" {
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		logData.writer = zerolog.SyncWriter(logData.LogFile)
	}
	logData.Logger = zerolog.New(logData.writer).With().Timestamp().Logger()
	return
}

func (l *LogData) Error(msg string, args ...any) {
	l.event(l.Logger.Error(), msg, args)
}

func (l *LogData) Warn(msg string, args ...any) {
	l.event(l.Logger.Warn(), msg, args)
}

func (l *LogData) Info(msg string, args ...any) {
	l.event(l.Logger.Info(), msg, args)
}

func (l *LogData) Debug(msg string, args ...any) {
	l.event(l.Logger.Debug(), msg, args)
}

// event applies slog-style alternating key/value args to a zerolog event.
func (l *LogData) event(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	ev.Msg(msg)
}
