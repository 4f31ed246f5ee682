package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type logEntity struct {
	level        logrus.Level
	formatter    logrus.Formatter
	writer       io.Writer
	reportCaller bool
}

type FuncOpts func(*logEntity)

func WithLevel(level uint) FuncOpts {
	return func(le *logEntity) {
		le.level = convertLevel(level)
	}
}

func WithFormatter(formatter logrus.Formatter) FuncOpts {
	return func(le *logEntity) {
		le.formatter = formatter
	}
}

func WithWriter(w io.Writer) FuncOpts {
	return func(le *logEntity) {
		le.writer = w
	}
}

func WithCaller(caller bool) FuncOpts {
	return func(le *logEntity) {
		le.reportCaller = caller
	}
}

type log struct {
	*logrus.Logger
}

func NewLog(opts ...FuncOpts) Logger {
	le := &logEntity{
		level: logrus.DebugLevel,
		formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		},
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(le)
	}
	l := logrus.New()
	l.SetFormatter(le.formatter)
	l.SetLevel(le.level)
	l.SetOutput(le.writer)
	l.SetReportCaller(le.reportCaller)
	return &log{Logger: l}
}

func (l *log) Log(ctx context.Context, level uint, fields map[string]interface{}, v ...interface{}) {
	data := make(logrus.Fields, len(fields))
	for k, val := range fields {
		switch e := val.(type) {
		case error:
			// errors are dropped by encoding/json otherwise
			data[k] = e.Error()
		default:
			data[k] = val
		}
	}
	entry := l.WithContext(ctx).WithFields(data)
	if len(v) == 0 {
		entry.Log(convertLevel(level))
		return
	}
	entry.Log(convertLevel(level), fmt.Sprint(v...))
}

func convertLevel(level uint) logrus.Level {
	var logrusLevel logrus.Level
	switch level {
	case PanicLevel:
		logrusLevel = logrus.PanicLevel
	case FatalLevel:
		logrusLevel = logrus.FatalLevel
	case ErrorLevel:
		logrusLevel = logrus.ErrorLevel
	case WarnLevel:
		logrusLevel = logrus.WarnLevel
	case InfoLevel:
		logrusLevel = logrus.InfoLevel
	case DebugLevel:
		logrusLevel = logrus.DebugLevel
	case TraceLevel:
		logrusLevel = logrus.TraceLevel
	default:
		logrusLevel = logrus.DebugLevel
	}
	return logrusLevel
}
