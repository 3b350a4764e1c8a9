// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report writes sort benchmark results as structured log records.
//
// Records can go through any of several logging libraries; New selects one
// by name. All backends receive the same message and key/value pairs.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	kitlevel "github.com/go-kit/kit/log/level"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"
)

// A Logger writes records made of a message and alternating keys and
// values.
type Logger interface {
	Info(msg string, keyvals ...interface{})
	Error(err error, msg string, keyvals ...interface{})
	// Sync flushes buffered records.
	Sync() error
}

var backends = map[string]func(io.Writer) Logger{
	"zap":     newZap,
	"logrus":  newLogrus,
	"zerolog": newZerolog,
	"logr":    newLogr,
	"gokit":   newGokit,
}

// Backends returns the names accepted by New, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a Logger writing to w through the named backend.
func New(backend string, w io.Writer) (Logger, error) {
	f, ok := backends[backend]
	if !ok {
		return nil, xerrors.Errorf("unknown logger %q, want one of %s", backend, strings.Join(Backends(), ", "))
	}
	return f(w), nil
}

type zapLogger struct {
	l *zap.SugaredLogger
}

func newZap(w io.Writer) Logger {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), zap.InfoLevel)
	return zapLogger{l: zap.New(core).Sugar()}
}

func (z zapLogger) Info(msg string, keyvals ...interface{}) { z.l.Infow(msg, keyvals...) }

func (z zapLogger) Error(err error, msg string, keyvals ...interface{}) {
	z.l.Errorw(msg, append(keyvals[:len(keyvals):len(keyvals)], "error", err)...)
}

func (z zapLogger) Sync() error { return z.l.Sync() }

type logrusLogger struct {
	l *logrus.Logger
}

func newLogrus(w io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return logrusLogger{l: l}
}

func (l logrusLogger) Info(msg string, keyvals ...interface{}) {
	l.l.WithFields(logrus.Fields(fields(keyvals))).Info(msg)
}

func (l logrusLogger) Error(err error, msg string, keyvals ...interface{}) {
	l.l.WithFields(logrus.Fields(fields(keyvals))).WithError(err).Error(msg)
}

func (logrusLogger) Sync() error { return nil }

type zerologLogger struct {
	l zerolog.Logger
}

func newZerolog(w io.Writer) Logger {
	return zerologLogger{l: zerolog.New(zerolog.SyncWriter(w)).With().Timestamp().Logger()}
}

func (z zerologLogger) Info(msg string, keyvals ...interface{}) {
	z.l.Info().Fields(fields(keyvals)).Msg(msg)
}

func (z zerologLogger) Error(err error, msg string, keyvals ...interface{}) {
	z.l.Error().Err(err).Fields(fields(keyvals)).Msg(msg)
}

func (zerologLogger) Sync() error { return nil }

type logrLogger struct {
	l logr.Logger
}

func newLogr(w io.Writer) Logger {
	l := funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{LogTimestamp: true})
	return logrLogger{l: l.WithName("bumsort")}
}

func (l logrLogger) Info(msg string, keyvals ...interface{}) { l.l.Info(msg, durations(keyvals)...) }

func (l logrLogger) Error(err error, msg string, keyvals ...interface{}) {
	l.l.Error(err, msg, durations(keyvals)...)
}

func (logrLogger) Sync() error { return nil }

type gokitLogger struct {
	l kitlog.Logger
}

func newGokit(w io.Writer) Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	return gokitLogger{l: kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)}
}

func (g gokitLogger) Info(msg string, keyvals ...interface{}) {
	kitlevel.Info(g.l).Log(append([]interface{}{"msg", msg}, durations(keyvals)...)...)
}

func (g gokitLogger) Error(err error, msg string, keyvals ...interface{}) {
	kitlevel.Error(g.l).Log(append([]interface{}{"msg", msg, "error", err}, durations(keyvals)...)...)
}

func (gokitLogger) Sync() error { return nil }

// durations returns a copy of keyvals with time.Duration values replaced by
// their String form.
func durations(keyvals []interface{}) []interface{} {
	out := make([]interface{}, len(keyvals))
	for i, v := range keyvals {
		if d, ok := v.(time.Duration); ok && i%2 == 1 {
			v = d.String()
		}
		out[i] = v
	}
	return out
}

// fields converts alternating keys and values to a map. A trailing key
// without a value maps to nil.
func fields(keyvals []interface{}) map[string]interface{} {
	keyvals = durations(keyvals)
	m := make(map[string]interface{}, (len(keyvals)+1)/2)
	for i := 0; i < len(keyvals); i += 2 {
		var v interface{}
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		m[fmt.Sprint(keyvals[i])] = v
	}
	return m
}
