// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// spanExporter writes ended spans as "span" records.
type spanExporter struct {
	log Logger
}

var _ sdktrace.SpanExporter = (*spanExporter)(nil)

// NewTracerProvider returns a TracerProvider that logs every span through l
// as soon as it ends.
func NewTracerProvider(l Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(
		sdktrace.NewSimpleSpanProcessor(&spanExporter{log: l})))
}

func (e *spanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		keyvals := []interface{}{"name", s.Name(), "duration", s.EndTime().Sub(s.StartTime())}
		if p := s.Parent(); p.HasSpanID() {
			keyvals = append(keyvals, "parent", p.SpanID().String())
		}
		for _, kv := range s.Attributes() {
			keyvals = append(keyvals, string(kv.Key), kv.Value.AsInterface())
		}
		if st := s.Status(); st.Code == codes.Error {
			keyvals = append(keyvals, "status", st.Description)
		}
		e.log.Info("span", keyvals...)
	}
	return nil
}

// Shutdown does nothing; the Logger is flushed by its owner.
func (e *spanExporter) Shutdown(ctx context.Context) error {
	return nil
}
