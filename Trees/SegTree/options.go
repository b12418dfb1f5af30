package SegTree

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/g-m-twostay/go-segtree/Trees/SegTree"

type config struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a tree when it's built.
type Option func(*config)

// WithLogger replaces slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer replaces the tracer of the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: slog.Default(), tracer: otel.Tracer(tracerName)}
	for _, o := range opts {
		o(&c)
	}
	return c
}
