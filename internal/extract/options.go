package extract

import (
	"io"
	"log/slog"

	"github.com/kolah/flatapi/internal/model"
)

type Option func(*options)

type options struct {
	concurrency int
	logger      *slog.Logger
	includeTags []string
	excludeTags []string
}

func newOptions(opts ...Option) *options {
	o := &options{
		concurrency: 1,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithConcurrency extracts up to n paths at once. Output order does not
// depend on n. Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = max(n, 1)
	}
}

// WithLogger logs extracted entrypoints and dropped items at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIncludeTags keeps only operations carrying at least one of tags.
func WithIncludeTags(tags ...string) Option {
	return func(o *options) {
		o.includeTags = append(o.includeTags, tags...)
	}
}

// WithExcludeTags skips operations carrying any of tags.
func WithExcludeTags(tags ...string) Option {
	return func(o *options) {
		o.excludeTags = append(o.excludeTags, tags...)
	}
}

func (o *options) skip(op *model.Operation) bool {
	if len(o.includeTags) > 0 && !op.HasTag(o.includeTags...) {
		return true
	}
	return op.HasTag(o.excludeTags...)
}
