package archive

import (
	"runtime"

	"github.com/hupe1980/hermes"
	"github.com/hupe1980/hermes/codec"
	"github.com/hupe1980/hermes/resource"
)

// DefaultPrefix is the blob name prefix used when none is configured.
const DefaultPrefix = "vectors"

type options struct {
	prefix      string
	compression codec.Compression
	logger      *hermes.Logger
	metrics     hermes.MetricsCollector
	controller  *resource.Controller
	concurrency int
}

// Option configures an Archive.
type Option func(*options)

// WithPrefix sets the blob name prefix. Leading and trailing slashes are ignored.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithCompression sets the compression applied to new blobs.
// Loading is independent of this setting.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *hermes.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = hermes.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, a no-op collector is used.
func WithMetricsCollector(c hermes.MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = hermes.NoopMetricsCollector{}
		}
		o.metrics = c
	}
}

// WithController bounds transfers with a resource controller. Its transfer
// slot count also becomes the default batch concurrency.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithConcurrency sets the number of workers used by SaveAll and LoadAll.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func (o *options) normalize() {
	if o.concurrency <= 0 {
		o.concurrency = o.controller.MaxConcurrentTransfers()
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
}
