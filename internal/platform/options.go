package platform

import (
	"log/slog"

	"github.com/aretw0/noty/pkg/adapters/fs"
	"github.com/aretw0/noty/pkg/core"
)

// options holds the internal configuration for the noty service.
type options struct {
	repository  core.Repository
	logger      *slog.Logger
	clock       core.Clock
	forceTemp   bool
	devSafety   bool
	serializers map[string]fs.Serializer
}

// Option defines a functional option for configuring noty.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety:   true,
		serializers: make(map[string]fs.Serializer),
	}
}

func parseOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger shared by the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source for note timestamps and export names.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default file adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithForceTemp forces the store into the temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) the store is re-rooted under the temp directory so a dev run
// never touches the real notes file.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithSerializer registers a custom codec for a store file extension (e.g. ".toml").
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}
