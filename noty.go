package noty

import (
	"log/slog"

	"github.com/aretw0/noty/internal/platform"
	"github.com/aretw0/noty/pkg/adapters/fs"
	"github.com/aretw0/noty/pkg/core"
)

// Version is the release version reported by the CLI.
var Version = "0.1.0"

// --- Types ---

// Note is a public alias for the stored note record.
type Note = core.Note

// Service is a public alias for the note service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring noty.
type Option = platform.Option

// WithLogger sets the logger for the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source (useful for testing).
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithForceTemp forces the store into the temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the dev-run sandbox. See platform.WithDevSafety.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithSerializer registers a codec for a store file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// --- Factory ---

// New creates a note Service for the store at path.
// An empty path selects DefaultStorePath.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init builds the repository for the store at path without a service.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// DefaultStorePath returns the per-user store location.
func DefaultStorePath() (string, error) {
	return platform.DefaultStorePath()
}

// ResolveStorePath applies the dev-run sandbox rules to a store path.
func ResolveStorePath(userPath string, forceTemp bool) string {
	return platform.ResolveStorePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
