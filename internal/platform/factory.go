package platform

import (
	"github.com/aretw0/noty/pkg/core"
)

// svc, err := noty.New("", noty.WithLogger(logger))
// An empty path means the default per-user store.
func New(path string, opts ...Option) (*core.Service, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := parseOptions(opts)

	return core.NewService(repo,
		core.WithClock(o.clock),
		core.WithServiceLogger(o.logger),
	), nil
}
