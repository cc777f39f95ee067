package platform

import (
	"fmt"
	"maps"

	"github.com/aretw0/noty/pkg/adapters/fs"
	"github.com/aretw0/noty/pkg/core"
)

// Init builds the repository for the store at path.
// An empty path selects DefaultStorePath.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := parseOptions(opts)

	if o.repository != nil {
		return o.repository, nil
	}

	repo, err := initFS(path, o)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// initFS resolves the store location and builds the file adapter.
func initFS(path string, o *options) (*fs.Repository, error) {
	if path == "" {
		def, err := DefaultStorePath()
		if err != nil {
			return nil, err
		}
		path = def
	}

	useTemp := o.forceTemp || (o.devSafety && IsDevRun())
	resolved := ResolveStorePath(path, useTemp)

	if o.logger != nil && resolved != path {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolved)
	}

	serializers := fs.DefaultSerializers()
	for ext, s := range o.serializers {
		if s == nil {
			return nil, fmt.Errorf("serializer for %s is nil", ext)
		}
	}
	maps.Copy(serializers, o.serializers)

	return fs.NewRepository(fs.Config{
		Path:        resolved,
		Logger:      o.logger,
		Serializers: serializers,
	}), nil
}
