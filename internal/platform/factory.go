package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// New builds a ready-to-use notes Service rooted at dir.
//
//	svc, err := platform.New(ctx, "/home/me/.notes/", platform.WithLogger(logger))
func New(ctx context.Context, dir string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	repo, err := initRepository(ctx, dir, o)
	if err != nil {
		return nil, err
	}

	return core.NewService(repo, o.logger), nil
}

// initRepository returns the repository for dir and makes sure its storage is ready.
func initRepository(ctx context.Context, dir string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	repo, err := fs.NewRepository(fs.Config{
		Dir:         dir,
		Extension:   "." + o.format,
		Serializers: o.serializers,
		Logger:      o.logger.With("component", "fs"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure repository: %w", err)
	}

	if err := repo.Initialize(ctx); err != nil {
		return nil, err
	}

	o.logger.Debug("repository ready", "state", repo.State())
	return repo, nil
}
