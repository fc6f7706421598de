package fs

import (
	"sort"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Dir         string   `json:"dir"`
	Extension   string   `json:"extension"`
	Serializers []string `json:"serializers"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	serializers := make([]string, 0, len(r.config.Serializers))
	for ext := range r.config.Serializers {
		serializers = append(serializers, ext)
	}
	sort.Strings(serializers)

	return RepositoryState{
		Dir:         r.Dir,
		Extension:   r.ext,
		Serializers: serializers,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
