package steam

import (
	"os"
	"path/filepath"
)

// Probe abstracts the filesystem checks used during library discovery so
// tests can model arbitrary Steam installs without touching the host.
type Probe interface {
	IsDir(path string) bool
	ReadFile(path string) ([]byte, error)
}

type osProbe struct{}

func (osProbe) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (osProbe) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Resolver locates Steam base directories and the steamapps library roots
// beneath them.
type Resolver struct {
	probe Probe
	extra []string
}

// Option customizes resolver construction.
type Option func(*Resolver)

// WithProbe replaces the filesystem probe. Useful in tests.
func WithProbe(probe Probe) Option {
	return func(r *Resolver) {
		if probe != nil {
			r.probe = probe
		}
	}
}

// WithExtraCandidates appends Steam base directories to consider after the
// platform defaults, e.g. from config.
func WithExtraCandidates(paths ...string) Option {
	return func(r *Resolver) {
		for _, path := range paths {
			if path != "" {
				r.extra = append(r.extra, path)
			}
		}
	}
}

// NewResolver constructs a resolver backed by the real filesystem unless
// overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{probe: osProbe{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BaseCandidates returns every Steam base directory worth checking, in
// priority order. Entries are candidates, not guarantees; callers probe for
// existence themselves.
func (r *Resolver) BaseCandidates() []string {
	candidates := platformBaseCandidates()
	return append(candidates, r.extra...)
}

// DefaultInputDir returns <base>/userdata for the first base candidate that
// exists, falling back to the first candidate when none do. The boolean is
// false only when there are no candidates at all.
func (r *Resolver) DefaultInputDir() (string, bool) {
	candidates := r.BaseCandidates()
	if len(candidates) == 0 {
		return "", false
	}
	base := candidates[0]
	for _, candidate := range candidates {
		if r.probe.IsDir(candidate) {
			base = candidate
			break
		}
	}
	return filepath.Join(base, "userdata"), true
}
