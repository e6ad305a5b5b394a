package mcpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/erraggy/errloc/diag"
	"github.com/erraggy/errloc/location"
	"github.com/erraggy/errloc/vuid"
)

// locationInput represents the two ways a location can be provided to a tool.
// Exactly one of Func or Message must be set.
type locationInput struct {
	Func    string `json:"func,omitempty"    jsonschema:"Call name, e.g. vkCmdPipelineBarrier"`
	RefPage string `json:"refpage,omitempty" jsonschema:"Reference page name, e.g. VkImageMemoryBarrier"`
	Path    string `json:"path,omitempty"    jsonschema:"Dotted field path below the call, e.g. pImageMemoryBarriers[2].srcAccessMask"`
	Message string `json:"message,omitempty" jsonschema:"A full rendered location such as vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask (replaces func and path)"`
}

var errLocationSource = errors.New("exactly one of func or message must be provided")

// resolve builds the location described by the input.
func (in locationInput) resolve() (location.Location, error) {
	if (in.Func == "") == (in.Message == "") {
		return location.Location{}, errLocationSource
	}
	if in.Message != "" && in.Path != "" {
		return location.Location{}, errors.New("path cannot be combined with message")
	}

	var ref location.RefPage
	if in.RefPage != "" {
		r, err := location.ParseRefPage(in.RefPage)
		if err != nil {
			return location.Location{}, err
		}
		ref = r
	}

	if in.Message != "" {
		return location.ParseMessage(ref, in.Message)
	}
	fn, err := location.ParseFunc(in.Func)
	if err != nil {
		return location.Location{}, err
	}
	return location.ParsePath(fn, ref, in.Path)
}

// registryEntry holds a loaded table keyed by the file's modification time.
type registryEntry struct {
	registry *vuid.Registry
	modTime  time.Time
}

// registryStore caches VUID registries for the life of the server.
// The embedded table is keyed by "". File tables are keyed by absolute path
// and reloaded when the file changes.
type registryStore struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
}

var registries = &registryStore{
	entries: make(map[string]*registryEntry),
}

// get returns the registry for path, loading it on first use.
// An empty path selects cfg.VuidTable, then the embedded table.
func (s *registryStore) get(path string) (*vuid.Registry, error) {
	if path == "" {
		path = cfg.VuidTable
	}

	var key string
	var modTime time.Time
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolving table path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("reading table: %w", err)
		}
		key, modTime = abs, info.ModTime()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok && e.modTime.Equal(modTime) {
		return e.registry, nil
	}

	opts := []vuid.Option{vuid.WithLogger(diag.NewSlogAdapter(slog.Default()))}
	if key != "" {
		opts = append(opts, vuid.WithTable(key))
	}
	reg, err := vuid.New(opts...)
	if err != nil {
		return nil, err
	}
	s.entries[key] = &registryEntry{registry: reg, modTime: modTime}
	return reg, nil
}

// reset clears all cached registries. Used by tests.
func (s *registryStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
}
