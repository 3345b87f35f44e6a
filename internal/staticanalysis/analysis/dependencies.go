package analysis

import (
	"sync"

	"github.com/ossf/sourcerisk/pkg/api/staticanalysis"
	"github.com/ossf/sourcerisk/pkg/api/staticanalysis/token"
)

// Dependencies is an append-only registry of the modules referenced by a file.
// Repeated references are all kept, in the order they were added.
// It is safe for concurrent use.
type Dependencies struct {
	mu   sync.Mutex
	deps []staticanalysis.Dependency
}

func (d *Dependencies) Add(name string, loc token.Location) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deps = append(d.deps, staticanalysis.Dependency{Name: name, Location: loc})
}

// List returns a copy of the registered dependencies.
func (d *Dependencies) List() []staticanalysis.Dependency {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]staticanalysis.Dependency{}, d.deps...)
}

// Has reports whether name was registered at least once.
func (d *Dependencies) Has(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, dep := range d.deps {
		if dep.Name == name {
			return true
		}
	}
	return false
}
