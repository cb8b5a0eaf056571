package parcelval

import "sync"

// Creator decodes one polymorphic record type from its wire form. When
// CreateFromParcel is called the cursor sits just past the type name; the
// creator must leave it just past the record's payload.
type Creator interface {
	CreateFromParcel(r *Reader) (Record, error)
}

// CreatorFunc adapts a plain function to the Creator interface.
type CreatorFunc func(r *Reader) (Record, error)

func (f CreatorFunc) CreateFromParcel(r *Reader) (Record, error) { return f(r) }

// Registry maps wire type names to creators. Registration is expected at
// startup or during lazy first-use initialization; lookups run
// concurrently from every decode of a polymorphic record slot and never
// block each other.
type Registry struct {
	mu       sync.RWMutex
	creators map[string]Creator
}

func NewRegistry() *Registry {
	return &Registry{creators: make(map[string]Creator)}
}

// Register binds name to c. Registering the same name again silently
// replaces the previous creator.
func (g *Registry) Register(name string, c Creator) {
	g.mu.Lock()
	g.creators[name] = c
	g.mu.Unlock()
}

// Lookup returns the creator for name, or an UnknownCreatorError
// identifying the missing name.
func (g *Registry) Lookup(name string) (Creator, error) {
	g.mu.RLock()
	c, ok := g.creators[name]
	g.mu.RUnlock()
	if !ok {
		return nil, &UnknownCreatorError{Name: name}
	}
	return c, nil
}

// Names returns the registered type names, for diagnostics. Order is
// unspecified.
func (g *Registry) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.creators))
	for name := range g.creators {
		out = append(out, name)
	}
	return out
}

// defaultRegistry backs the package-level helpers. It lives for the whole
// process; generated interface shims register their record types here at
// init time.
var defaultRegistry = sync.OnceValue(NewRegistry)

// DefaultRegistry returns the process-wide registry, creating it on first
// use.
func DefaultRegistry() *Registry { return defaultRegistry() }

// Register binds name to c in the default registry.
func Register(name string, c Creator) { DefaultRegistry().Register(name, c) }
