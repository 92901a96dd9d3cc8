package commands

import (
	"fmt"
	"sort"
	"sync"

	"todo/internal/output"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // menu key -> command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the key is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.Key()
	if key == "" {
		return fmt.Errorf("command has empty key: %s", c.Synopsis())
	}
	if _, exists := r.cmds[key]; exists {
		return fmt.Errorf("command already registered: %s", key)
	}
	r.cmds[key] = c
	return nil
}

// Find looks up a command by menu key.
func (r *Registry) Find(key string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[key]
	return cmd, ok
}

// All returns all commands sorted by key.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.cmds))
	for key := range r.cmds {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]Command, len(keys))
	for i, key := range keys {
		result[i] = r.cmds[key]
	}
	return result
}

// Menu returns the menu lines for all registered commands.
func (r *Registry) Menu() []output.MenuItem {
	all := r.All()
	items := make([]output.MenuItem, len(all))
	for i, c := range all {
		items[i] = output.MenuItem{Key: c.Key(), Label: c.Synopsis()}
	}
	return items
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
