// registry.go implements the extension registration system.
//
// Extensions self-register during init(), before main() runs. Duplicate
// names panic, as database/sql.Register does. Registration order is kept so
// commands and MCP tools appear in a stable order.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string
)

// Register adds an extension to the registry. Called from init() functions.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Fire delivers e to every registered EventHandler. Handler errors are
// passed to onErr and do not stop delivery to the remaining handlers.
func Fire(ctx Context, e Event, onErr func(ext Extension, err error)) {
	for _, ext := range All() {
		h, ok := ext.(EventHandler)
		if !ok {
			continue
		}
		if err := h.HandleEvent(ctx, e); err != nil && onErr != nil {
			onErr(ext, err)
		}
	}
}
