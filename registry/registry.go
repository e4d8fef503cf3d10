package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/logger"
	"github.com/rediwo/tweenlog/sink"
)

// Store is a persistent sink that can be queried back
type Store interface {
	diag.Sink
	Recent(ctx context.Context, severity *diag.Severity, limit int) ([]sink.Entry, error)
	SetLogger(l logger.Logger)
	Close() error
}

// Opener is a function that connects to the store named by uri
type Opener func(ctx context.Context, uri string) (Store, error)

// openers holds all registered stores by URI scheme
var (
	openers = make(map[string]Opener)
	mu      sync.RWMutex
)

// Register registers an opener for a URI scheme
func Register(scheme string, opener Opener) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := openers[scheme]; exists {
		panic(fmt.Sprintf("store scheme %s already registered", scheme))
	}

	openers[scheme] = opener
}

// Get retrieves the opener registered for scheme
func Get(scheme string) (Opener, error) {
	mu.RLock()
	defer mu.RUnlock()

	opener, exists := openers[scheme]
	if !exists {
		return nil, fmt.Errorf("store scheme %s not registered", scheme)
	}

	return opener, nil
}

// Schemes returns the registered schemes in sorted order
func Schemes() []string {
	mu.RLock()
	defer mu.RUnlock()

	schemes := make([]string, 0, len(openers))
	for s := range openers {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}

// Open picks the opener by the scheme of uri and calls it
func Open(ctx context.Context, uri string) (Store, error) {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok {
		return nil, fmt.Errorf("invalid URI format: %s", uri)
	}
	opener, err := Get(scheme)
	if err != nil {
		return nil, err
	}
	return opener(ctx, uri)
}
