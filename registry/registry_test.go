package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/logger"
	"github.com/rediwo/tweenlog/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Clear registry for testing
func clearRegistry() {
	mu.Lock()
	defer mu.Unlock()
	openers = make(map[string]Opener)
}

type mockStore struct {
	uri string
}

func (m *mockStore) Write(diag.Severity, string) {}

func (m *mockStore) Recent(context.Context, *diag.Severity, int) ([]sink.Entry, error) {
	return nil, nil
}

func (m *mockStore) SetLogger(logger.Logger) {}

func (m *mockStore) Close() error { return nil }

func TestRegister(t *testing.T) {
	clearRegistry()

	opener := func(ctx context.Context, uri string) (Store, error) {
		return &mockStore{uri: uri}, nil
	}

	Register("testdb", opener)
	assert.Panics(t, func() { Register("testdb", opener) })

	_, err := Get("testdb")
	assert.NoError(t, err)

	_, err = Get("missing")
	assert.EqualError(t, err, "store scheme missing not registered")
}

func TestOpen(t *testing.T) {
	clearRegistry()

	Register("testdb", func(ctx context.Context, uri string) (Store, error) {
		return &mockStore{uri: uri}, nil
	})
	Register("broken", func(ctx context.Context, uri string) (Store, error) {
		return nil, errors.New("unreachable")
	})

	store, err := Open(context.Background(), "testdb://host/name")
	require.NoError(t, err)
	assert.Equal(t, "testdb://host/name", store.(*mockStore).uri)

	_, err = Open(context.Background(), "broken://host")
	assert.EqualError(t, err, "unreachable")

	_, err = Open(context.Background(), "nothing")
	assert.Error(t, err)

	_, err = Open(context.Background(), "redis://localhost")
	assert.Error(t, err)
}

func TestSchemes(t *testing.T) {
	clearRegistry()

	opener := func(ctx context.Context, uri string) (Store, error) { return nil, nil }
	Register("sqlite", opener)
	Register("mongodb", opener)
	Register("mysql", opener)

	assert.Equal(t, []string{"mongodb", "mysql", "sqlite"}, Schemes())
}
