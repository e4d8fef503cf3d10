package sqlstore

import (
	"context"

	"github.com/rediwo/tweenlog/registry"
)

func init() {
	open := func(ctx context.Context, uri string) (registry.Store, error) {
		store, err := Open(ctx, uri)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	for _, scheme := range []string{"sqlite", "sqlite3", "mysql", "postgres", "postgresql"} {
		registry.Register(scheme, open)
	}
}
