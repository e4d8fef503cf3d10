package mongostore

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
	registry.Register("mongodb", open)
	registry.Register("mongodb+srv", open)
}
