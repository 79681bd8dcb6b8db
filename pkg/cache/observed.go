package cache

import (
	"context"
	"time"

	"github.com/matzehuels/graphwiz/pkg/observability"
)

// Observed wraps c and reports its traffic to the observability cache hooks,
// tagged with keyType.
func Observed(c Cache, keyType string) Cache {
	return &observed{Cache: c, keyType: keyType}
}

type observed struct {
	Cache
	keyType string
}

func (o *observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := o.Cache.Get(ctx, key)
	switch {
	case err != nil:
		observability.Cache().OnCacheError(ctx, "get", err)
	case ok:
		observability.Cache().OnCacheHit(ctx, o.keyType)
	default:
		observability.Cache().OnCacheMiss(ctx, o.keyType)
	}
	return data, ok, err
}

func (o *observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := o.Cache.Set(ctx, key, data, ttl)
	if err != nil {
		observability.Cache().OnCacheError(ctx, "set", err)
	} else {
		observability.Cache().OnCacheSet(ctx, o.keyType, len(data))
	}
	return err
}
