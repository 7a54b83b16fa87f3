package storage

import (
	"context"
	"errors"
)

var ErrStorage = errors.New("key-value storage failure")

// KeyValue is a persistent text store addressed by fixed keys.
type KeyValue interface {
	// Get returns found=false without an error when the key was never set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}
