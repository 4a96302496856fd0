package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/constants"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/store"
)

type snapshot[T any] struct {
	Version int `json:"version"`
	State   T   `json:"state"`
}

func encodeSnapshot[T any](state T) ([]byte, error) {
	return json.Marshal(snapshot[T]{Version: constants.SnapshotVersion, State: state})
}

// loadSnapshot reports found=false when nothing was saved under key.
func loadSnapshot[T any](ctx context.Context, kv store.KVStore, key string) (state T, found bool, err error) {
	blob, err := kv.Load(ctx, key)
	if errors.Is(err, store.ErrRecordNotFound) {
		return state, false, nil
	}
	if err != nil {
		return state, false, err
	}

	var snap snapshot[T]
	if err := json.Unmarshal(blob, &snap); err != nil {
		return state, false, fmt.Errorf("decode %s: %w", key, err)
	}
	if snap.Version > constants.SnapshotVersion {
		return state, false, fmt.Errorf("%s was written by a newer version (v%d)", key, snap.Version)
	}
	return snap.State, true, nil
}

// persist saves the named collections. A failed save is logged and the
// in-memory state is kept.
func (b *book) persist(ctx context.Context, keys ...string) {
	logger := applog.Component(b.logger, applog.ComponentStorage)

	for _, key := range keys {
		blob, err := b.encode(key)
		if err == nil {
			err = b.kv.Save(ctx, key, blob)
		}
		if err != nil {
			logger.Error("failed to persist collection",
				applog.FieldOperation, applog.OpSave,
				applog.FieldKey, key,
				applog.FieldError, err)
			continue
		}
		logger.Debug("collection persisted", applog.FieldKey, key, "bytes", len(blob))
	}
}

func (b *book) encode(key string) ([]byte, error) {
	switch key {
	case constants.KeyAccounts:
		return encodeSnapshot(b.accounts.All())
	case constants.KeyTransactions:
		return encodeSnapshot(b.txns.All())
	case constants.KeyCategories:
		return encodeSnapshot(b.categories.All())
	case constants.KeySettings:
		return encodeSnapshot(b.settings)
	default:
		return nil, fmt.Errorf("unknown collection %q", key)
	}
}
