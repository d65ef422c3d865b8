package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/dbx"
	"github.com/fishy/rowlock"
)

// Store is a prefixed key/JSON store over the kv table.
type Store struct {
	db     dbx.DBTX
	prefix string
	locks  *rowlock.RowLock
}

// New returns a Store bound to db. Every key is stored as prefix+key.
func New(db dbx.DBTX, prefix string) *Store {
	return &Store{
		db:     db,
		prefix: prefix,
		locks:  rowlock.NewRowLock(rowlock.MutexNewLocker),
	}
}

func (s *Store) fullKey(key string) string {
	return s.prefix + key
}

func (s *Store) lock(key string) func() {
	s.locks.Lock(key)
	return func() { s.locks.Unlock(key) }
}

// Get decodes the value under key into dst. found is false when the key is
// absent; a value that does not decode is reported as common.ErrCorruptValue.
func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.getRaw(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("decode %s: %w: %v", key, common.ErrCorruptValue, err)
	}
	return true, nil
}

// Set encodes v as JSON and stores it under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, v any) error {
	defer s.lock(key)()
	return s.set(ctx, key, v)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	defer s.lock(key)()
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, s.fullKey(key))
	if err != nil {
		return fmt.Errorf("failed to remove local[%s]: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys without the prefix, sorted.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	keys, err := dbx.QueryAll(ctx, s.db, func(rows *sql.Rows) (string, error) {
		var k string
		err := rows.Scan(&k)
		return k, err
	}, `SELECT key FROM kv WHERE key LIKE ? ORDER BY key`, s.prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list local keys: %w", err)
	}
	for i, k := range keys {
		keys[i] = strings.TrimPrefix(k, s.prefix)
	}
	return keys, nil
}

func (s *Store) getRaw(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, s.fullKey(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get local[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.fullKey(key), raw)
	if err != nil {
		return fmt.Errorf("failed to set local[%s]: %w", key, err)
	}
	return nil
}

// LoadList returns the list stored under key, or an empty list when the key
// is absent.
func LoadList[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	list := make([]T, 0)
	found, err := s.Get(ctx, key, &list)
	if err != nil {
		return make([]T, 0), err
	}
	if !found || list == nil {
		return make([]T, 0), nil
	}
	return list, nil
}

// UpdateList replaces the list under key with fn(current) while holding the
// key's lock. A corrupt blob is treated as an empty list.
func UpdateList[T any](ctx context.Context, s *Store, key string, fn func(current []T) []T) error {
	defer s.lock(key)()

	current, err := LoadList[T](ctx, s, key)
	if err != nil && !errors.Is(err, common.ErrCorruptValue) {
		return err
	}

	next := fn(current)
	if next == nil {
		next = make([]T, 0)
	}
	return s.set(ctx, key, next)
}
