package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// updateChunk bounds how many documents UpdateWhere rewrites per transaction.
const updateChunk = 256

// Entity provides generic CRUD operations for any domain type.
type Entity[T any] struct {
	store   *Store
	prefix  string
	indexes []Index[T]
}

// Index defines a unique secondary index on an entity.
// Keys are stored at prefix+"idx:"+name+":"+value and hold the record id.
type Index[T any] struct {
	name   string
	keyGen func(*T) []string
}

// NewEntity creates a new Entity instance for type T.
func NewEntity[T any](s *Store, prefix string) *Entity[T] {
	return &Entity[T]{
		store:   s,
		prefix:  prefix,
		indexes: make([]Index[T], 0),
	}
}

// WithIndex adds a unique secondary index to the entity.
// Empty values produced by keyGen are not indexed.
func (e *Entity[T]) WithIndex(name string, keyGen func(*T) []string) *Entity[T] {
	e.indexes = append(e.indexes, Index[T]{name: name, keyGen: keyGen})
	return e
}

func (e *Entity[T]) key(id string) []byte {
	return []byte(e.prefix + id)
}

func (e *Entity[T]) indexKey(name, value string) []byte {
	return []byte(e.prefix + "idx:" + name + ":" + value)
}

func (e *Entity[T]) isIndexKey(key []byte) bool {
	return strings.HasPrefix(string(key[len(e.prefix):]), "idx:")
}

// Create stores a new entity under id.
// Returns ErrAlreadyExists if the id or any unique index value is taken.
func (e *Entity[T]) Create(ctx context.Context, id string, entity *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(e.key(id))
		if err == nil {
			return ErrAlreadyExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check existing key: %w", err)
		}

		return e.put(txn, id, nil, entity)
	})
}

// Get retrieves an entity by ID.
// Returns ErrNotFound if the entity does not exist.
func (e *Entity[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entity *T
	err := e.store.db.View(func(txn *badger.Txn) error {
		var err error
		entity, err = e.read(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// GetByIndex retrieves an entity by the exact value of a unique index.
func (e *Entity[T]) GetByIndex(ctx context.Context, indexName, value string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entity *T
	err := e.store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(e.indexKey(indexName, value))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get index key: %w", err)
		}

		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}

		entity, err = e.read(txn, string(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// Modify applies fn to the stored entity and writes the result back in a
// single read-modify-write transaction. If fn returns an error nothing is
// written and that error is returned.
//
// Returns ErrNotFound if the entity does not exist and ErrAlreadyExists if
// the change collides with a unique index.
func (e *Entity[T]) Modify(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated *T
	err := e.store.db.Update(func(txn *badger.Txn) error {
		old, err := e.read(txn, id)
		if err != nil {
			return err
		}

		next, err := clone(old)
		if err != nil {
			return err
		}
		if err := fn(next); err != nil {
			return err
		}

		if err := e.put(txn, id, old, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an entity and its index entries.
// Returns ErrNotFound if the entity does not exist.
func (e *Entity[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		entity, err := e.read(txn, id)
		if err != nil {
			return err
		}

		for _, idx := range e.indexes {
			for _, v := range idx.keyGen(entity) {
				if v == "" {
					continue
				}
				if err := txn.Delete(e.indexKey(idx.name, v)); err != nil {
					return fmt.Errorf("failed to delete index key: %w", err)
				}
			}
		}

		if err := txn.Delete(e.key(id)); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}
		return nil
	})
}

// UpdateWhere applies fn to every stored entity and persists the ones for
// which fn reports a change. It returns the number of entities written.
//
// Candidates are found with a read-only scan and rewritten in chunks; fn is
// re-run on the freshly read copy inside each write transaction, so a
// document changed between the scan and the write is judged on its current
// state. Chunks that committed before a failure stay committed.
func (e *Entity[T]) UpdateWhere(ctx context.Context, fn func(*T) bool) (int, error) {
	var ids []string
	err := e.store.db.View(func(txn *badger.Txn) error {
		return e.scan(ctx, txn, func(id string, entity *T) bool {
			if fn(entity) {
				ids = append(ids, id)
			}
			return true
		})
	})
	if err != nil {
		return 0, err
	}

	updated := 0
	for chunk := range slices.Chunk(ids, updateChunk) {
		if err := ctx.Err(); err != nil {
			return updated, err
		}

		n := 0
		err := e.store.db.Update(func(txn *badger.Txn) error {
			n = 0
			for _, id := range chunk {
				old, err := e.read(txn, id)
				if errors.Is(err, ErrNotFound) {
					continue
				}
				if err != nil {
					return err
				}

				next, err := clone(old)
				if err != nil {
					return err
				}
				if !fn(next) {
					continue
				}
				if err := e.put(txn, id, old, next); err != nil {
					return err
				}
				n++
			}
			return nil
		})
		if err != nil {
			return updated, err
		}
		updated += n
	}

	return updated, nil
}

// Find returns every entity matching match (nil matches all), ordered by
// cmp when it is non-nil. The result is never nil.
func (e *Entity[T]) Find(ctx context.Context, match func(*T) bool, cmp func(a, b *T) int) ([]*T, error) {
	out := make([]*T, 0)
	for entity, err := range e.List(ctx) {
		if err != nil {
			return nil, err
		}
		if match == nil || match(entity) {
			out = append(out, entity)
		}
	}
	if cmp != nil {
		slices.SortStableFunc(out, cmp)
	}
	return out, nil
}

// Count returns the number of stored entities.
func (e *Entity[T]) Count(ctx context.Context) (int, error) {
	n := 0
	for _, err := range e.List(ctx) {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// List returns an iterator over all entities in key order.
func (e *Entity[T]) List(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		stopped := false
		err := e.store.db.View(func(txn *badger.Txn) error {
			return e.scan(ctx, txn, func(_ string, entity *T) bool {
				if !yield(entity, nil) {
					stopped = true
					return false
				}
				return true
			})
		})
		if err != nil && !stopped {
			yield(nil, err)
		}
	}
}

// scan walks every record under the prefix, skipping index keys, until
// visit returns false.
func (e *Entity[T]) scan(ctx context.Context, txn *badger.Txn, visit func(id string, entity *T) bool) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(e.prefix)
	opts.PrefetchValues = true

	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		item := it.Item()
		key := item.Key()
		if e.isIndexKey(key) {
			continue
		}

		var entity T
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entity)
		}); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}

		if !visit(string(key[len(e.prefix):]), &entity) {
			return nil
		}
	}
	return nil
}

func (e *Entity[T]) read(txn *badger.Txn, id string) (*T, error) {
	item, err := txn.Get(e.key(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key: %w", err)
	}

	var entity T
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &entity)
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return &entity, nil
}

// put writes next under id and moves index entries from old (nil on
// create) to next, rejecting values owned by another record.
func (e *Entity[T]) put(txn *badger.Txn, id string, old, next *T) error {
	for _, idx := range e.indexes {
		var oldKeys []string
		if old != nil {
			oldKeys = idx.keyGen(old)
		}
		newKeys := idx.keyGen(next)

		for _, v := range newKeys {
			if v == "" || slices.Contains(oldKeys, v) {
				continue
			}
			_, err := txn.Get(e.indexKey(idx.name, v))
			if err == nil {
				return &IndexConflictError{Index: idx.name, Value: v}
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("failed to check index key: %w", err)
			}
		}

		for _, v := range oldKeys {
			if v == "" || slices.Contains(newKeys, v) {
				continue
			}
			if err := txn.Delete(e.indexKey(idx.name, v)); err != nil {
				return fmt.Errorf("failed to delete old index key: %w", err)
			}
		}

		for _, v := range newKeys {
			if v == "" {
				continue
			}
			if err := txn.Set(e.indexKey(idx.name, v), []byte(id)); err != nil {
				return fmt.Errorf("failed to set index key: %w", err)
			}
		}
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}
	if err := txn.Set(e.key(id), data); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}
	return nil
}

// clone deep-copies v through its JSON form so fn can mutate freely.
func clone[T any](v *T) (*T, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return &out, nil
}
