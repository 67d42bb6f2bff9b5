package docstore

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/dmitrijs2005/phonebook/internal/common"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryCollection is an in-memory Collection implementation used in tests.
// Documents are stored as bson so tag handling (omitempty in particular)
// and therefore presence filters behave exactly as with the Mongo backend.
// Reads decode fresh copies, so callers never alias stored state.
type MemoryCollection[T Doc] struct {
	mu     sync.RWMutex
	docs   []memDoc
	newDoc func() T
	unique []string
}

type memDoc struct {
	id  string
	raw bson.Raw
}

// NewMemoryCollection creates an empty collection. uniqueFields lists bson
// field names that must not repeat across documents (e.g. "username").
func NewMemoryCollection[T Doc](newDoc func() T, uniqueFields ...string) *MemoryCollection[T] {
	return &MemoryCollection[T]{newDoc: newDoc, unique: uniqueFields}
}

func (c *MemoryCollection[T]) Count(ctx context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.docs)), nil
}

func (c *MemoryCollection[T]) Find(ctx context.Context, filter Filter) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, d := range c.docs {
		ok, err := c.matches(d.raw, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		doc, err := c.decode(d.raw)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (c *MemoryCollection[T]) FindOne(ctx context.Context, filter Filter) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, err := c.indexOfMatch(filter)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.decode(c.docs[idx].raw)
}

func (c *MemoryCollection[T]) Insert(ctx context.Context, doc T) (T, error) {
	var zero T
	if err := doc.Validate(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if doc.DocID() == "" {
		doc.SetDocID(uuid.NewString())
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return zero, fmt.Errorf("marshal error: %w", err)
	}
	if err := c.checkUnique(bson.Raw(raw), doc.DocID()); err != nil {
		return zero, err
	}

	c.docs = append(c.docs, memDoc{id: doc.DocID(), raw: raw})
	return doc, nil
}

func (c *MemoryCollection[T]) Update(ctx context.Context, doc T) (T, error) {
	var zero T
	if err := doc.Validate(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, d := range c.docs {
		if d.id != doc.DocID() {
			continue
		}
		raw, err := bson.Marshal(doc)
		if err != nil {
			return zero, fmt.Errorf("marshal error: %w", err)
		}
		if err := c.checkUnique(bson.Raw(raw), doc.DocID()); err != nil {
			return zero, err
		}
		c.docs[i].raw = raw
		return doc, nil
	}
	return zero, common.ErrorNotFound
}

func (c *MemoryCollection[T]) RemoveMatching(ctx context.Context, filter Filter) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, err := c.indexOfMatch(filter)
	if err != nil {
		var zero T
		return zero, err
	}
	doc, err := c.decode(c.docs[idx].raw)
	if err != nil {
		var zero T
		return zero, err
	}
	c.docs = append(c.docs[:idx], c.docs[idx+1:]...)
	return doc, nil
}

// --- helpers below ---

func (c *MemoryCollection[T]) decode(raw bson.Raw) (T, error) {
	doc := c.newDoc()
	if err := bson.Unmarshal(raw, doc); err != nil {
		var zero T
		return zero, fmt.Errorf("unmarshal error: %w", err)
	}
	return doc, nil
}

func (c *MemoryCollection[T]) indexOfMatch(filter Filter) (int, error) {
	for i, d := range c.docs {
		ok, err := c.matches(d.raw, filter)
		if err != nil {
			return 0, err
		}
		if ok {
			return i, nil
		}
	}
	return 0, common.ErrorNotFound
}

func (c *MemoryCollection[T]) matches(raw bson.Raw, filter Filter) (bool, error) {
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return false, fmt.Errorf("unmarshal error: %w", err)
	}
	for k, v := range filter {
		got, present := m[k]
		if ex, ok := v.(Exists); ok {
			if present != bool(ex) {
				return false, nil
			}
			continue
		}
		if !present || !reflect.DeepEqual(got, v) {
			return false, nil
		}
	}
	return true, nil
}

func (c *MemoryCollection[T]) checkUnique(raw bson.Raw, selfID string) error {
	for _, field := range c.unique {
		val := raw.Lookup(field)
		if val.Validate() != nil {
			continue
		}
		for _, d := range c.docs {
			if d.id == selfID {
				continue
			}
			other := d.raw.Lookup(field)
			if other.Validate() == nil && other.Equal(val) {
				return common.ErrorAlreadyExists
			}
		}
	}
	return nil
}
