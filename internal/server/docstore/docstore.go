// Package docstore is the directory's storage adapter: generic access to a
// document collection addressed by field-equality filters. It has a MongoDB
// backend for production and an in-memory backend used in tests; both share
// bson marshalling so filter semantics match.
package docstore

import "context"

// Filter selects documents by exact field equality. A value of type Exists
// selects on field presence instead of equality; no range or text matching
// is supported.
type Filter map[string]any

// Exists is a Filter value marking a presence check: Exists(true) matches
// documents where the field is set, Exists(false) where it is absent.
type Exists bool

// Doc is implemented by all persisted document types.
type Doc interface {
	DocID() string
	SetDocID(id string)
	Validate() error
}

// Collection provides the store operations for one document collection.
// FindOne and RemoveMatching return common.ErrorNotFound when nothing
// matches; Insert and Update return common.ErrorValidation for documents
// with missing required fields and common.ErrorAlreadyExists on unique-field
// collisions.
type Collection[T Doc] interface {
	Count(ctx context.Context) (int64, error)
	Find(ctx context.Context, filter Filter) ([]T, error)
	FindOne(ctx context.Context, filter Filter) (T, error)
	Insert(ctx context.Context, doc T) (T, error)
	Update(ctx context.Context, doc T) (T, error)
	RemoveMatching(ctx context.Context, filter Filter) (T, error)
}
