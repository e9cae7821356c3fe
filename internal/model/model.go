// Package model defines the documents stored in each collection and the
// request/response payloads of the HTTP API.
//
// Stored documents carry bson tags and are what the repositories write.
// Request types carry json/query tags plus validate tags, and convert
// themselves into stored documents once validated, applying defaults
// (empty tag lists, in_stock=true, status=pending). Required body fields
// are pointers: "required" means the key was sent, and an empty string
// is a valid value.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names, one per entity type.
const (
	CollectionArtwork        = "artwork"
	CollectionPoem           = "poem"
	CollectionProduct        = "product"
	CollectionContactMessage = "contactmessage"
	CollectionOrder          = "order"
)

// DefaultLimit is the number of documents a list endpoint returns when
// the client does not ask for a specific amount.
const DefaultLimit int64 = 50

// Document is implemented by every stored entity.
type Document interface {
	// Touch stamps creation and update times.
	Touch(now time.Time)
}

// Base holds the fields every stored document carries.
// It is inlined into the parent document.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (b *Base) Touch(now time.Time) {
	now = now.UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// CreatedResponse is returned by every create endpoint.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreatedWithStatusResponse is returned by create endpoints that also
// report the processing state of the new document.
type CreatedWithStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// value reads a required field. Validation guarantees it was sent,
// though it may be empty.
func value[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// tagsOrEmpty never lets a nil tag list reach the store.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
