// Package serialize converts documents read from the store into
// transport-safe JSON objects.
//
// The store keeps its identifier under "_id" (usually an ObjectID) and
// timestamps as BSON dates. Clients see a string "id" and ISO-8601
// (RFC 3339, UTC) strings instead. Every other field passes through.
package serialize

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeLayout is the ISO-8601 layout used for every date/time field.
const TimeLayout = time.RFC3339Nano

// Document serializes a single raw document.
//
// Empty or nil input is returned unchanged. Only top-level fields are
// rewritten; nested documents and arrays pass through as they are.
func Document(raw bson.M) bson.M {
	if len(raw) == 0 {
		return raw
	}

	out := make(bson.M, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		out[k] = value(v)
	}

	// The store identifier wins over a stored "id" field.
	if id, ok := raw["_id"]; ok {
		out["id"] = ID(id)
	}

	return out
}

// Documents serializes a result set. The result is never nil, so an
// empty result encodes as [] rather than null.
func Documents(raw []bson.M) []bson.M {
	out := make([]bson.M, 0, len(raw))
	for _, doc := range raw {
		out = append(out, Document(doc))
	}
	return out
}

// ID renders a store identifier as a string.
func ID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}

// Time renders t as an ISO-8601 string in UTC.
func Time(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func value(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return Time(t.Time())
	case time.Time:
		return Time(t)
	case *time.Time:
		if t == nil {
			return nil
		}
		return Time(*t)
	default:
		return v
	}
}
