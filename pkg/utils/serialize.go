package utils

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeDocument turns a stored document into a transport-safe shape:
// the "_id" ObjectID becomes a string "id" field and every date value is
// rendered as RFC 3339 text. All other fields pass through untouched, so
// serializing an already-serialized document is a no-op.
func SerializeDocument(doc bson.M) bson.M {
	if len(doc) == 0 {
		return doc
	}

	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}

	if rawID, ok := out["_id"]; ok {
		delete(out, "_id")
		switch id := rawID.(type) {
		case primitive.ObjectID:
			out["id"] = id.Hex()
		default:
			out["id"] = rawID
		}
	}

	for k, v := range out {
		switch t := v.(type) {
		case time.Time:
			out[k] = t.Format(time.RFC3339)
		case primitive.DateTime:
			out[k] = t.Time().UTC().Format(time.RFC3339)
		}
	}

	return out
}
