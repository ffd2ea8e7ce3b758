package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sportsportal/pkg/utils"
)

// DocumentStore is the single gateway to the document database. It owns no
// business logic: callers pass collection names, filters and field maps.
// When the process came up without a database connection every operation
// reports ErrDatabaseNotConfigured instead of panicking or reconnecting.
type DocumentStore struct {
	db *mongo.Database
}

func NewDocumentStore(db *mongo.Database) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Configured() bool {
	return s != nil && s.db != nil
}

func (s *DocumentStore) collection(name string) (*mongo.Collection, error) {
	if !s.Configured() {
		return nil, utils.ErrDatabaseNotConfigured
	}
	return s.db.Collection(name), nil
}

// InsertOne stores the document and returns the generated identifier as hex.
// created_at and updated_at are stamped here so every collection carries them.
func (s *DocumentStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return "", err
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	fields["created_at"] = now
	fields["updated_at"] = now

	res, err := coll.InsertOne(ctx, fields)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", utils.ErrDatabaseError
	}
	return oid.Hex(), nil
}

// FindOne returns the first matching document, or (nil, nil) when none
// matches. A nil sort keeps the store's natural order.
func (s *DocumentStore) FindOne(ctx context.Context, collection string, filter bson.M, sort bson.D) (bson.M, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne()
	if sort != nil {
		opts.SetSort(sort)
	}

	var doc bson.M
	err = coll.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindMany returns matching documents in storage order, truncated to limit
// when limit is positive.
func (s *DocumentStore) FindMany(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UpdateFields replaces only the named fields on the matching record and
// refreshes updated_at. Updating an unknown identifier is a silent no-op at
// this layer; callers detect it on the follow-up read.
func (s *DocumentStore) UpdateFields(ctx context.Context, collection string, id primitive.ObjectID, fields bson.M) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC()

	_, err = coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (s *DocumentStore) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Configured() {
		return nil, utils.ErrDatabaseNotConfigured
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}
