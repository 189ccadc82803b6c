package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dr-livesey/treemat/pkg/codec"
	"github.com/dr-livesey/treemat/pkg/tree"
)

const mongoCollection = "trees"

// MongoStore persists trees in a MongoDB collection. Each document holds
// the tree in the JSON format from [codec], keyed by a unique name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoRecord is the document shape stored in MongoDB.
type mongoRecord struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Tree      string    `bson:"tree"` // JSON document, see codec.JSON
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB at uri and uses the given database.
// A unique index on the name field is created on first use.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", uri, err)
	}

	coll := client.Database(database).Collection(mongoCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Save implements [Store].
func (s *MongoStore) Save(ctx context.Context, name string, root *tree.Node) (*Record, error) {
	blob, err := codec.JSON{}.Encode(root)
	if err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}

	now := time.Now().UTC()
	doc := mongoRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Tree:      string(blob),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Keep the original ID and creation time on overwrite.
	var existing mongoRecord
	err = s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&existing)
	switch {
	case err == nil:
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, fmt.Errorf("find %q: %w", name, err)
	}

	_, err = s.coll.ReplaceOne(ctx, bson.M{"name": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("save %q: %w", name, err)
	}
	return &Record{ID: doc.ID, Name: name, Tree: root, CreatedAt: doc.CreatedAt, UpdatedAt: now}, nil
}

// Load implements [Store].
func (s *MongoStore) Load(ctx context.Context, name string) (*Record, error) {
	var doc mongoRecord
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	return doc.toRecord()
}

// List implements [Store].
func (s *MongoStore) List(ctx context.Context) ([]*Record, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer cur.Close(ctx)

	var records []*Record
	for cur.Next(ctx) {
		var doc mongoRecord
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		rec, err := doc.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return records, nil
}

// Delete implements [Store].
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (d *mongoRecord) toRecord() (*Record, error) {
	root, err := codec.JSON{}.Decode([]byte(d.Tree))
	if err != nil {
		return nil, fmt.Errorf("stored tree %q: %w", d.Name, err)
	}
	return &Record{
		ID:        d.ID,
		Name:      d.Name,
		Tree:      root,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

var _ Store = (*MongoStore)(nil)
