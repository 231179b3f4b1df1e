package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/swaplab/swapplan/pkg/errors"
	"github.com/swaplab/swapplan/pkg/plan"
)

// MongoStore archives plans in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoOptions configures the MongoDB archive.
type MongoOptions struct {
	// URI is the connection string, e.g. mongodb://localhost:27017.
	URI string

	// Database name. Defaults to "swapplan".
	Database string

	// Collection name. Defaults to "plans".
	Collection string

	// ConnectTimeout bounds the initial connection and ping.
	ConnectTimeout time.Duration
}

// record is the stored shape: summary fields for listing queries plus the
// full document as raw JSON, so plan.Document needs no bson tags.
type record struct {
	ID        string    `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
	Slots     int       `bson:"slots"`
	Swaps     int       `bson:"swaps"`
	Subset    bool      `bson:"subset,omitempty"`
	Doc       []byte    `bson:"doc"`
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.Database == "" {
		opts.Database = "swapplan"
	}
	if opts.Collection == "" {
		opts.Collection = "plans"
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
	}, nil
}

func (s *MongoStore) Put(ctx context.Context, doc *plan.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	rec := record{
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt,
		Slots:     doc.Stats.Slots,
		Swaps:     doc.Stats.Swaps,
		Subset:    doc.Subset,
		Doc:       data,
	}

	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, rec,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store plan %s: %w", doc.ID, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*plan.Document, error) {
	var rec record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", id, err)
	}

	var doc plan.Document
	if err := json.Unmarshal(rec.Doc, &doc); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", id, err)
	}
	return &doc, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Summary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"doc": 0})

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer cursor.Close(ctx)

	var out []Summary
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode plan list: %w", err)
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
