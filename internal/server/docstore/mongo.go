package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/phonebook/internal/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig represents the MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
	MaxRetry int
}

// ConnectMongo initializes a MongoDB connection, retrying transient failures
// and pinging before returning the database handle.
func ConnectMongo(ctx context.Context, cfg *MongoConfig) (*mongo.Database, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("%w: mongo uri is required", common.ErrorValidation)
	}
	if cfg.MaxRetry < 1 {
		cfg.MaxRetry = 1
	}

	opts := options.Client().ApplyURI(cfg.URI)

	var (
		cli *mongo.Client
		err error
	)
	for i := 0; i < cfg.MaxRetry; i++ {
		cli, err = connectMongo(ctx, opts)
		if err != nil && ctx.Err() == nil {
			time.Sleep(time.Second / 2)
			continue
		}
		break
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB %s: %w", cfg.URI, err)
	}

	return cli.Database(cfg.Database), nil
}

func connectMongo(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	cli, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return cli, nil
}

// EnsureIndexes creates the unique username index on the users collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// MongoCollection is the Mongo-backed Collection implementation.
type MongoCollection[T Doc] struct {
	coll   *mongo.Collection
	newDoc func() T
}

func NewMongoCollection[T Doc](db *mongo.Database, name string, newDoc func() T) *MongoCollection[T] {
	return &MongoCollection[T]{coll: db.Collection(name), newDoc: newDoc}
}

// toBson converts a Filter into a Mongo filter document, translating the
// Exists marker into the $exists operator.
func toBson(filter Filter) bson.M {
	m := bson.M{}
	for k, v := range filter {
		if ex, ok := v.(Exists); ok {
			m[k] = bson.M{"$exists": bool(ex)}
			continue
		}
		m[k] = v
	}
	return m
}

func (c *MongoCollection[T]) Count(ctx context.Context) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (c *MongoCollection[T]) Find(ctx context.Context, filter Filter) ([]T, error) {
	cursor, err := c.coll.Find(ctx, toBson(filter))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (c *MongoCollection[T]) FindOne(ctx context.Context, filter Filter) (T, error) {
	doc := c.newDoc()
	err := c.coll.FindOne(ctx, toBson(filter)).Decode(doc)
	if err != nil {
		var zero T
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrorNotFound
		}
		return zero, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

func (c *MongoCollection[T]) Insert(ctx context.Context, doc T) (T, error) {
	var zero T
	if err := doc.Validate(); err != nil {
		return zero, err
	}
	if doc.DocID() == "" {
		doc.SetDocID(primitive.NewObjectID().Hex())
	}
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return zero, common.ErrorAlreadyExists
		}
		return zero, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

func (c *MongoCollection[T]) Update(ctx context.Context, doc T) (T, error) {
	var zero T
	if err := doc.Validate(); err != nil {
		return zero, err
	}
	if doc.DocID() == "" {
		return zero, common.ErrorNotFound
	}
	res, err := c.coll.ReplaceOne(ctx, bson.M{"_id": doc.DocID()}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return zero, common.ErrorAlreadyExists
		}
		return zero, fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return zero, common.ErrorNotFound
	}
	return doc, nil
}

func (c *MongoCollection[T]) RemoveMatching(ctx context.Context, filter Filter) (T, error) {
	doc := c.newDoc()
	err := c.coll.FindOneAndDelete(ctx, toBson(filter)).Decode(doc)
	if err != nil {
		var zero T
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrorNotFound
		}
		return zero, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}
