package store

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/grid"
)

// Mongo is a MongoDB-backed layout store: one document per home in a single
// collection, shaped by the bson tags the layout types already carry.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig holds connection settings for the mongo store.
type MongoConfig struct {
	URI        string
	Database   string // defaults to "homedeck"
	Collection string // defaults to "layouts"
}

// NewMongo connects to MongoDB and verifies the connection with a ping.
func NewMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	if cfg.Database == "" {
		cfg.Database = "homedeck"
	}
	if cfg.Collection == "" {
		cfg.Collection = "layouts"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "ping mongodb")
	}

	return &Mongo{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Layout fetches the document for home, or returns an empty layout if absent.
func (s *Mongo) Layout(ctx context.Context, home string) (grid.Layout, error) {
	if err := errors.ValidateHomeName(home); err != nil {
		return grid.Layout{}, err
	}

	var l grid.Layout
	err := s.coll.FindOne(ctx, bson.M{"home": home}).Decode(&l)
	if err == mongo.ErrNoDocuments {
		return grid.NewLayout(home), nil
	}
	if err != nil {
		return grid.Layout{}, errors.Wrap(errors.ErrCodeStore, err, "read layout for %s", home)
	}
	return l, nil
}

// SetLayout upserts the layout document keyed by home name.
func (s *Mongo) SetLayout(ctx context.Context, l grid.Layout) error {
	if err := errors.ValidateHomeName(l.Home); err != nil {
		return err
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"home": l.Home}, l, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write layout for %s", l.Home)
	}
	return nil
}

// Delete removes the document for home.
func (s *Mongo) Delete(ctx context.Context, home string) error {
	if err := errors.ValidateHomeName(home); err != nil {
		return err
	}

	if _, err := s.coll.DeleteOne(ctx, bson.M{"home": home}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete layout for %s", home)
	}
	return nil
}

// DeleteAll removes every layout document.
func (s *Mongo) DeleteAll(ctx context.Context) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete layouts")
	}
	return nil
}

// Homes lists the distinct home names, sorted.
func (s *Mongo) Homes(ctx context.Context) ([]string, error) {
	values, err := s.coll.Distinct(ctx, "home", bson.M{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list homes")
	}

	homes := make([]string, 0, len(values))
	for _, v := range values {
		if home, ok := v.(string); ok {
			homes = append(homes, home)
		}
	}
	slices.Sort(homes)
	return homes, nil
}

// Close disconnects from MongoDB.
func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure Mongo implements Store.
var _ Store = (*Mongo)(nil)
