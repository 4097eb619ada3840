package server

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/swarmplot/pkg/errors"
)

// MongoGallery stores charts in a MongoDB collection, the backend for
// multi-replica deployments where renders must survive restarts.
type MongoGallery struct {
	coll *mongo.Collection
}

// NewMongoGallery connects to the MongoDB instance at uri and uses the
// "charts" collection of the given database.
func NewMongoGallery(ctx context.Context, uri, database string) (*MongoGallery, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoGallery{coll: client.Database(database).Collection("charts")}, nil
}

func (g *MongoGallery) Save(ctx context.Context, chart Chart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := g.coll.ReplaceOne(ctx, bson.M{"_id": chart.ID}, chart, opts)
	return err
}

func (g *MongoGallery) Get(ctx context.Context, id string) (Chart, error) {
	var chart Chart
	err := g.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&chart)
	if err == mongo.ErrNoDocuments {
		return Chart{}, errors.New(errors.ErrCodeChartNotFound, "no chart with id %q", id)
	}
	if err != nil {
		return Chart{}, err
	}
	return chart, nil
}

func (g *MongoGallery) List(ctx context.Context, limit int) ([]Chart, error) {
	findOpts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		findOpts = findOpts.SetLimit(int64(limit))
	}

	cur, err := g.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var charts []Chart
	if err := cur.All(ctx, &charts); err != nil {
		return nil, err
	}
	return charts, nil
}

// Close disconnects the underlying client.
func (g *MongoGallery) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return g.coll.Database().Client().Disconnect(ctx)
}

var _ Gallery = (*MongoGallery)(nil)
