// Package analytics records served cards to MongoDB as a best-effort
// side-channel.
//
// Recording happens after the response is already on the wire, so nothing
// in this package is allowed to affect a response: a nil *Recorder is a
// valid no-op, every insert runs under its own short timeout, and all
// failures are dropped.
package analytics

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// collectionName holds one document per served card.
const collectionName = "card_views"

// insertTimeout bounds each write so a slow Mongo cannot pile up goroutines.
const insertTimeout = 2 * time.Second

// Event is one served card.
type Event struct {
	RequestID string    `bson:"request_id"`
	Username  string    `bson:"username"`
	Theme     string    `bson:"theme"`
	Lang      string    `bson:"lang"`
	Font      string    `bson:"font,omitempty"`
	Status    int       `bson:"status"`
	CacheHit  bool      `bson:"cache_hit"`
	ErrorCode string    `bson:"error_code,omitempty"`
	Duration  int64     `bson:"duration_ms"`
	At        time.Time `bson:"at"`
}

// Recorder writes events to a Mongo collection. The zero value of the
// pointer (nil) is a no-op recorder for deployments without analytics.
type Recorder struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewRecorder connects to MongoDB and verifies the connection with a ping.
func NewRecorder(ctx context.Context, uri, database string) (*Recorder, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &Recorder{
		client: client,
		coll:   client.Database(database).Collection(collectionName),
	}, nil
}

// Record inserts one event. Safe on a nil receiver; failures are swallowed.
// The insert runs under its own timeout, detached from the request context,
// because the request is already answered by the time this runs.
func (r *Recorder) Record(e Event) {
	if r == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
	defer cancel()
	_, _ = r.coll.InsertOne(ctx, e)
}

// Close disconnects from MongoDB. Safe on a nil receiver.
func (r *Recorder) Close(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}
