package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MongoStore keeps one document per game.
type MongoStore struct {
	client  *mongo.Client
	games   *mongo.Collection
	timeout time.Duration
}

// NewMongoStore connects to uri and checks the server is reachable.
func NewMongoStore(ctx context.Context, uri, database, collection string, timeout time.Duration) (*MongoStore, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &MongoStore{
		client:  client,
		games:   client.Database(database).Collection(collection),
		timeout: timeout,
	}, nil
}

func (m *MongoStore) withTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, m.timeout)
}

// CreateGame inserts a new game document.
func (m *MongoStore) CreateGame(ctx context.Context, rec GameRecord) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.UpdatedAt = rec.CreatedAt
	if rec.Moves == nil {
		rec.Moves = []string{}
	}
	_, err := m.games.InsertOne(ctx, rec)
	return err
}

// AppendMove pushes a move onto the game's move array. The filter only
// matches while the array holds ply-1 moves, so replays cannot reorder.
func (m *MongoStore) AppendMove(ctx context.Context, id string, ply int, uci string) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "moves", Value: bson.D{{Key: "$size", Value: ply - 1}}}}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "moves", Value: uci}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
	}
	res, err := m.games.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s ply %d: %w", id, ply, errors.ErrGameNotFound)
	}
	return nil
}

// LoadGame reads one game document.
func (m *MongoStore) LoadGame(ctx context.Context, id string) (GameRecord, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var rec GameRecord
	err := m.games.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&rec)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return GameRecord{}, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	return rec, err
}

// DeleteGame removes one game document.
func (m *MongoStore) DeleteGame(ctx context.Context, id string) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.games.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	return nil
}

// ListGames returns stored game ids, oldest first.
func (m *MongoStore) ListGames(ctx context.Context) ([]string, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 1}}).
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := m.games.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

// Close disconnects from the server.
func (m *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
