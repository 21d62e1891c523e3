package mongodb

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/taskforge/backend/internal/config"
)

// Client manages a lazily established, memoized MongoDB connection.
// The first operation triggers the dial; subsequent calls reuse the
// same client until Close. A failed dial is retried on the next call.
type Client struct {
	cfg    config.MongoConfig
	logger *zap.Logger

	mu     sync.Mutex
	client *mongo.Client
	coll   *mongo.Collection
}

// NewClient prepares a client without connecting.
func NewClient(cfg config.MongoConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		logger: logger,
	}
}

// Collection returns the tasks collection, connecting on first use.
func (c *Client) Collection(ctx context.Context) (*mongo.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.coll != nil {
		return c.coll, nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(c.cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	coll := client.Database(c.cfg.Database).Collection(c.cfg.Collection)
	c.ensureIndexes(dialCtx, coll)

	c.client = client
	c.coll = coll
	c.logger.Info("connected to mongodb",
		zap.String("database", c.cfg.Database),
		zap.String("collection", c.cfg.Collection))
	return c.coll, nil
}

// ensureIndexes creates the unique index on the task id. A failure here is
// logged and tolerated; duplicate protection then falls back to the
// application-level check on insert.
func (c *Client) ensureIndexes(ctx context.Context, coll *mongo.Collection) {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		c.logger.Warn("could not create task id index", zap.Error(err))
		return
	}
	c.logger.Info("mongodb indexes ensured")
}

// Ping reports whether the backing store is reachable. It never dials.
func (c *Client) Ping(ctx context.Context) bool {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()

	if client == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return client.Ping(pingCtx, nil) == nil
}

// Close disconnects the underlying client, if it was ever established.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	c.coll = nil
	if err == nil {
		c.logger.Info("mongodb connection closed")
	}
	return err
}
