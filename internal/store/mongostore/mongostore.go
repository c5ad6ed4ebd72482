// Package mongostore implements the store interfaces over MongoDB.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

type Store struct {
	client *mongo.Client
	users  *mongo.Collection
	foods  *mongo.Collection
	orders *mongo.Collection
}

// Open connects, pings, and ensures the unique email index. The returned
// cleanup func disconnects the client.
func Open(ctx context.Context, uri, dbName string) (*Store, func(), error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	s := &Store{
		client: client,
		users:  db.Collection("users"),
		foods:  db.Collection("foods"),
		orders: db.Collection("orders"),
	}

	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ensure index: %w", err)
	}

	cleanup := func() { _ = s.client.Disconnect(context.Background()) }
	return s, cleanup, nil
}

func (s *Store) Users() store.UserStore   { return &userStore{c: s.users} }
func (s *Store) Foods() store.FoodStore   { return &foodStore{c: s.foods} }
func (s *Store) Orders() store.OrderStore { return &orderStore{c: s.orders} }
