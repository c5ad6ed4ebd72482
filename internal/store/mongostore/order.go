package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

type orderStore struct {
	c *mongo.Collection
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (s *orderStore) Create(ctx context.Context, o *model.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	o.CreatedAt = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, o)
	return err
}

func (s *orderStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Order, error) {
	return s.find(ctx, bson.M{"user": userID})
}

func (s *orderStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (s *orderStore) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *orderStore) find(ctx context.Context, q bson.M) ([]model.Order, error) {
	cur, err := s.c.Find(ctx, q, newestFirst)
	if err != nil {
		return nil, err
	}
	var out []model.Order
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *orderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (model.Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var o model.Order
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Order{}, store.ErrNotFound
	}
	return o, err
}
