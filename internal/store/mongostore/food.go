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

type foodStore struct {
	c *mongo.Collection
}

func (s *foodStore) Insert(ctx context.Context, foods []model.Food) ([]model.Food, error) {
	now := time.Now().UTC()
	docs := make([]any, 0, len(foods))
	for i := range foods {
		if foods[i].ID.IsZero() {
			foods[i].ID = primitive.NewObjectID()
		}
		foods[i].CreatedAt = now
		foods[i].UpdatedAt = now
		docs = append(docs, foods[i])
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return foods, nil
}

// List composes one conjunct per present filter field, mirroring how the
// query document is assembled dynamically on the client-facing filter
// parameters.
func (s *foodStore) List(ctx context.Context, f store.FoodFilter) ([]model.Food, error) {
	q := bson.M{}
	if len(f.Categories) > 0 {
		q["category"] = bson.M{"$in": f.Categories}
	}
	if len(f.Ingredients) > 0 {
		q["ingredients"] = bson.M{"$in": f.Ingredients}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		q["price.org"] = price
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: f.Search, Options: "i"}
		q["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"desc": re},
		}
	}

	cur, err := s.c.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	var out []model.Food
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *foodStore) GetByID(ctx context.Context, id primitive.ObjectID) (model.Food, error) {
	var f model.Food
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Food{}, store.ErrNotFound
	}
	return f, err
}

func (s *foodStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Food, error) {
	out := make(map[primitive.ObjectID]model.Food, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var foods []model.Food
	if err := cur.All(ctx, &foods); err != nil {
		return nil, err
	}
	for _, f := range foods {
		out[f.ID] = f
	}
	return out, nil
}

func (s *foodStore) Patch(ctx context.Context, id primitive.ObjectID, upd store.FoodUpdate) (model.Food, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Desc != nil {
		set["desc"] = *upd.Desc
	}
	if upd.Img != nil {
		set["img"] = *upd.Img
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Ingredients != nil {
		set["ingredients"] = *upd.Ingredients
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var f model.Food
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Food{}, store.ErrNotFound
	}
	return f, err
}

func (s *foodStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
