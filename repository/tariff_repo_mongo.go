package repository

import (
	"context"
	"errors"
	"time"

	"meenakshitravels/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTariffRepo struct {
	DB *mongo.Client
}

func NewMongoTariffRepo(db *mongo.Client) *MongoTariffRepo {
	return &MongoTariffRepo{DB: db}
}

func (r *MongoTariffRepo) coll() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("tariff_item")
}

func (r *MongoTariffRepo) Create(t *models.TariffItem) error {
	ctx := context.Background()
	if t.ID == "" {
		t.ID = newMongoID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.Status == "" {
		t.Status = "active"
	}
	if t.AdditionalCharges == nil {
		t.AdditionalCharges = []models.AdditionalCharge{}
	}
	_, err := r.coll().InsertOne(ctx, t)
	return err
}

func (r *MongoTariffRepo) List(q models.ListQuery) ([]*models.TariffItem, int64, error) {
	ctx := context.Background()

	filter := bson.M{}
	if q.Search != "" {
		filter["vehicle_type"] = searchRegex(q.Search)
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	total, err := r.coll().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "vehicle_type", Value: 1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cur, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*models.TariffItem
	for cur.Next(ctx) {
		var t models.TariffItem
		if err := cur.Decode(&t); err != nil {
			return nil, 0, err
		}
		out = append(out, &t)
	}
	return out, total, cur.Err()
}

func (r *MongoTariffRepo) GetByID(id string) (*models.TariffItem, error) {
	ctx := context.Background()
	var t models.TariffItem
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *MongoTariffRepo) Update(t *models.TariffItem) error {
	ctx := context.Background()
	res, err := r.coll().ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTariffRepo) Delete(id string) error {
	ctx := context.Background()
	res, err := r.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTariffRepo) Count() (int64, error) {
	return r.coll().CountDocuments(context.Background(), bson.M{})
}
