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

type MongoServiceRepo struct {
	DB *mongo.Client
}

func NewMongoServiceRepo(db *mongo.Client) *MongoServiceRepo {
	return &MongoServiceRepo{DB: db}
}

func (r *MongoServiceRepo) coll() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("service")
}

func (r *MongoServiceRepo) Create(s *models.Service) error {
	ctx := context.Background()
	if s.ID == "" {
		s.ID = newMongoID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.Status == "" {
		s.Status = "active"
	}
	_, err := r.coll().InsertOne(ctx, s)
	return err
}

func (r *MongoServiceRepo) List(q models.ListQuery) ([]*models.Service, int64, error) {
	ctx := context.Background()

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = []bson.M{
			{"title": searchRegex(q.Search)},
			{"description": searchRegex(q.Search)},
		}
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Featured != nil {
		filter["featured"] = *q.Featured
	}

	total, err := r.coll().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cur, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*models.Service
	for cur.Next(ctx) {
		var s models.Service
		if err := cur.Decode(&s); err != nil {
			return nil, 0, err
		}
		out = append(out, &s)
	}
	return out, total, cur.Err()
}

func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx := context.Background()
	var s models.Service
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *MongoServiceRepo) Update(s *models.Service) error {
	ctx := context.Background()
	res, err := r.coll().ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoServiceRepo) Delete(id string) error {
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

func (r *MongoServiceRepo) CountByStatus(status string) (int64, error) {
	return r.coll().CountDocuments(context.Background(), bson.M{"status": status})
}
