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

type MongoTestimonialRepo struct {
	DB *mongo.Client
}

func NewMongoTestimonialRepo(db *mongo.Client) *MongoTestimonialRepo {
	return &MongoTestimonialRepo{DB: db}
}

func (r *MongoTestimonialRepo) coll() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("testimonial")
}

func (r *MongoTestimonialRepo) Create(t *models.Testimonial) error {
	ctx := context.Background()
	if t.ID == "" {
		t.ID = newMongoID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.Date.IsZero() {
		t.Date = t.CreatedAt
	}
	if t.Status == "" {
		t.Status = models.TestimonialPublished
	}
	_, err := r.coll().InsertOne(ctx, t)
	return err
}

func (r *MongoTestimonialRepo) List(q models.ListQuery) ([]*models.Testimonial, int64, error) {
	ctx := context.Background()

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = []bson.M{
			{"name": searchRegex(q.Search)},
			{"location": searchRegex(q.Search)},
			{"content": searchRegex(q.Search)},
		}
	}
	if q.Status != "" {
		filter["status"] = q.Status
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

	var out []*models.Testimonial
	for cur.Next(ctx) {
		var t models.Testimonial
		if err := cur.Decode(&t); err != nil {
			return nil, 0, err
		}
		out = append(out, &t)
	}
	return out, total, cur.Err()
}

func (r *MongoTestimonialRepo) GetByID(id string) (*models.Testimonial, error) {
	ctx := context.Background()
	var t models.Testimonial
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *MongoTestimonialRepo) Update(t *models.Testimonial) error {
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

func (r *MongoTestimonialRepo) Delete(id string) error {
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

func (r *MongoTestimonialRepo) CountByStatus(status string) (int64, error) {
	return r.coll().CountDocuments(context.Background(), bson.M{"status": status})
}
