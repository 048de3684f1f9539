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

type MongoLeadRepo struct {
	DB *mongo.Client
}

func NewMongoLeadRepo(db *mongo.Client) *MongoLeadRepo {
	return &MongoLeadRepo{DB: db}
}

func (r *MongoLeadRepo) coll() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("lead")
}

func (r *MongoLeadRepo) Create(l *models.Lead) error {
	ctx := context.Background()
	if l.ID == "" {
		l.ID = newMongoID()
	}
	if l.SubmittedAt.IsZero() {
		l.SubmittedAt = time.Now().UTC()
	}
	if l.Status == "" {
		l.Status = models.LeadNew
	}
	_, err := r.coll().InsertOne(ctx, l)
	return err
}

func (r *MongoLeadRepo) List(q models.ListQuery) ([]*models.Lead, int64, error) {
	ctx := context.Background()

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = []bson.M{
			{"full_name": searchRegex(q.Search)},
			{"email": searchRegex(q.Search)},
			{"phone": searchRegex(q.Search)},
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
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cur, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*models.Lead
	for cur.Next(ctx) {
		var l models.Lead
		if err := cur.Decode(&l); err != nil {
			return nil, 0, err
		}
		out = append(out, &l)
	}
	return out, total, cur.Err()
}

func (r *MongoLeadRepo) GetByID(id string) (*models.Lead, error) {
	ctx := context.Background()
	var l models.Lead
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *MongoLeadRepo) Update(l *models.Lead) error {
	ctx := context.Background()
	res, err := r.coll().ReplaceOne(ctx, bson.M{"_id": l.ID}, l)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoLeadRepo) Delete(id string) error {
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

func (r *MongoLeadRepo) CountByStatus(status string) (int64, error) {
	return r.coll().CountDocuments(context.Background(), bson.M{"status": status})
}

func (r *MongoLeadRepo) Count() (int64, error) {
	return r.coll().CountDocuments(context.Background(), bson.M{})
}
