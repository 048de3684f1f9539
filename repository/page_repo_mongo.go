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

type MongoPageRepo struct {
	DB *mongo.Client
}

func NewMongoPageRepo(db *mongo.Client) *MongoPageRepo {
	return &MongoPageRepo{DB: db}
}

func (r *MongoPageRepo) coll() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("page")
}

func (r *MongoPageRepo) Create(p *models.Page) error {
	ctx := context.Background()
	if p.ID == "" {
		p.ID = newMongoID()
	}
	p.UpdatedAt = time.Now().UTC()
	if p.Sections == nil {
		p.Sections = []models.PageSection{}
	}
	_, err := r.coll().InsertOne(ctx, p)
	return err
}

func (r *MongoPageRepo) List(q models.ListQuery) ([]*models.Page, int64, error) {
	ctx := context.Background()

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = []bson.M{
			{"title": searchRegex(q.Search)},
			{"slug": searchRegex(q.Search)},
		}
	}

	total, err := r.coll().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "slug", Value: 1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cur, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*models.Page
	for cur.Next(ctx) {
		var p models.Page
		if err := cur.Decode(&p); err != nil {
			return nil, 0, err
		}
		out = append(out, &p)
	}
	return out, total, cur.Err()
}

func (r *MongoPageRepo) GetBySlug(slug string) (*models.Page, error) {
	ctx := context.Background()
	var p models.Page
	err := r.coll().FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoPageRepo) GetByID(id string) (*models.Page, error) {
	ctx := context.Background()
	var p models.Page
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoPageRepo) Update(p *models.Page) error {
	ctx := context.Background()
	p.UpdatedAt = time.Now().UTC()
	res, err := r.coll().ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPageRepo) Delete(id string) error {
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
