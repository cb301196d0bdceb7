package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coastwatch/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterID = "report_id"

// DocumentRepository persists the document half of reports and owns the
// shared id sequence. The sequence lives in a counters collection and
// advances with an atomic $inc, so concurrent creates cannot collide.
type DocumentRepository struct {
	uploads  *mongo.Collection
	counters *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database, collection string) *DocumentRepository {
	return &DocumentRepository{
		uploads:  db.Collection(collection),
		counters: db.Collection("counters"),
	}
}

// SeedCounter raises the sequence to the current max document id so a
// pre-existing dataset keeps monotonic allocation. Safe to call on
// every startup.
func (r *DocumentRepository) SeedCounter(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	maxID, err := r.maxReportID(ctx)
	if err != nil {
		return err
	}
	_, err = r.counters.UpdateByID(ctx, counterID,
		bson.M{"$max": bson.M{"seq": maxID}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("seed counter: %w", err)
	}
	return nil
}

// NextReportID atomically allocates the next shared report id.
func (r *DocumentRepository) NextReportID(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	var out struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": counterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("allocate report id: %w", err)
	}
	return out.Seq, nil
}

func (r *DocumentRepository) Insert(ctx context.Context, doc *models.UploadDocument) error {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	if _, err := r.uploads.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert document record: %w", err)
	}
	return nil
}

// GetByReportID returns the document half, or (nil, nil) when no record
// exists — callers degrade rather than fail.
func (r *DocumentRepository) GetByReportID(ctx context.Context, id int64) (*models.UploadDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	var doc models.UploadDocument
	err := r.uploads.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch document record: %w", err)
	}
	return &doc, nil
}

// Delete removes the document record. Absence is not an error.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	res, err := r.uploads.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete document record: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *DocumentRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	n, err := r.uploads.CountDocuments(ctx, bson.M{"category": category})
	if err != nil {
		return 0, fmt.Errorf("count category: %w", err)
	}
	return n, nil
}

func (r *DocumentRepository) maxReportID(ctx context.Context) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	var doc models.UploadDocument
	err := r.uploads.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("max report id: %w", err)
	}
	return doc.ReportID, nil
}
