package analysisstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "analysis_records"

type mongoRepository struct {
	db *mongo.Database
}

// NewMongoRepository adapts a mongo database handle to Repository.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) Save(ctx context.Context, record *AnalysisRecord) error {
	collection := r.db.Collection(collectionName)
	doc := bson.M{
		"_id":          record.ID,
		"hand_code":    record.HandCode,
		"shanten":      record.Shanten,
		"ukeire_total": record.UkeireTotal,
		"created_at":   record.CreatedAt,
	}
	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("analysisstore: saving record: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByHandCode(ctx context.Context, handCode string) (*AnalysisRecord, error) {
	collection := r.db.Collection(collectionName)
	opts := options.FindOne().SetSort(bson.M{"created_at": -1})

	var doc bson.M
	err := collection.FindOne(ctx, bson.M{"hand_code": handCode}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("analysisstore: finding record for %q: %w", handCode, err)
	}
	return docToRecord(doc), nil
}

func (r *mongoRepository) FindRecent(ctx context.Context, limit int) ([]*AnalysisRecord, error) {
	collection := r.db.Collection(collectionName)
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("analysisstore: listing recent records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*AnalysisRecord
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		records = append(records, docToRecord(doc))
	}
	return records, nil
}

func docToRecord(doc bson.M) *AnalysisRecord {
	return &AnalysisRecord{
		ID:          doc["_id"].(primitive.ObjectID),
		HandCode:    doc["hand_code"].(string),
		Shanten:     toInt(doc["shanten"]),
		UkeireTotal: toInt(doc["ukeire_total"]),
		CreatedAt:   doc["created_at"].(primitive.DateTime).Time(),
	}
}

func toInt(v any) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
