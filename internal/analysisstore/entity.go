// Package analysisstore persists computed hand analyses to mongo as a
// history of results. The service writes a record for every fresh
// computation; repeated requests are answered from memocache, not from
// this store.
package analysisstore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalysisRecord is one persisted analysis result for a hand code.
type AnalysisRecord struct {
	ID          primitive.ObjectID `bson:"_id"`
	HandCode    string             `bson:"hand_code"`
	Shanten     int                `bson:"shanten"`
	UkeireTotal int                `bson:"ukeire_total"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// NewAnalysisRecord builds a record ready to save.
func NewAnalysisRecord(handCode string, shanten, ukeireTotal int) *AnalysisRecord {
	return &AnalysisRecord{
		ID:          primitive.NewObjectID(),
		HandCode:    handCode,
		Shanten:     shanten,
		UkeireTotal: ukeireTotal,
		CreatedAt:   time.Now(),
	}
}
