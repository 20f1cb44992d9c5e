package analysisstore

import "context"

// Repository is the storage boundary for analysis records.
type Repository interface {
	Save(ctx context.Context, record *AnalysisRecord) error
	FindByHandCode(ctx context.Context, handCode string) (*AnalysisRecord, error)
	FindRecent(ctx context.Context, limit int) ([]*AnalysisRecord, error)
}
