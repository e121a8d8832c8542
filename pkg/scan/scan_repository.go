package scan

import (
	"context"

	"github.com/freshkeep/freshkeep-backend/entities"

	"gorm.io/gorm"
)

type (
	ScanRepository interface {
		AddLabelScan(ctx context.Context, labelScan *entities.LabelScan) error
		GetLabelScanByID(ctx context.Context, id string) (*entities.LabelScan, error)
		UpdateLabelScan(ctx context.Context, labelScan *entities.LabelScan) error
		GetLabelScans(ctx context.Context, userID string) ([]*entities.LabelScan, error)
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) AddLabelScan(ctx context.Context, labelScan *entities.LabelScan) error {
	return r.db.WithContext(ctx).Create(labelScan).Error
}

func (r *scanRepository) GetLabelScanByID(ctx context.Context, id string) (*entities.LabelScan, error) {
	var labelScan entities.LabelScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&labelScan).Error; err != nil {
		return nil, err
	}
	return &labelScan, nil
}

func (r *scanRepository) UpdateLabelScan(ctx context.Context, labelScan *entities.LabelScan) error {
	return r.db.WithContext(ctx).Save(labelScan).Error
}

func (r *scanRepository) GetLabelScans(ctx context.Context, userID string) ([]*entities.LabelScan, error) {
	var labelScans []*entities.LabelScan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&labelScans).Error; err != nil {
		return nil, err
	}
	return labelScans, nil
}
