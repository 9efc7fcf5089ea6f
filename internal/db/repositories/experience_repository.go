package repositories

import (
	"context"
	"fmt"

	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"

	"gorm.io/gorm"
)

type ExperienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) Create(ctx context.Context, exp *gormModels.Experience) error {
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}
