package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"

	"gorm.io/gorm"
)

// IoFlightRepository handles the daily entry/exit log.
type IoFlightRepository struct {
	db *gorm.DB
}

func NewIoFlightRepository(db *gorm.DB) *IoFlightRepository {
	return &IoFlightRepository{db: db}
}

// FindForDay returns the member's latest record for the day, or nil, nil.
func (r *IoFlightRepository) FindForDay(ctx context.Context, uuid string, day time.Time) (*gormModels.IoFlight, error) {
	var rec gormModels.IoFlight

	err := r.db.WithContext(ctx).
		Where("uuid = ? AND entry_date = ?", uuid, day).
		Order("id DESC").
		First(&rec).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch entry record: %w", err)
	}
	return &rec, nil
}

func (r *IoFlightRepository) Create(ctx context.Context, rec *gormModels.IoFlight) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create entry record: %w", err)
	}
	return nil
}

// SetOutTime records the exit time only while it is still empty. It reports whether a
// row was updated.
func (r *IoFlightRepository) SetOutTime(ctx context.Context, id uint, out time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&gormModels.IoFlight{}).
		Where("id = ? AND out_time IS NULL", id).
		Update("out_time", out)

	if result.Error != nil {
		return false, fmt.Errorf("failed to record exit: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// ListForDay returns every record of the day ordered by entry time.
func (r *IoFlightRepository) ListForDay(ctx context.Context, day time.Time) ([]gormModels.IoFlight, error) {
	var recs []gormModels.IoFlight

	err := r.db.WithContext(ctx).
		Where("entry_date = ?", day).
		Order("in_time").
		Order("id").
		Find(&recs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list entry records: %w", err)
	}
	return recs, nil
}
