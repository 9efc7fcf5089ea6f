package repositories

import (
	"context"
	"fmt"
	"time"

	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkContractRepository handles availability rows in work_contract.
type WorkContractRepository struct {
	db *gorm.DB
}

func NewWorkContractRepository(db *gorm.DB) *WorkContractRepository {
	return &WorkContractRepository{db: db}
}

// UpsertAll writes every row in one transaction. An existing (uuid, work_date) row gets
// the new status and a refreshed updated_at.
func (r *WorkContractRepository) UpsertAll(ctx context.Context, rows []gormModels.WorkContract) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uuid"}, {Name: "work_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).Create(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to upsert availability: %w", err)
		}
		return nil
	})
}

// ListForMemberBetween returns one member's rows with start <= work_date <= end.
func (r *WorkContractRepository) ListForMemberBetween(ctx context.Context, uuid string, start, end time.Time) ([]gormModels.WorkContract, error) {
	var rows []gormModels.WorkContract

	err := r.db.WithContext(ctx).
		Where("uuid = ? AND work_date >= ? AND work_date <= ?", uuid, start, end).
		Order("work_date").
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	return rows, nil
}

// ListForMembersBetween returns the rows of the given members with start <= work_date < end.
func (r *WorkContractRepository) ListForMembersBetween(ctx context.Context, uuids []string, start, end time.Time) ([]gormModels.WorkContract, error) {
	if len(uuids) == 0 {
		return nil, nil
	}

	var rows []gormModels.WorkContract
	err := r.db.WithContext(ctx).
		Where("uuid IN ? AND work_date >= ? AND work_date < ?", uuids, start, end).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	return rows, nil
}

// DeleteBefore removes every row with work_date < cutoff and returns the count.
func (r *WorkContractRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("work_date < ?", cutoff).
		Delete(&gormModels.WorkContract{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete availability before %s: %w", cutoff.Format("2006-01-02"), result.Error)
	}
	return result.RowsAffected, nil
}
