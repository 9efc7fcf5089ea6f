package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"

	"gorm.io/gorm"
)

// ContractRepository handles rep_contract rows. Methods taking a *gorm.DB run inside
// the caller's transaction.
type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// Transaction runs fn against a transaction handle, rolling back when fn fails.
func (r *ContractRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// FindByID returns nil, nil when the record does not exist.
func (r *ContractRepository) FindByID(ctx context.Context, id uint) (*gormModels.ContractRecord, error) {
	return r.FindByIDTx(r.db.WithContext(ctx), id)
}

func (r *ContractRepository) FindByIDTx(tx *gorm.DB, id uint) (*gormModels.ContractRecord, error) {
	var rec gormModels.ContractRecord
	if err := tx.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight record: %w", err)
	}
	return &rec, nil
}

// FindByKeyTx looks a record up by its (uuid, flight_date) key.
func (r *ContractRepository) FindByKeyTx(tx *gorm.DB, uuid string, flightDate time.Time) (*gormModels.ContractRecord, error) {
	var rec gormModels.ContractRecord
	err := tx.
		Where("uuid = ? AND flight_date = ?", uuid, flightDate).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight record: %w", err)
	}
	return &rec, nil
}

// CreateTx inserts rec. A duplicate key surfaces as gorm.ErrDuplicatedKey.
func (r *ContractRepository) CreateTx(tx *gorm.DB, rec *gormModels.ContractRecord) error {
	return tx.Create(rec).Error
}

// SaveTx writes every column of an existing record.
func (r *ContractRepository) SaveTx(tx *gorm.DB, rec *gormModels.ContractRecord) error {
	return tx.Save(rec).Error
}

// ListBetween returns the records with start <= flight_date < end.
func (r *ContractRepository) ListBetween(ctx context.Context, start, end time.Time) ([]gormModels.ContractRecord, error) {
	var recs []gormModels.ContractRecord

	err := r.db.WithContext(ctx).
		Where("flight_date >= ? AND flight_date < ?", start, end).
		Order("flight_date").
		Order("id").
		Find(&recs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list flight records: %w", err)
	}
	return recs, nil
}

// ListForMemberBetween returns one contractor's records with start <= flight_date < end.
func (r *ContractRepository) ListForMemberBetween(ctx context.Context, uuid string, start, end time.Time) ([]gormModels.ContractRecord, error) {
	var recs []gormModels.ContractRecord

	err := r.db.WithContext(ctx).
		Where("uuid = ? AND flight_date >= ? AND flight_date < ?", uuid, start, end).
		Order("flight_date").
		Order("id").
		Find(&recs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list flight records: %w", err)
	}
	return recs, nil
}
