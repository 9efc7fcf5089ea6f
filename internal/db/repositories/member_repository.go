package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"

	"gorm.io/gorm"
)

// MemberRepository reads the members table.
type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// FindByNumber returns nil, nil when no member has the number.
func (r *MemberRepository) FindByNumber(ctx context.Context, memberNumber string) (*gormModels.Member, error) {
	return r.findOne(ctx, "member_number = ?", memberNumber)
}

// FindByUUID returns nil, nil when no member has the uuid.
func (r *MemberRepository) FindByUUID(ctx context.Context, uuid string) (*gormModels.Member, error) {
	return r.findOne(ctx, "uuid = ?", uuid)
}

func (r *MemberRepository) findOne(ctx context.Context, query string, arg string) (*gormModels.Member, error) {
	var member gormModels.Member

	err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}
	return &member, nil
}

// ListContractors returns contract-flagged members ordered by name.
func (r *MemberRepository) ListContractors(ctx context.Context) ([]gormModels.Member, error) {
	var members []gormModels.Member

	err := r.db.WithContext(ctx).
		Where("contract = ?", true).
		Order("full_name").
		Order("uuid").
		Find(&members).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}
	return members, nil
}
