package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/db/repositories"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
)

// MemberDirectory resolves member numbers and QR-scanned uuids to members, through a
// read-through cache.
type MemberDirectory struct {
	repo  *repositories.MemberRepository
	cache common.CacheInterface
	ttl   time.Duration
}

func NewMemberDirectory(repo *repositories.MemberRepository, cache common.CacheInterface, ttl time.Duration) *MemberDirectory {
	return &MemberDirectory{repo: repo, cache: cache, ttl: ttl}
}

// Lookup tries the member number first, then the uuid when the query is uuid-shaped.
func (d *MemberDirectory) Lookup(ctx context.Context, query string) (*gormModels.Member, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.NewValidationError("%s", constants.MsgQueryRequired)
	}

	member, err := d.byNumber(ctx, query)
	if err == nil {
		return member, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	if id, perr := uuid.Parse(query); perr == nil {
		return d.ByUUID(ctx, id.String())
	}
	return nil, err
}

// LookupScan is the kiosk variant: a uuid-shaped query is only matched as a uuid,
// anything else only as a member number.
func (d *MemberDirectory) LookupScan(ctx context.Context, query string) (*gormModels.Member, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.NewValidationError("%s", constants.MsgQueryRequired)
	}
	if id, err := uuid.Parse(query); err == nil {
		return d.ByUUID(ctx, id.String())
	}
	return d.byNumber(ctx, query)
}

// ByUUID returns a NotFound error for unknown uuids.
func (d *MemberDirectory) ByUUID(ctx context.Context, memberUUID string) (*gormModels.Member, error) {
	key := string(constants.CachePrefixMemberUUID) + memberUUID
	return d.cached(key, func() (*gormModels.Member, error) {
		return d.repo.FindByUUID(ctx, memberUUID)
	})
}

func (d *MemberDirectory) byNumber(ctx context.Context, number string) (*gormModels.Member, error) {
	key := string(constants.CachePrefixMemberNumber) + number
	return d.cached(key, func() (*gormModels.Member, error) {
		return d.repo.FindByNumber(ctx, number)
	})
}

func (d *MemberDirectory) cached(key string, find func() (*gormModels.Member, error)) (*gormModels.Member, error) {
	return common.GetOrSet(d.cache, key, d.ttl, func() (*gormModels.Member, error) {
		m, err := find()
		if err != nil {
			return nil, common.TranslateStoreError(err, "failed to look up member")
		}
		if m == nil {
			return nil, common.NewNotFoundError("%s", constants.MsgMemberNotFound)
		}
		return m, nil
	})
}

// Contractors lists contract-flagged members ordered by name.
func (d *MemberDirectory) Contractors(ctx context.Context) ([]gormModels.Member, error) {
	members, err := d.repo.ListContractors(ctx)
	if err != nil {
		return nil, common.TranslateStoreError(err, "failed to list contractors")
	}
	return members, nil
}
