package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
)

func TestIoFlightService_CheckinCheckoutCycle(t *testing.T) {
	env := newTestEnv(t, day(2026, 3, 5))
	ctx := context.Background()

	in, err := env.io.CheckIn(ctx, dtos.IoCheckinRequest{MemberNumber: "1003", InsuranceType: "1day", GliderName: "Rental A"})
	require.NoError(t, err)
	assert.Equal(t, ActionCheckin, in.Action)
	assert.Equal(t, "10:00", in.Time)

	out, err := env.io.CheckIn(ctx, dtos.IoCheckinRequest{UUID: kanUUID})
	require.NoError(t, err)
	assert.Equal(t, ActionCheckout, out.Action)
	assert.Equal(t, in.IoFlightID, out.IoFlightID)

	_, err = env.io.CheckIn(ctx, dtos.IoCheckinRequest{MemberNumber: "1003"})
	assert.True(t, errors.Is(err, common.ErrValidation), "got %v", err)

	rows, err := env.io.Today(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rental A", rows[0].GliderName)
	assert.Equal(t, "1day", rows[0].InsuranceType)
	require.NotNil(t, rows[0].OutTime)
}

func TestIoFlightService_CheckinUnknownMember(t *testing.T) {
	env := newTestEnv(t, day(2026, 3, 5))

	_, err := env.io.CheckIn(context.Background(), dtos.IoCheckinRequest{MemberNumber: "9999"})
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = env.io.CheckIn(context.Background(), dtos.IoCheckinRequest{})
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestIoFlightService_LookupExpiry(t *testing.T) {
	env := newTestEnv(t, day(2026, 3, 5))
	require.NoError(t, env.db.Model(&gormModels.Member{}).
		Where("uuid = ?", kanUUID).
		Updates(map[string]any{
			"reglimit_date": day(2026, 3, 20),
			"repack_date":   day(2025, 3, 1),
		}).Error)

	resp, err := env.io.Lookup(context.Background(), kanUUID)
	require.NoError(t, err)
	assert.Equal(t, "1003", resp.MemberNumber)
	assert.Equal(t, string(ExpiryWarning), resp.LicenseStatus)
	require.NotNil(t, resp.RepackLimit)
	assert.Equal(t, "2026-03-01", *resp.RepackLimit)
	assert.Equal(t, string(ExpiryExpired), resp.RepackStatus)
	assert.False(t, resp.AlreadyIn)

	_, err = env.io.CheckIn(context.Background(), dtos.IoCheckinRequest{UUID: kanUUID})
	require.NoError(t, err)

	resp, err = env.io.Lookup(context.Background(), "1003")
	require.NoError(t, err)
	assert.True(t, resp.AlreadyIn)
	assert.False(t, resp.AlreadyOut)
	require.NotNil(t, resp.InTime)
	assert.Equal(t, "10:00", *resp.InTime)
}
