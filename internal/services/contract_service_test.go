package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
)

func TestContractService_RegisterCreatesThenUpdates(t *testing.T) {
	env := newTestEnv(t, day(2026, 3, 5))
	ctx := context.Background()

	rec, outcome, err := env.contracts.Register(ctx, dtos.ContractRecordRequest{
		UUID:        abeUUID,
		DailyFlight: 2,
		NearMiss:    "gust at takeoff",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, outcome)
	assert.Equal(t, "Abe Taro", rec.Name)
	assert.True(t, rec.FlightDate.Equal(day(2026, 3, 5)))
	assert.True(t, rec.TotalAmount.Equal(decimal.NewFromInt(7000)))
	assert.False(t, rec.MiniGuarantee)

	again, outcome, err := env.contracts.Register(ctx, dtos.ContractRecordRequest{
		UUID:        abeUUID,
		FlightDate:  "2026-03-05",
		DailyFlight: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)
	assert.Equal(t, rec.ID, again.ID)
	assert.True(t, again.TotalAmount.Equal(decimal.NewFromInt(6000)))
	assert.True(t, again.MiniGuarantee)
	assert.Empty(t, again.NearMiss, "fields are overwritten on re-registration")

	var count int64
	require.NoError(t, env.db.Model(&gormModels.ContractRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.ContractRecordsTotal.WithLabelValues("created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.ContractRecordsTotal.WithLabelValues("updated")))
}

func TestContractService_RegisterValidation(t *testing.T) {
	env := newTestEnv(t, day(2026, 3, 5))
	ctx := context.Background()

	tests := []struct {
		name string
		req  dtos.ContractRecordRequest
		kind error
	}{
		{"missing uuid", dtos.ContractRecordRequest{UUID: "  "}, common.ErrValidation},
		{"bad date", dtos.ContractRecordRequest{UUID: abeUUID, FlightDate: "2026/03/05"}, common.ErrValidation},
		{"bad repack date", dtos.ContractRecordRequest{UUID: abeUUID, RepackDate: "soon"}, common.ErrValidation},
		{"negative flights", dtos.ContractRecordRequest{UUID: abeUUID, DailyFlight: -1}, common.ErrValidation},
		{"too many flights", dtos.ContractRecordRequest{UUID: abeUUID, DailyFlight: 101}, common.ErrValidation},
		{"unknown member", dtos.ContractRecordRequest{UUID: "ffffffff-ffff-4fff-bfff-ffffffffffff"}, common.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.contracts.Register(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}

	var count int64
	require.NoError(t, env.db.Model(&gormModels.ContractRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContractService_UpdateTodayOnly(t *testing.T) {
	env := newTestEnv(t, day(2026, 3, 5))
	ctx := context.Background()

	past, _, err := env.contracts.Register(ctx, dtos.ContractRecordRequest{UUID: abeUUID, FlightDate: "2026-03-04", DailyFlight: 3})
	require.NoError(t, err)
	today, _, err := env.contracts.Register(ctx, dtos.ContractRecordRequest{UUID: abeUUID, DailyFlight: 1})
	require.NoError(t, err)

	_, err = env.contracts.Update(ctx, past.ID, dtos.ContractRecordRequest{DailyFlight: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrForbidden))

	// Past records stay locked whatever the payload holds.
	_, err = env.contracts.Update(ctx, past.ID, dtos.ContractRecordRequest{DailyFlight: -1})
	assert.True(t, errors.Is(err, common.ErrForbidden), "got %v", err)
	_, err = env.contracts.Update(ctx, past.ID, dtos.ContractRecordRequest{RepackDate: "garbage"})
	assert.True(t, errors.Is(err, common.ErrForbidden), "got %v", err)

	_, err = env.contracts.Update(ctx, today.ID, dtos.ContractRecordRequest{RepackDate: "garbage"})
	assert.True(t, errors.Is(err, common.ErrValidation), "got %v", err)

	unchanged, err := env.contracts.Get(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, unchanged.DailyFlight)
	assert.True(t, unchanged.TotalAmount.Equal(decimal.NewFromInt(11000)))

	updated, err := env.contracts.Update(ctx, today.ID, dtos.ContractRecordRequest{DailyFlight: 4, FlightDate: "2020-01-01"})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.DailyFlight)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(14000)))
	assert.True(t, updated.FlightDate.Equal(day(2026, 3, 5)), "edit must not move the record")
	assert.Equal(t, "Abe Taro", updated.Name)

	_, err = env.contracts.Update(ctx, 9999, dtos.ContractRecordRequest{})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestContractService_MonthlyViews(t *testing.T) {
	env := newTestEnv(t, day(2026, 3, 20))
	ctx := context.Background()

	for _, req := range []dtos.ContractRecordRequest{
		{UUID: abeUUID, FlightDate: "2026-03-02", DailyFlight: 2, Improvement: "brief earlier"},
		{UUID: abeUUID, FlightDate: "2026-03-09", DailyFlight: 4, NearMiss: "crosswind", DamagedSection: "riser"},
		{UUID: abeUUID, FlightDate: "2026-04-01", DailyFlight: 5},
	} {
		_, _, err := env.contracts.Register(ctx, req)
		require.NoError(t, err)
	}

	summary, err := env.contracts.Summary(ctx, 2026, 3)
	require.NoError(t, err)
	require.Len(t, summary.Data, 2, "every contractor is listed")
	assert.Equal(t, "Abe Taro", summary.Data[0].Name)
	assert.Equal(t, 6, summary.Data[0].TotalFlights)
	assert.True(t, summary.Data[0].TotalAmount.Equal(decimal.NewFromInt(21000)))
	assert.Equal(t, "Ito Hanako", summary.Data[1].Name)
	assert.Zero(t, summary.Data[1].TotalFlights)
	assert.True(t, summary.Data[1].TotalAmount.IsZero())

	days, err := env.contracts.FlightDays(ctx, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, days.Data[0].FlightDays)
	assert.Zero(t, days.Data[1].FlightDays)

	detail, err := env.contracts.Detail(ctx, abeUUID, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, "Abe Taro", detail.Name)
	require.Len(t, detail.Data, 2)
	assert.Equal(t, "2026-03-02", detail.Data[0].FlightDate)
	assert.Equal(t, "改善:brief earlier", detail.Data[0].Notes)
	assert.Equal(t, "ヒヤリ:crosswind / 破損:riser", detail.Data[1].Notes)

	list, err := env.contracts.CurrentMonth(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestContractService_DetailNameFallback(t *testing.T) {
	env := newTestEnv(t, day(2026, 3, 20))
	ctx := context.Background()

	detail, err := env.contracts.Detail(ctx, itoUUID, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, "Ito Hanako", detail.Name)
	assert.Empty(t, detail.Data)

	unknown := "not-a-member"
	detail, err = env.contracts.Detail(ctx, unknown, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, unknown, detail.Name)
}

func TestBuildNotes(t *testing.T) {
	assert.Equal(t, "", BuildNotes("", " ", ""))
	assert.Equal(t, "ヒヤリ:a / 改善:b / 破損:c", BuildNotes("a", "b", "c"))
	assert.Equal(t, "破損:c", BuildNotes("", "", "c"))
}

func TestContractService_ExportMonth(t *testing.T) {
	env := newTestEnv(t, day(2026, 3, 20))
	ctx := context.Background()

	_, _, err := env.contracts.Register(ctx, dtos.ContractRecordRequest{UUID: abeUUID, FlightDate: "2026-03-02", DailyFlight: 3})
	require.NoError(t, err)

	data, err := env.contracts.ExportMonth(ctx, 2026, 3)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Detail"}, f.GetSheetList())

	summaryRows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summaryRows, 4, "header, two contractors, total")
	assert.Equal(t, "Abe Taro", summaryRows[1][0])
	assert.Equal(t, "Total", summaryRows[3][0])
	assert.Equal(t, "11000", summaryRows[3][4])

	detailRows, err := f.GetRows("Detail")
	require.NoError(t, err)
	require.Len(t, detailRows, 2)
	assert.Equal(t, "2026-03-02", detailRows[1][0])

	assert.Equal(t, "contract_2026-03.xlsx", ExportFileName(2026, 3))
}
