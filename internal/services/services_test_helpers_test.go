package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/db/dbtest"
	"mtfuji-paragliding/fujipsystem/internal/db/repositories"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
)

const (
	abeUUID = "3f1c2a9e-0d6b-4c55-9f0e-6a1b2c3d4e5f"
	itoUUID = "7a8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d"
	kanUUID = "0b1c2d3e-4f5a-4b6c-9d7e-8f9a0b1c2d3e"
)

type testEnv struct {
	db           *gorm.DB
	zone         calendar.Zone
	metrics      *metrics.MetricsRegistry
	members      *MemberDirectory
	contracts    *ContractService
	availability *AvailabilityService
	io           *IoFlightService
	experience   *ExperienceService
}

// newTestEnv wires every service over an in-memory database with "today" pinned to
// the given day at 10:00 Tokyo time.
func newTestEnv(t *testing.T, today time.Time) *testEnv {
	t.Helper()

	jst, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	now := time.Date(today.Year(), today.Month(), today.Day(), 10, 0, 0, 0, jst)
	zone := calendar.NewZone(calendar.FixedClock(now), jst)

	gdb, sdb := dbtest.OpenWithSQLX(t)
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	members := NewMemberDirectory(repositories.NewMemberRepository(gdb), common.NewCacheService(time.Minute, time.Minute), time.Minute)

	dbtest.Seed(t, gdb,
		&gormModels.Member{UUID: abeUUID, MemberNumber: "1001", FullName: "Abe Taro", Contract: true},
		&gormModels.Member{UUID: itoUUID, MemberNumber: "1002", FullName: "Ito Hanako", Contract: true},
		&gormModels.Member{UUID: kanUUID, MemberNumber: "1003", FullName: "Kanda Jiro", Contract: false},
	)

	return &testEnv{
		db:      gdb,
		zone:    zone,
		metrics: reg,
		members: members,
		contracts: NewContractService(members,
			repositories.NewContractRepository(gdb),
			repositories.NewContractReportRepository(sdb),
			zone, reg),
		availability: NewAvailabilityService(members, repositories.NewWorkContractRepository(gdb), zone, reg),
		io:           NewIoFlightService(members, repositories.NewIoFlightRepository(gdb), zone, reg),
		experience:   NewExperienceService(repositories.NewExperienceRepository(gdb), reg),
	}
}
