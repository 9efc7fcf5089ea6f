package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mtfuji-paragliding/fujipsystem/internal/api"
	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/db/dbtest"
	"mtfuji-paragliding/fujipsystem/internal/jobs"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
	"mtfuji-paragliding/fujipsystem/internal/routes"
)

const (
	abeUUID = "3f1c2a9e-0d6b-4c55-9f0e-6a1b2c3d4e5f"
	itoUUID = "7a8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d"
)

type testServer struct {
	db      *gorm.DB
	handler http.Handler
}

// newTestServer serves the full router over an in-memory database with today pinned
// to 2026-03-10 10:00 in Tokyo.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	jst, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	zone := calendar.NewZone(calendar.FixedClock(time.Date(2026, 3, 10, 10, 0, 0, 0, jst)), jst)

	gdb, sdb := dbtest.OpenWithSQLX(t)
	dbtest.Seed(t, gdb,
		&gormModels.Member{UUID: abeUUID, MemberNumber: "1001", FullName: "Abe Taro", Contract: true},
		&gormModels.Member{UUID: itoUUID, MemberNumber: "1002", FullName: "Ito Hanako", Contract: true},
	)

	reg := prometheus.NewRegistry()
	deps, err := api.InitDependencies(api.DependencyOptions{
		ORM:      gdb,
		SQLX:     sdb,
		Cache:    common.NewCacheService(time.Minute, time.Minute),
		CacheTTL: time.Minute,
		Zone:     zone,
		Metrics:  metrics.NewMetricsRegistry(reg),
		Jobs:     jobs.Options{Location: jst, CleanupSchedule: "0 0 1 * *", CleanupEnabled: false},
	})
	require.NoError(t, err)

	handler := routes.RegisterRoutes(deps, routes.Options{
		CORSOrigins:      []string{"http://localhost:5000"},
		LookupRatePerSec: 100,
		LookupBurst:      100,
		Gatherer:         reg,
	})
	return &testServer{db: gdb, handler: handler}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, dtos.APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)

	var resp dtos.APIResponse
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr, resp
}

func dataMap(t *testing.T, resp dtos.APIResponse) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is %T", resp.Data)
	return m
}

func TestMemberLookup(t *testing.T) {
	s := newTestServer(t)

	rr, resp := s.do(t, http.MethodPost, "/api/cont/lookup", dtos.LookupRequest{Query: " 1001 "})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Abe Taro", dataMap(t, resp)["full_name"])
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr, resp = s.do(t, http.MethodPost, "/api/work/lookup", dtos.LookupRequest{Query: itoUUID})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1002", dataMap(t, resp)["member_number"])

	rr, resp = s.do(t, http.MethodPost, "/api/cont/lookup", dtos.LookupRequest{Query: ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "error", resp.Status)

	rr, _ = s.do(t, http.MethodPost, "/api/cont/lookup", dtos.LookupRequest{Query: "9999"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRegisterContract_CreateThenUpdate(t *testing.T) {
	s := newTestServer(t)

	rr, resp := s.do(t, http.MethodPost, "/api/cont/register", map[string]any{
		"uuid":         abeUUID,
		"daily_flight": "3",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "created", dataMap(t, resp)["outcome"])
	id := dataMap(t, resp)["id"].(float64)

	rr, resp = s.do(t, http.MethodPost, "/api/cont/register", map[string]any{
		"uuid":         abeUUID,
		"flight_date":  "2026-03-10",
		"daily_flight": 1,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "updated", dataMap(t, resp)["outcome"])
	assert.Equal(t, id, dataMap(t, resp)["id"])

	rr, resp = s.do(t, http.MethodGet, "/api/cont/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rec := dataMap(t, resp)
	assert.Equal(t, "2026-03-10", rec["flight_date"])
	assert.Equal(t, true, rec["mini_guarantee"])

	rr, resp = s.do(t, http.MethodGet, "/api/cont/list", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, resp.Data, 1)
}

func TestRegisterContract_Errors(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cont/register", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr2, _ := s.do(t, http.MethodPost, "/api/cont/register", map[string]any{"daily_flight": 1})
	assert.Equal(t, http.StatusBadRequest, rr2.Code, "uuid is required")

	rr2, _ = s.do(t, http.MethodPost, "/api/cont/register", map[string]any{"uuid": abeUUID, "daily_flight": -1})
	assert.Equal(t, http.StatusBadRequest, rr2.Code)

	rr2, _ = s.do(t, http.MethodPost, "/api/cont/register", map[string]any{"uuid": "b3d0f1aa-0000-4000-8000-000000000000"})
	assert.Equal(t, http.StatusNotFound, rr2.Code)
}

func TestUpdateContract_TodayOnly(t *testing.T) {
	s := newTestServer(t)
	dbtest.Seed(t, s.db, &gormModels.ContractRecord{
		UUID:       abeUUID,
		Name:       "Abe Taro",
		FlightDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	})

	rr, _ := s.do(t, http.MethodPut, "/api/cont/1", map[string]any{"daily_flight": 2})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr, _ = s.do(t, http.MethodPut, "/api/cont/42", map[string]any{"daily_flight": 2})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = s.do(t, http.MethodGet, "/api/cont/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	created, resp := s.do(t, http.MethodPost, "/api/cont/register", map[string]any{"uuid": itoUUID, "daily_flight": 1})
	require.Equal(t, http.StatusCreated, created.Code)
	path := "/api/cont/" + jsonNumber(dataMap(t, resp)["id"])

	rr, resp = s.do(t, http.MethodPut, path, map[string]any{"daily_flight": 4, "near_miss": "tailwind"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "14000", dataMap(t, resp)["total_amount"])
	assert.Equal(t, "tailwind", dataMap(t, resp)["near_miss"])
}

func TestMonthlyViews(t *testing.T) {
	s := newTestServer(t)
	rr, _ := s.do(t, http.MethodPost, "/api/cont/register", map[string]any{"uuid": abeUUID, "daily_flight": 2})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr, resp := s.do(t, http.MethodGet, "/api/cont_info/summary?year=2026&month=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rows := dataMap(t, resp)["data"].([]any)
	assert.Len(t, rows, 2, "every contractor is listed")

	rr, _ = s.do(t, http.MethodGet, "/api/cont_info/flight_days?month=13", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, resp = s.do(t, http.MethodGet, "/api/cont_info/detail/"+abeUUID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Abe Taro", dataMap(t, resp)["name"])

	req := httptest.NewRequest(http.MethodGet, "/api/cont_info/export?year=2026&month=3", nil)
	xrr := httptest.NewRecorder()
	s.handler.ServeHTTP(xrr, req)
	require.Equal(t, http.StatusOK, xrr.Code)
	assert.Contains(t, xrr.Header().Get("Content-Disposition"), "contract_2026-03.xlsx")
	assert.True(t, bytes.HasPrefix(xrr.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
}

func TestWorkSaveAndSchedules(t *testing.T) {
	s := newTestServer(t)

	rr, resp := s.do(t, http.MethodPost, "/api/work/save", map[string]any{
		"uuid": abeUUID,
		"schedules": map[string]any{
			"2026-03-12": "OK",
			"2026-03-01": "OK",
			"2026-07-01": "NG",
			"bad":        "OK",
		},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	out := dataMap(t, resp)
	assert.Equal(t, float64(1), out["saved"])
	assert.Equal(t, float64(3), out["skipped"])

	rr, resp = s.do(t, http.MethodPost, "/api/work/schedules", dtos.WorkSchedulesRequest{UUID: abeUUID})
	require.Equal(t, http.StatusOK, rr.Code)
	got := dataMap(t, resp)
	assert.Equal(t, "2026-03-01", got["window_start"])
	assert.Equal(t, "2026-06-30", got["window_end"])
	assert.Equal(t, map[string]any{"2026-03-12": "OK"}, got["schedules"])

	rr, resp = s.do(t, http.MethodGet, "/api/cont_info/work_monthly?year=2026&month=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	days := dataMap(t, resp)["days"].([]any)
	assert.Len(t, days, 31)

	rr, _ = s.do(t, http.MethodPost, "/api/work/save", map[string]any{"schedules": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCleanupAndJobStatus(t *testing.T) {
	s := newTestServer(t)
	ok := "OK"
	dbtest.Seed(t, s.db,
		&gormModels.WorkContract{UUID: abeUUID, WorkDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), Status: &ok},
		&gormModels.WorkContract{UUID: abeUUID, WorkDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Status: &ok},
	)

	rr, resp := s.do(t, http.MethodPost, "/api/work/cleanup", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(1), dataMap(t, resp)["deleted"])
	assert.Equal(t, "2026-01-01", dataMap(t, resp)["cutoff"])

	rr, resp = s.do(t, http.MethodGet, "/api/jobs/status", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := dataMap(t, resp)["jobs"].([]any)
	require.Len(t, list, 1)
	job := list[0].(map[string]any)
	assert.Equal(t, "availability_cleanup", job["name"])
	assert.Equal(t, float64(1), job["last_deleted"])
	assert.Equal(t, false, job["enabled"])
}

func TestIoFlightFlow(t *testing.T) {
	s := newTestServer(t)

	rr, resp := s.do(t, http.MethodPost, "/api/io/lookup", dtos.LookupRequest{Query: "1001"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, false, dataMap(t, resp)["already_in"])

	rr, resp = s.do(t, http.MethodPost, "/api/io/checkin", dtos.IoCheckinRequest{MemberNumber: "1001", RadioType: "digital"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "checkin", dataMap(t, resp)["action"])

	rr, resp = s.do(t, http.MethodPost, "/api/io/checkin", dtos.IoCheckinRequest{MemberNumber: "1001"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "checkout", dataMap(t, resp)["action"])

	rr, _ = s.do(t, http.MethodPost, "/api/io/checkin", dtos.IoCheckinRequest{MemberNumber: "1001"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, resp = s.do(t, http.MethodGet, "/api/io/today", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, resp.Data, 1)
}

func TestApplyExperience(t *testing.T) {
	s := newTestServer(t)

	post := func(path string, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		s.handler.ServeHTTP(rr, req)
		return rr
	}

	rr := post("/api/apply_exp", url.Values{"furigana": {"やまだ"}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = post("/api/apply_exp_e", url.Values{
		"full_name":           {"Jane Doe"},
		"signature_name":      {"Jane Doe"},
		"zip1":                {"418"},
		"zip2":                {"0112"},
		"birthday":            {"1990-04-01"},
		"insurance_agreement": {"1"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var saved gormModels.Experience
	require.NoError(t, s.db.First(&saved).Error)
	assert.Equal(t, "4180112", saved.ZipCode)
	assert.True(t, saved.InsuranceAgreement)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthCheck", nil)
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var health struct {
		Status   string                    `json:"status"`
		Services map[string]map[string]any `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Contains(t, health.Services, "postgres")
	assert.NotContains(t, health.Services, "redis", "in-memory cache has nothing to ping")

	s.do(t, http.MethodPost, "/api/cont/lookup", dtos.LookupRequest{Query: "1001"})

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr = httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "fujip_http_requests_total")
}

func jsonNumber(v any) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}
