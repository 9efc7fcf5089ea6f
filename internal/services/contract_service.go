package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/db/repositories"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
)

// RegisterOutcome tells whether Register inserted or overwrote a record.
type RegisterOutcome string

const (
	OutcomeCreated RegisterOutcome = "created"
	OutcomeUpdated RegisterOutcome = "updated"
)

// ContractService is the contractor billing engine: daily flight records priced by
// ComputeFee, plus the monthly views over them.
type ContractService struct {
	members *MemberDirectory
	records *repositories.ContractRepository
	reports *repositories.ContractReportRepository
	zone    calendar.Zone
	metrics *metrics.MetricsRegistry
}

func NewContractService(
	members *MemberDirectory,
	records *repositories.ContractRepository,
	reports *repositories.ContractReportRepository,
	zone calendar.Zone,
	metricsReg *metrics.MetricsRegistry,
) *ContractService {
	return &ContractService{
		members: members,
		records: records,
		reports: reports,
		zone:    zone,
		metrics: metricsReg,
	}
}

// recordInput is a validated ContractRecordRequest.
type recordInput struct {
	flightDate time.Time
	repackDate *time.Time
	flights    int
	req        dtos.ContractRecordRequest
}

func (s *ContractService) parseInput(req dtos.ContractRecordRequest) (recordInput, error) {
	in := recordInput{req: req, flights: int(req.DailyFlight)}

	if in.flights < 0 {
		return in, common.NewValidationError("daily_flight must not be negative")
	}
	if in.flights > constants.MaxDailyFlights {
		return in, common.NewValidationError("daily_flight must not exceed %d", constants.MaxDailyFlights)
	}

	if strings.TrimSpace(req.FlightDate) == "" {
		in.flightDate = s.zone.Today()
	} else {
		d, err := calendar.ParseDate(req.FlightDate)
		if err != nil {
			return in, common.NewValidationError("%s", constants.MsgInvalidDate)
		}
		in.flightDate = d
	}

	repack, err := calendar.ParseOptionalDate(req.RepackDate)
	if err != nil {
		return in, common.NewValidationError("%s", constants.MsgInvalidDate)
	}
	in.repackDate = repack
	return in, nil
}

// apply overwrites every editable field and reprices the record.
func (in recordInput) apply(rec *gormModels.ContractRecord, name string) {
	fee := ComputeFee(in.flights)

	rec.Name = name
	rec.DailyFlight = in.flights
	rec.TakeoffLocation = in.req.TakeoffLocation
	rec.UsedGlider = in.req.UsedGlider
	rec.Size = in.req.Size
	rec.PilotHarness = in.req.PilotHarness
	rec.PassengerHarness = in.req.PassengerHarness
	rec.RepackDate = in.repackDate
	rec.NearMiss = in.req.NearMiss
	rec.Improvement = in.req.Improvement
	rec.DamagedSection = in.req.DamagedSection
	rec.TotalAmount = fee.TotalAmount
	rec.MiniGuarantee = fee.MiniGuarantee
}

// Register upserts the record keyed by (uuid, flight_date). A concurrent insert of the
// same key surfaces as a conflict and is retried once, landing in the update branch.
func (s *ContractService) Register(ctx context.Context, req dtos.ContractRecordRequest) (*gormModels.ContractRecord, RegisterOutcome, error) {
	req.UUID = strings.TrimSpace(req.UUID)
	if req.UUID == "" {
		return nil, "", common.NewValidationError("%s", constants.MsgUUIDRequired)
	}

	in, err := s.parseInput(req)
	if err != nil {
		return nil, "", err
	}

	member, err := s.members.ByUUID(ctx, req.UUID)
	if err != nil {
		return nil, "", err
	}
	name := firstNonBlank(strings.TrimSpace(req.Name), member.FullName)

	rec, outcome, err := s.upsert(ctx, req.UUID, name, in)
	if errors.Is(err, common.ErrConflict) {
		logging.Warn("flight record insert raced, retrying as update",
			"uuid", req.UUID,
			"flight_date", calendar.FormatDate(in.flightDate),
		)
		rec, outcome, err = s.upsert(ctx, req.UUID, name, in)
	}
	if err != nil {
		return nil, "", err
	}

	s.metrics.ContractRecordsTotal.WithLabelValues(string(outcome)).Inc()
	logging.Info("flight record registered",
		"id", rec.ID,
		"uuid", rec.UUID,
		"flight_date", calendar.FormatDate(in.flightDate),
		"daily_flight", rec.DailyFlight,
		"total_amount", rec.TotalAmount.StringFixed(2),
		"outcome", outcome,
	)
	return rec, outcome, nil
}

func (s *ContractService) upsert(ctx context.Context, memberUUID, name string, in recordInput) (*gormModels.ContractRecord, RegisterOutcome, error) {
	var (
		rec     *gormModels.ContractRecord
		outcome RegisterOutcome
	)

	err := s.records.Transaction(ctx, func(tx *gorm.DB) error {
		existing, err := s.records.FindByKeyTx(tx, memberUUID, in.flightDate)
		if err != nil {
			return err
		}

		if existing != nil {
			in.apply(existing, name)
			if err := s.records.SaveTx(tx, existing); err != nil {
				return err
			}
			rec, outcome = existing, OutcomeUpdated
			return nil
		}

		created := &gormModels.ContractRecord{UUID: memberUUID, FlightDate: in.flightDate}
		in.apply(created, name)
		if err := s.records.CreateTx(tx, created); err != nil {
			return err
		}
		rec, outcome = created, OutcomeCreated
		return nil
	})
	if err != nil {
		return nil, "", common.TranslateStoreError(err, constants.MsgSaveFailed)
	}
	return rec, outcome, nil
}

// Update edits a record in place. Only records dated today may be edited; the key
// (uuid, flight_date) never changes.
func (s *ContractService) Update(ctx context.Context, id uint, req dtos.ContractRecordRequest) (*gormModels.ContractRecord, error) {
	req.FlightDate = ""
	today := s.zone.Today()

	var updated *gormModels.ContractRecord
	err := s.records.Transaction(ctx, func(tx *gorm.DB) error {
		rec, err := s.records.FindByIDTx(tx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return common.NewNotFoundError("%s", constants.MsgRecordNotFound)
		}
		if !calendar.Date(rec.FlightDate).Equal(today) {
			return common.NewForbiddenError("%s", constants.MsgEditTodayOnly)
		}

		in, err := s.parseInput(req)
		if err != nil {
			return err
		}

		in.apply(rec, firstNonBlank(strings.TrimSpace(req.Name), rec.Name))
		if err := s.records.SaveTx(tx, rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, common.TranslateStoreError(err, constants.MsgSaveFailed)
	}

	s.metrics.ContractRecordsTotal.WithLabelValues(string(OutcomeUpdated)).Inc()
	logging.Info("flight record edited", "id", id, "daily_flight", updated.DailyFlight)
	return updated, nil
}

func (s *ContractService) Get(ctx context.Context, id uint) (*gormModels.ContractRecord, error) {
	rec, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, common.TranslateStoreError(err, "failed to load flight record")
	}
	if rec == nil {
		return nil, common.NewNotFoundError("%s", constants.MsgRecordNotFound)
	}
	return rec, nil
}

// ListMonth returns the month's records ordered by flight date then id.
func (s *ContractService) ListMonth(ctx context.Context, year int, month time.Month) ([]gormModels.ContractRecord, error) {
	start, end := calendar.MonthRange(year, month)
	recs, err := s.records.ListBetween(ctx, start, end)
	if err != nil {
		return nil, common.TranslateStoreError(err, "failed to list flight records")
	}
	return recs, nil
}

func (s *ContractService) CurrentMonth(ctx context.Context) ([]gormModels.ContractRecord, error) {
	today := s.zone.Today()
	return s.ListMonth(ctx, today.Year(), today.Month())
}

// Today is the local day used for defaults and the edit rule.
func (s *ContractService) Today() time.Time {
	return s.zone.Today()
}

func (s *ContractService) aggregates(ctx context.Context, query string, year int, month time.Month) ([]repositories.ContractAggregate, error) {
	start, end := calendar.MonthRange(year, month)

	began := time.Now()
	rows, err := s.reports.MonthlyAggregates(ctx, start, end)
	s.metrics.DBQueryDuration.WithLabelValues(query).Observe(time.Since(began).Seconds())
	if err != nil {
		s.metrics.DBQueriesTotal.WithLabelValues(query, "error").Inc()
		return nil, common.TranslateStoreError(err, "failed to aggregate flight records")
	}
	s.metrics.DBQueriesTotal.WithLabelValues(query, "ok").Inc()
	return rows, nil
}

// Summary returns flights and amount per contractor; contractors without records
// report zeros.
func (s *ContractService) Summary(ctx context.Context, year int, month time.Month) (*dtos.MonthlyReport[dtos.ContractSummaryRow], error) {
	rows, err := s.aggregates(ctx, "contract_summary", year, month)
	if err != nil {
		return nil, err
	}

	data := make([]dtos.ContractSummaryRow, 0, len(rows))
	for _, r := range rows {
		data = append(data, dtos.ContractSummaryRow{
			UUID:         r.UUID,
			Name:         r.Name,
			TotalFlights: r.TotalFlights,
			TotalAmount:  r.TotalAmount,
		})
	}
	return &dtos.MonthlyReport[dtos.ContractSummaryRow]{Year: year, Month: int(month), Data: data}, nil
}

// FlightDays adds the count of distinct flight dates to the summary.
func (s *ContractService) FlightDays(ctx context.Context, year int, month time.Month) (*dtos.MonthlyReport[dtos.ContractFlightDaysRow], error) {
	rows, err := s.aggregates(ctx, "contract_flight_days", year, month)
	if err != nil {
		return nil, err
	}

	data := make([]dtos.ContractFlightDaysRow, 0, len(rows))
	for _, r := range rows {
		data = append(data, dtos.ContractFlightDaysRow{
			UUID:         r.UUID,
			Name:         r.Name,
			FlightDays:   r.FlightDays,
			TotalFlights: r.TotalFlights,
			TotalAmount:  r.TotalAmount,
		})
	}
	return &dtos.MonthlyReport[dtos.ContractFlightDaysRow]{Year: year, Month: int(month), Data: data}, nil
}

// Detail lists one contractor's days in the month. The display name comes from the
// first record, then the member profile, then the uuid itself.
func (s *ContractService) Detail(ctx context.Context, memberUUID string, year int, month time.Month) (*dtos.ContractDetailResponse, error) {
	memberUUID = strings.TrimSpace(memberUUID)
	if memberUUID == "" {
		return nil, common.NewValidationError("%s", constants.MsgUUIDRequired)
	}

	start, end := calendar.MonthRange(year, month)
	recs, err := s.records.ListForMemberBetween(ctx, memberUUID, start, end)
	if err != nil {
		return nil, common.TranslateStoreError(err, "failed to list flight records")
	}

	name := ""
	if len(recs) > 0 {
		name = recs[0].Name
	}
	if strings.TrimSpace(name) == "" {
		member, err := s.members.ByUUID(ctx, memberUUID)
		switch {
		case err == nil:
			name = member.FullName
		case !isNotFound(err):
			return nil, err
		}
	}
	if strings.TrimSpace(name) == "" {
		name = memberUUID
	}

	data := make([]dtos.ContractDetailRow, 0, len(recs))
	for _, r := range recs {
		data = append(data, dtos.ContractDetailRow{
			FlightDate:    calendar.FormatDate(r.FlightDate),
			DailyFlight:   r.DailyFlight,
			TotalAmount:   r.TotalAmount,
			MiniGuarantee: r.MiniGuarantee,
			Notes:         BuildNotes(r.NearMiss, r.Improvement, r.DamagedSection),
		})
	}

	return &dtos.ContractDetailResponse{
		UUID:  memberUUID,
		Name:  name,
		Year:  year,
		Month: int(month),
		Data:  data,
	}, nil
}

// BuildNotes labels the non-empty notes and joins them in a fixed order.
func BuildNotes(nearMiss, improvement, damaged string) string {
	parts := make([]string, 0, 3)
	if strings.TrimSpace(nearMiss) != "" {
		parts = append(parts, constants.NoteLabelNearMiss+nearMiss)
	}
	if strings.TrimSpace(improvement) != "" {
		parts = append(parts, constants.NoteLabelImprovement+improvement)
	}
	if strings.TrimSpace(damaged) != "" {
		parts = append(parts, constants.NoteLabelDamage+damaged)
	}
	return strings.Join(parts, constants.NoteSeparator)
}

// ToContractRecordResponse renders a record for the edit form and the list.
func ToContractRecordResponse(r gormModels.ContractRecord) dtos.ContractRecordResponse {
	return dtos.ContractRecordResponse{
		ID:               r.ID,
		FlightDate:       calendar.FormatDate(r.FlightDate),
		UUID:             r.UUID,
		Name:             r.Name,
		DailyFlight:      r.DailyFlight,
		TakeoffLocation:  r.TakeoffLocation,
		UsedGlider:       r.UsedGlider,
		Size:             r.Size,
		PilotHarness:     r.PilotHarness,
		RepackDate:       formatOptionalDate(r.RepackDate),
		PassengerHarness: r.PassengerHarness,
		NearMiss:         r.NearMiss,
		Improvement:      r.Improvement,
		DamagedSection:   r.DamagedSection,
		TotalAmount:      r.TotalAmount,
		MiniGuarantee:    r.MiniGuarantee,
	}
}
