package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/db/repositories"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
)

// ScheduleStatus is a normalised availability status. StatusUnset is stored as NULL.
type ScheduleStatus string

const (
	StatusOK    ScheduleStatus = constants.WorkStatusOK
	StatusNG    ScheduleStatus = constants.WorkStatusNG
	StatusUnset ScheduleStatus = ""
)

func (s ScheduleStatus) ptr() *string {
	if s == StatusUnset {
		return nil
	}
	v := string(s)
	return &v
}

// ParseStatus keeps the literal values "OK" and "NG". Everything else, null and other
// casings included, clears the day.
func ParseStatus(raw any) ScheduleStatus {
	s, ok := raw.(string)
	if !ok {
		return StatusUnset
	}
	switch ScheduleStatus(s) {
	case StatusOK:
		return StatusOK
	case StatusNG:
		return StatusNG
	default:
		return StatusUnset
	}
}

type EntryOutcome string

const (
	EntrySaved   EntryOutcome = "saved"
	EntrySkipped EntryOutcome = "skipped"
)

type SkipReason string

const (
	SkipInvalidDate SkipReason = "invalid_date"
	SkipPast        SkipReason = "past"
	SkipOutOfWindow SkipReason = "out_of_window"
	SkipDuplicate   SkipReason = "duplicate_date"
)

// ScheduleEntry is one parsed (date, status) pair from a save request.
type ScheduleEntry struct {
	RawDate string
	Date    time.Time
	Status  ScheduleStatus
	Outcome EntryOutcome
	Reason  SkipReason
}

// ParseScheduleEntry validates one submitted day against today and the booking window.
// Rejected days are tagged as skipped, never returned as errors.
func ParseScheduleEntry(rawDate string, rawStatus any, today, windowStart, windowEnd time.Time) ScheduleEntry {
	entry := ScheduleEntry{RawDate: rawDate, Status: ParseStatus(rawStatus)}

	d, err := calendar.ParseDate(rawDate)
	if err != nil {
		entry.Outcome, entry.Reason = EntrySkipped, SkipInvalidDate
		return entry
	}
	entry.Date = d

	switch {
	case d.Before(today):
		entry.Outcome, entry.Reason = EntrySkipped, SkipPast
	case !calendar.Within(d, windowStart, windowEnd):
		entry.Outcome, entry.Reason = EntrySkipped, SkipOutOfWindow
	default:
		entry.Outcome = EntrySaved
	}
	return entry
}

// AvailabilityService keeps the contractors' day-by-day availability.
type AvailabilityService struct {
	members *MemberDirectory
	repo    *repositories.WorkContractRepository
	zone    calendar.Zone
	metrics *metrics.MetricsRegistry
}

func NewAvailabilityService(
	members *MemberDirectory,
	repo *repositories.WorkContractRepository,
	zone calendar.Zone,
	metricsReg *metrics.MetricsRegistry,
) *AvailabilityService {
	return &AvailabilityService{members: members, repo: repo, zone: zone, metrics: metricsReg}
}

// Window is the current booking window, recomputed on every call.
func (s *AvailabilityService) Window() (time.Time, time.Time) {
	return calendar.ValidWindow(s.zone.Today())
}

// Save upserts every acceptable day in one transaction and reports what happened to
// each submitted date. Dates that are unparsable, past or outside the window are
// skipped without failing the batch.
func (s *AvailabilityService) Save(ctx context.Context, memberUUID string, schedules map[string]any) (*dtos.WorkSaveResponse, error) {
	memberUUID = strings.TrimSpace(memberUUID)
	if memberUUID == "" {
		return nil, common.NewValidationError("%s", constants.MsgUUIDRequired)
	}

	today := s.zone.Today()
	start, end := calendar.ValidWindow(today)

	dates := make([]string, 0, len(schedules))
	for k := range schedules {
		dates = append(dates, k)
	}
	sort.Strings(dates)

	resp := &dtos.WorkSaveResponse{Entries: make([]dtos.WorkEntryResult, 0, len(dates))}
	rows := make([]gormModels.WorkContract, 0, len(dates))
	seen := make(map[time.Time]bool, len(dates))

	for _, raw := range dates {
		entry := ParseScheduleEntry(raw, schedules[raw], today, start, end)
		// One upsert statement may touch each (uuid, date) only once.
		if entry.Outcome == EntrySaved {
			if seen[entry.Date] {
				entry.Outcome, entry.Reason = EntrySkipped, SkipDuplicate
			}
			seen[entry.Date] = true
		}
		resp.Entries = append(resp.Entries, dtos.WorkEntryResult{
			Date:    raw,
			Status:  entry.Status.ptr(),
			Outcome: string(entry.Outcome),
			Reason:  string(entry.Reason),
		})

		if entry.Outcome == EntrySkipped {
			resp.Skipped++
			continue
		}
		resp.Saved++
		rows = append(rows, gormModels.WorkContract{
			UUID:     memberUUID,
			WorkDate: entry.Date,
			Status:   entry.Status.ptr(),
		})
	}

	if err := s.repo.UpsertAll(ctx, rows); err != nil {
		return nil, common.TranslateStoreError(err, constants.MsgSaveFailed)
	}

	for _, e := range resp.Entries {
		s.metrics.AvailabilityEntries.WithLabelValues(e.Outcome, e.Reason).Inc()
	}
	logging.Info("availability saved",
		"uuid", memberUUID,
		"saved", resp.Saved,
		"skipped", resp.Skipped,
	)
	return resp, nil
}

// Schedules returns the member's stored days inside the current window, keyed by
// YYYY-MM-DD.
func (s *AvailabilityService) Schedules(ctx context.Context, memberUUID string) (map[string]*string, error) {
	memberUUID = strings.TrimSpace(memberUUID)
	if memberUUID == "" {
		return nil, common.NewValidationError("%s", constants.MsgUUIDRequired)
	}

	start, end := s.Window()
	rows, err := s.repo.ListForMemberBetween(ctx, memberUUID, start, end)
	if err != nil {
		return nil, common.TranslateStoreError(err, "failed to load availability")
	}

	out := make(map[string]*string, len(rows))
	for _, r := range rows {
		out[calendar.FormatDate(r.WorkDate)] = r.Status
	}
	return out, nil
}

// MonthlyMatrix lays out every contractor's status for every day of the month, with
// the number of OK contractors per day.
func (s *AvailabilityService) MonthlyMatrix(ctx context.Context, year int, month time.Month) (*dtos.WorkMonthlyResponse, error) {
	contractors, err := s.members.Contractors(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]dtos.WorkMember, 0, len(contractors))
	uuids := make([]string, 0, len(contractors))
	for _, m := range contractors {
		members = append(members, dtos.WorkMember{UUID: m.UUID, Name: m.FullName})
		uuids = append(uuids, m.UUID)
	}

	start, end := calendar.MonthRange(year, month)
	rows, err := s.repo.ListForMembersBetween(ctx, uuids, start, end)
	if err != nil {
		return nil, common.TranslateStoreError(err, "failed to load availability")
	}

	type key struct {
		uuid string
		date string
	}
	statuses := make(map[key]string, len(rows))
	for _, r := range rows {
		if r.Status == nil {
			continue
		}
		statuses[key{r.UUID, calendar.FormatDate(r.WorkDate)}] = strings.ToUpper(*r.Status)
	}

	days := make([]dtos.WorkDay, 0, calendar.DaysIn(year, month))
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		date := calendar.FormatDate(d)
		day := dtos.WorkDay{Date: date, Members: make([]dtos.WorkMemberStatus, 0, len(members))}

		for _, m := range members {
			var status *string
			if st, ok := statuses[key{m.UUID, date}]; ok {
				status = &st
				if st == constants.WorkStatusOK {
					day.OKCount++
				}
			}
			day.Members = append(day.Members, dtos.WorkMemberStatus{UUID: m.UUID, Name: m.Name, Status: status})
		}
		days = append(days, day)
	}

	return &dtos.WorkMonthlyResponse{
		Year:    year,
		Month:   int(month),
		Members: members,
		Days:    days,
	}, nil
}
