package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/db/repositories"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
)

const (
	ActionCheckin  = "checkin"
	ActionCheckout = "checkout"
)

// IoFlightService records members going up the mountain and coming back down.
type IoFlightService struct {
	members *MemberDirectory
	repo    *repositories.IoFlightRepository
	zone    calendar.Zone
	metrics *metrics.MetricsRegistry
}

func NewIoFlightService(
	members *MemberDirectory,
	repo *repositories.IoFlightRepository,
	zone calendar.Zone,
	metricsReg *metrics.MetricsRegistry,
) *IoFlightService {
	return &IoFlightService{members: members, repo: repo, zone: zone, metrics: metricsReg}
}

// Lookup returns the member's profile, expiry grades and today's entry state.
func (s *IoFlightService) Lookup(ctx context.Context, query string) (*dtos.IoLookupResponse, error) {
	member, err := s.members.LookupScan(ctx, query)
	if err != nil {
		return nil, err
	}

	today := s.zone.Today()
	existing, err := s.repo.FindForDay(ctx, member.UUID, today)
	if err != nil {
		return nil, common.TranslateStoreError(err, "failed to load today's entry")
	}

	repackLimit := RepackLimit(member.RepackDate)
	resp := &dtos.IoLookupResponse{
		MemberNumber:  member.MemberNumber,
		UUID:          member.UUID,
		FullName:      member.FullName,
		MemberType:    member.MemberType,
		CourseName:    member.CourseName,
		RegNo:         member.RegNo,
		ReglimitDate:  formatOptionalDate(member.ReglimitDate),
		License:       member.License,
		GliderName:    member.GliderName,
		GliderColor:   member.GliderColor,
		RepackDate:    formatOptionalDate(member.RepackDate),
		RepackLimit:   formatOptionalDate(repackLimit),
		LicenseStatus: string(ClassifyExpiry(member.ReglimitDate, today)),
		RepackStatus:  string(ClassifyExpiry(repackLimit, today)),
	}

	if existing != nil {
		id := existing.ID
		resp.AlreadyIn = true
		resp.AlreadyOut = existing.OutTime != nil
		resp.IoFlightID = &id
		resp.InTime = formatClock(existing.InTime, s.zone.Location)
		resp.OutTime = formatClock(existing.OutTime, s.zone.Location)
	}
	return resp, nil
}

// CheckIn records an entry when the member has none today, otherwise the exit. A
// second exit on the same day is rejected.
func (s *IoFlightService) CheckIn(ctx context.Context, req dtos.IoCheckinRequest) (*dtos.IoCheckinResponse, error) {
	member, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	today := s.zone.Today()
	now := s.zone.Now()

	existing, err := s.repo.FindForDay(ctx, member.UUID, today)
	if err != nil {
		return nil, common.TranslateStoreError(err, "failed to load today's entry")
	}

	if existing != nil {
		if existing.OutTime != nil {
			return nil, common.NewValidationError("%s", constants.MsgAlreadyCheckedOut)
		}
		updated, err := s.repo.SetOutTime(ctx, existing.ID, now)
		if err != nil {
			return nil, common.TranslateStoreError(err, constants.MsgSaveFailed)
		}
		if !updated {
			return nil, common.NewValidationError("%s", constants.MsgAlreadyCheckedOut)
		}

		s.metrics.IoFlightEventsTotal.WithLabelValues(ActionCheckout).Inc()
		logging.Info("exit recorded", "uuid", member.UUID, "io_flight_id", existing.ID)
		return &dtos.IoCheckinResponse{
			Action:     ActionCheckout,
			Time:       now.Format("15:04"),
			FullName:   member.FullName,
			IoFlightID: existing.ID,
		}, nil
	}

	rec := &gormModels.IoFlight{
		MemberNumber:  member.MemberNumber,
		UUID:          member.UUID,
		MemberClass:   firstNonBlank(req.MemberClass, member.MemberType),
		FullName:      member.FullName,
		CourseName:    firstNonBlank(req.CourseName, member.CourseName),
		RegNo:         member.RegNo,
		ReglimitDate:  member.ReglimitDate,
		License:       member.License,
		GliderName:    firstNonBlank(req.GliderName, member.GliderName),
		GliderColor:   firstNonBlank(req.GliderColor, member.GliderColor),
		RepackDate:    RepackLimit(member.RepackDate),
		InsuranceType: req.InsuranceType,
		RadioType:     req.RadioType,
		EntryDate:     today,
		InTime:        &now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, common.TranslateStoreError(err, constants.MsgSaveFailed)
	}

	s.metrics.IoFlightEventsTotal.WithLabelValues(ActionCheckin).Inc()
	logging.Info("entry recorded", "uuid", member.UUID, "io_flight_id", rec.ID)
	return &dtos.IoCheckinResponse{
		Action:     ActionCheckin,
		Time:       now.Format("15:04"),
		FullName:   member.FullName,
		IoFlightID: rec.ID,
	}, nil
}

func (s *IoFlightService) resolve(ctx context.Context, req dtos.IoCheckinRequest) (*gormModels.Member, error) {
	if id, err := uuid.Parse(strings.TrimSpace(req.UUID)); err == nil {
		member, err := s.members.ByUUID(ctx, id.String())
		if err == nil || !isNotFound(err) {
			return member, err
		}
	}
	if number := strings.TrimSpace(req.MemberNumber); number != "" {
		return s.members.LookupScan(ctx, number)
	}
	if strings.TrimSpace(req.UUID) == "" {
		return nil, common.NewValidationError("%s", constants.MsgQueryRequired)
	}
	return nil, common.NewNotFoundError("%s", constants.MsgMemberNotFound)
}

// Today lists today's entries in entry order.
func (s *IoFlightService) Today(ctx context.Context) ([]dtos.IoFlightRow, error) {
	recs, err := s.repo.ListForDay(ctx, s.zone.Today())
	if err != nil {
		return nil, common.TranslateStoreError(err, "failed to list today's entries")
	}

	rows := make([]dtos.IoFlightRow, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, dtos.IoFlightRow{
			ID:            r.ID,
			MemberNumber:  r.MemberNumber,
			UUID:          r.UUID,
			MemberClass:   r.MemberClass,
			FullName:      r.FullName,
			CourseName:    r.CourseName,
			GliderName:    r.GliderName,
			GliderColor:   r.GliderColor,
			InsuranceType: r.InsuranceType,
			RadioType:     r.RadioType,
			InTime:        formatClock(r.InTime, s.zone.Location),
			OutTime:       formatClock(r.OutTime, s.zone.Location),
		})
	}
	return rows, nil
}
