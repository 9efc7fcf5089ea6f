package services

import (
	"context"
	"strings"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/db/repositories"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
)

type ExperienceService struct {
	repo    *repositories.ExperienceRepository
	metrics *metrics.MetricsRegistry
}

func NewExperienceService(repo *repositories.ExperienceRepository, metricsReg *metrics.MetricsRegistry) *ExperienceService {
	return &ExperienceService{repo: repo, metrics: metricsReg}
}

// Apply stores an experience course application. Blank dates are stored as NULL.
func (s *ExperienceService) Apply(ctx context.Context, req dtos.ExperienceRequest) (*gormModels.Experience, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	applicationDate, err := calendar.ParseOptionalDate(req.ApplicationDate)
	if err != nil {
		return nil, common.NewValidationError("%s", constants.MsgInvalidDate)
	}
	birthday, err := calendar.ParseOptionalDate(req.Birthday)
	if err != nil {
		return nil, common.NewValidationError("%s", constants.MsgInvalidDate)
	}
	agreementDate, err := calendar.ParseOptionalDate(req.AgreementDate)
	if err != nil {
		return nil, common.NewValidationError("%s", constants.MsgInvalidDate)
	}

	exp := &gormModels.Experience{
		ApplicationDate:    applicationDate,
		FullName:           strings.TrimSpace(req.FullName),
		Furigana:           req.Furigana,
		Gender:             req.Gender,
		BloodType:          req.BloodType,
		Birthday:           birthday,
		Weight:             req.Weight,
		ZipCode:            strings.TrimSpace(req.Zip1) + strings.TrimSpace(req.Zip2),
		Address:            req.Address,
		MobilePhone:        req.MobilePhone,
		HomePhone:          req.HomePhone,
		CompanyName:        req.CompanyName,
		CompanyPhone:       req.CompanyPhone,
		EmergencyName:      req.EmergencyName,
		EmergencyPhone:     req.EmergencyPhone,
		Email:              req.Email,
		MedicalHistory:     req.MedicalHistory,
		Relationship:       req.Relationship,
		CourseExp:          req.CourseExp,
		SchoolFind:         req.SchoolFind,
		SchoolText:         req.SchoolText,
		AgreementDate:      agreementDate,
		SignatureName:      strings.TrimSpace(req.SignatureName),
		GuardianName:       req.GuardianName,
		InsuranceAgreement: req.InsuranceAgreement == "1",
	}

	if err := s.repo.Create(ctx, exp); err != nil {
		return nil, common.TranslateStoreError(err, constants.MsgSaveFailed)
	}

	s.metrics.ExperienceApplications.Inc()
	logging.Info("experience application received", "id", exp.ID, "course", exp.CourseExp)
	return exp, nil
}
