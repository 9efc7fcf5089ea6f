package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// yearMonth reads ?year=&month=, defaulting to the current month.
func (h *Handlers) yearMonth(r *http.Request) (int, int, error) {
	q := r.URL.Query()
	year, month, err := calendar.ResolveYearMonth(q.Get("year"), q.Get("month"), h.deps.Services.Contracts.Today())
	if err != nil {
		return 0, 0, common.NewValidationError("%s", err.Error())
	}
	return year, int(month), nil
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, common.NewValidationError("invalid id %q", chi.URLParam(r, "id"))
	}
	return uint(id), nil
}

func toMemberSummary(m *gormModels.Member) dtos.MemberSummary {
	return dtos.MemberSummary{
		FullName:     m.FullName,
		UUID:         m.UUID,
		MemberNumber: m.MemberNumber,
	}
}
