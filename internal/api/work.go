package api

import (
	"net/http"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
)

// WorkSchedules handles POST /api/work/schedules
//
// @Summary      Member availability
// @Description  Returns the member's OK/NG days from the first of this month to the end of month+3.
// @Tags         Work
// @Accept       json
// @Produce      json
// @Param        input  body      dtos.WorkSchedulesRequest  true  "Member uuid"
// @Success      200    {object}  dtos.APIResponse
// @Failure      400    {object}  dtos.APIResponse
// @Router       /api/work/schedules [post]
func (h *Handlers) WorkSchedules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.WorkSchedulesRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		schedules, err := h.deps.Services.Availability.Schedules(r.Context(), req.UUID)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		start, end := h.deps.Services.Availability.Window()
		common.RespondSuccess(w, initTime, "schedules fetched", dtos.WorkSchedulesResponse{
			UUID:        req.UUID,
			WindowStart: calendar.FormatDate(start),
			WindowEnd:   calendar.FormatDate(end),
			Schedules:   schedules,
		})
	}
}

// WorkSave handles POST /api/work/save. Each submitted date is reported as saved or
// skipped with a reason.
func (h *Handlers) WorkSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.WorkSaveRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		resp, err := h.deps.Services.Availability.Save(r.Context(), req.UUID, req.Schedules)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgSchedulesSaved, resp)
	}
}

// WorkMonthly handles GET /api/cont_info/work_monthly?year=&month=
func (h *Handlers) WorkMonthly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		year, month, err := h.yearMonth(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		matrix, err := h.deps.Services.Availability.MonthlyMatrix(r.Context(), year, time.Month(month))
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "monthly availability fetched", matrix)
	}
}
