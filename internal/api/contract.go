package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	gormModels "mtfuji-paragliding/fujipsystem/internal/models/gorm"
	"mtfuji-paragliding/fujipsystem/internal/services"
)

// MemberLookup handles POST /api/cont/lookup and /api/work/lookup
//
// @Summary      Look up a member
// @Description  Resolves a member number or a QR-scanned uuid to the member's name and uuid.
// @Tags         Members
// @Accept       json
// @Produce      json
// @Param        input  body      dtos.LookupRequest  true  "Member number or uuid"
// @Success      200    {object}  dtos.APIResponse
// @Failure      400    {object}  dtos.APIResponse
// @Failure      404    {object}  dtos.APIResponse
// @Router       /api/cont/lookup [post]
func (h *Handlers) MemberLookup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LookupRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		member, err := h.deps.Services.Members.Lookup(r.Context(), req.Query)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "member found", toMemberSummary(member))
	}
}

// RegisterContract handles POST /api/cont/register
//
// @Summary      Register a daily flight record
// @Description  Creates the record for (uuid, flight_date) or overwrites it when it exists.
// @Tags         Contracts
// @Accept       json
// @Produce      json
// @Param        input  body      dtos.ContractRecordRequest  true  "Daily report"
// @Success      201    {object}  dtos.APIResponse
// @Success      200    {object}  dtos.APIResponse
// @Failure      400    {object}  dtos.APIResponse
// @Failure      404    {object}  dtos.APIResponse
// @Router       /api/cont/register [post]
func (h *Handlers) RegisterContract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ContractRecordRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		rec, outcome, err := h.deps.Services.Contracts.Register(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		resp := dtos.RegisterResponse{ID: rec.ID, Outcome: string(outcome)}
		if outcome == services.OutcomeCreated {
			common.RespondSuccess(w, initTime, constants.MsgRegistered, resp, http.StatusCreated)
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgUpdatedToday, resp)
	}
}

// GetContract handles GET /api/cont/{id}
func (h *Handlers) GetContract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		rec, err := h.deps.Services.Contracts.Get(r.Context(), id)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "record fetched", services.ToContractRecordResponse(*rec))
	}
}

// UpdateContract handles PUT /api/cont/{id}. Only records dated today are editable.
func (h *Handlers) UpdateContract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		var req dtos.ContractRecordRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		rec, err := h.deps.Services.Contracts.Update(r.Context(), id, req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgUpdated, services.ToContractRecordResponse(*rec))
	}
}

// ListContracts handles GET /api/cont/list (current month)
func (h *Handlers) ListContracts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		records, err := h.deps.Services.Contracts.CurrentMonth(r.Context())
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "records fetched", toRecordResponses(records))
	}
}

// ContractSummary handles GET /api/cont_info/summary?year=&month=
func (h *Handlers) ContractSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		year, month, err := h.yearMonth(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		report, err := h.deps.Services.Contracts.Summary(r.Context(), year, time.Month(month))
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "summary fetched", report)
	}
}

// ContractFlightDays handles GET /api/cont_info/flight_days?year=&month=
func (h *Handlers) ContractFlightDays() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		year, month, err := h.yearMonth(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		report, err := h.deps.Services.Contracts.FlightDays(r.Context(), year, time.Month(month))
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "flight days fetched", report)
	}
}

// ContractDetail handles GET /api/cont_info/detail/{uuid}?year=&month=
func (h *Handlers) ContractDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		year, month, err := h.yearMonth(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		detail, err := h.deps.Services.Contracts.Detail(r.Context(), chi.URLParam(r, "uuid"), year, time.Month(month))
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "detail fetched", detail)
	}
}

// ExportContracts handles GET /api/cont_info/export?year=&month= and streams the
// monthly statement workbook.
func (h *Handlers) ExportContracts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		year, month, err := h.yearMonth(r)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		body, err := h.deps.Services.Contracts.ExportMonth(r.Context(), year, time.Month(month))
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+services.ExportFileName(year, time.Month(month))+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

func toRecordResponses(records []gormModels.ContractRecord) []dtos.ContractRecordResponse {
	out := make([]dtos.ContractRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, services.ToContractRecordResponse(rec))
	}
	return out
}
