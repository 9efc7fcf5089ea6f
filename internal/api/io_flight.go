package api

import (
	"net/http"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
	"mtfuji-paragliding/fujipsystem/internal/services"
)

// IoLookup handles POST /api/io/lookup
//
// @Summary      Entry desk lookup
// @Description  Member profile, license and repack expiry status, and today's entry state.
// @Tags         IoFlight
// @Accept       json
// @Produce      json
// @Param        input  body      dtos.LookupRequest  true  "Member number or uuid"
// @Success      200    {object}  dtos.APIResponse
// @Failure      404    {object}  dtos.APIResponse
// @Router       /api/io/lookup [post]
func (h *Handlers) IoLookup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LookupRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		resp, err := h.deps.Services.IoFlights.Lookup(r.Context(), req.Query)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "member found", resp)
	}
}

// IoCheckin handles POST /api/io/checkin. The first call of the day records entry,
// the second records exit.
func (h *Handlers) IoCheckin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.IoCheckinRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		resp, err := h.deps.Services.IoFlights.CheckIn(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		msg := constants.MsgCheckedIn
		if resp.Action == services.ActionCheckout {
			msg = constants.MsgCheckedOut
		}
		common.RespondSuccess(w, initTime, msg, resp)
	}
}

// IoToday handles GET /api/io/today
func (h *Handlers) IoToday() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		rows, err := h.deps.Services.IoFlights.Today(r.Context())
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "today's entries fetched", rows)
	}
}
