package api

import (
	"net/http"
	"time"

	"github.com/go-playground/form/v4"

	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
)

var formDecoder = form.NewDecoder()

// ApplyExperience handles POST /api/apply_exp and /api/apply_exp_e (the English form
// posts the same fields).
//
// @Summary      Experience course application
// @Description  Stores a form-encoded application for the experience course.
// @Tags         Experience
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      500  {object}  dtos.APIResponse
// @Router       /api/apply_exp [post]
func (h *Handlers) ApplyExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := r.ParseForm(); err != nil {
			common.RespondAppError(w, r, initTime, common.NewValidationError("%s", constants.MsgInvalidRequestBody))
			return
		}

		var req dtos.ExperienceRequest
		if err := formDecoder.Decode(&req, r.PostForm); err != nil {
			common.RespondAppError(w, r, initTime, common.NewValidationError("%s", constants.MsgInvalidRequestBody))
			return
		}

		app, err := h.deps.Services.Experiences.Apply(r.Context(), req)
		if err != nil {
			common.RespondAppError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgApplied, dtos.ExperienceResponse{ID: app.ID})
	}
}
