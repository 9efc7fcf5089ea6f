package api

import (
	"net/http"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
)

// TriggerCleanup handles POST /api/work/cleanup
//
// @Summary      Purge old availability
// @Description  Deletes availability rows dated before the first day of the month two months back.
// @Tags         Jobs
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      500  {object}  dtos.APIResponse
// @Router       /api/work/cleanup [post]
func (h *Handlers) TriggerCleanup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		res, err := h.deps.Jobs.Cleanup.Run(r.Context())
		if err != nil {
			common.RespondAppError(w, r, initTime, common.NewStorageError("availability cleanup failed", err))
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgCleanupCompleted, dtos.CleanupResponse{
			Deleted: res.Deleted,
			Cutoff:  calendar.FormatDate(res.Cutoff),
		})
	}
}

// JobStatus handles GET /api/jobs/status
func (h *Handlers) JobStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Job status retrieved", dtos.JobStatusData{
			Jobs: h.deps.Jobs.Scheduler.Jobs(),
		})
	}
}
