package constants

const (
	MsgQueryRequired      = "member number or QR code is required"
	MsgMemberNotFound     = "member not found"
	MsgUUIDRequired       = "uuid is required"
	MsgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	MsgInvalidRequestBody = "invalid request body"
	MsgRecordNotFound     = "flight record not found"
	MsgEditTodayOnly      = "only today's records can be edited"
	MsgSaveFailed         = "failed to save"
	MsgAlreadyCheckedOut  = "exit already recorded for today"
)

const (
	MsgRegistered       = "registered"
	MsgUpdatedToday     = "today's record updated"
	MsgUpdated          = "updated"
	MsgSchedulesSaved   = "saved"
	MsgCleanupCompleted = "cleanup completed"
	MsgCheckedIn        = "entry recorded"
	MsgCheckedOut       = "exit recorded"
	MsgApplied          = "application received"
)
