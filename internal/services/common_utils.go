package services

import (
	"errors"
	"strings"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
)

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := calendar.FormatDate(*t)
	return &s
}

func formatClock(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("15:04")
	return &s
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
