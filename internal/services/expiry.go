package services

import (
	"time"

	"mtfuji-paragliding/fujipsystem/internal/constants"
)

type ExpiryStatus string

const (
	ExpiryNone    ExpiryStatus = "none"
	ExpiryExpired ExpiryStatus = "expired"
	ExpiryWarning ExpiryStatus = "warning"
	ExpiryOK      ExpiryStatus = "ok"
)

// ClassifyExpiry grades a license or repack deadline against today. A deadline within
// the next 31 days (inclusive) is a warning.
func ClassifyExpiry(target *time.Time, today time.Time) ExpiryStatus {
	if target == nil {
		return ExpiryNone
	}
	if target.Before(today) {
		return ExpiryExpired
	}
	if !target.After(today.AddDate(0, 0, constants.ExpiryWarningDays)) {
		return ExpiryWarning
	}
	return ExpiryOK
}

// RepackLimit is one year after the repack date. February 29 maps to February 28.
func RepackLimit(repack *time.Time) *time.Time {
	if repack == nil {
		return nil
	}
	y, m, d := repack.Date()
	if m == time.February && d == 29 {
		d = 28
	}
	limit := time.Date(y+1, m, d, 0, 0, 0, 0, time.UTC)
	return &limit
}
