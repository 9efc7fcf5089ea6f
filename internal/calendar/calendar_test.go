package calendar

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestValidWindow(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"mid march", d(2026, 3, 15), d(2026, 3, 1), d(2026, 6, 30)},
		{"october crosses year", d(2026, 10, 17), d(2026, 10, 1), d(2027, 1, 31)},
		{"december", d(2026, 12, 31), d(2026, 12, 1), d(2027, 3, 31)},
		{"november into leap february", d(2027, 11, 30), d(2027, 11, 1), d(2028, 2, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ValidWindow(tt.today)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %s, want %s", FormatDate(start), FormatDate(tt.wantStart))
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %s, want %s", FormatDate(end), FormatDate(tt.wantEnd))
			}
		})
	}
}

func TestRetentionCutoff(t *testing.T) {
	tests := []struct {
		today time.Time
		want  time.Time
	}{
		{d(2026, 3, 1), d(2026, 1, 1)},
		{d(2026, 3, 31), d(2026, 1, 1)},
		{d(2026, 1, 1), d(2025, 11, 1)},
		{d(2026, 2, 1), d(2025, 12, 1)},
		{d(2026, 12, 1), d(2026, 10, 1)},
	}

	for _, tt := range tests {
		if got := RetentionCutoff(tt.today); !got.Equal(tt.want) {
			t.Errorf("RetentionCutoff(%s) = %s, want %s", FormatDate(tt.today), FormatDate(got), FormatDate(tt.want))
		}
	}
}

func TestAddMonthsFromMonthEnd(t *testing.T) {
	// January 31 + 1 month must land in February, not March.
	got := AddMonths(d(2026, 1, 31), 1)
	if !got.Equal(d(2026, 2, 1)) {
		t.Errorf("AddMonths = %s, want 2026-02-01", FormatDate(got))
	}
}

func TestDaysIn(t *testing.T) {
	if n := DaysIn(2028, time.February); n != 29 {
		t.Errorf("DaysIn(2028, Feb) = %d, want 29", n)
	}
	if n := DaysIn(2026, time.February); n != 28 {
		t.Errorf("DaysIn(2026, Feb) = %d, want 28", n)
	}
	if n := DaysIn(2026, time.April); n != 30 {
		t.Errorf("DaysIn(2026, Apr) = %d, want 30", n)
	}
}

func TestTodayUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2026-03-14 20:00 UTC is already 2026-03-15 in Tokyo.
	clock := FixedClock(time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))

	if got := Today(clock, tokyo); !got.Equal(d(2026, 3, 15)) {
		t.Errorf("Today = %s, want 2026-03-15", FormatDate(got))
	}
	if got := Today(clock, time.UTC); !got.Equal(d(2026, 3, 14)) {
		t.Errorf("Today(UTC) = %s, want 2026-03-14", FormatDate(got))
	}
}

func TestParseYearMonthDate(t *testing.T) {
	got, err := ParseYearMonthDate("2025-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(d(2025, 4, 1)) {
		t.Errorf("got %s, want 2025-04-01", FormatDate(got))
	}

	got, err = ParseYearMonthDate("2025-04-18")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(d(2025, 4, 18)) {
		t.Errorf("got %s, want 2025-04-18", FormatDate(got))
	}

	if _, err := ParseDate("2025/04/18"); err == nil {
		t.Error("expected error for slash-separated date")
	}
}

func TestResolveYearMonth(t *testing.T) {
	today := d(2026, 3, 15)

	y, m, err := ResolveYearMonth("", "", today)
	if err != nil || y != 2026 || m != time.March {
		t.Errorf("defaults = %d-%d (%v), want 2026-3", y, m, err)
	}

	y, m, err = ResolveYearMonth("2025", "12", today)
	if err != nil || y != 2025 || m != time.December {
		t.Errorf("explicit = %d-%d (%v), want 2025-12", y, m, err)
	}

	if _, _, err := ResolveYearMonth("2025", "13", today); err == nil {
		t.Error("expected error for month 13")
	}
	if _, _, err := ResolveYearMonth("abc", "", today); err == nil {
		t.Error("expected error for non-numeric year")
	}
}

func TestZoneToday(t *testing.T) {
	jst, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// 2026-02-28 16:30 UTC is already March 1st in Tokyo.
	z := NewZone(FixedClock(time.Date(2026, 2, 28, 16, 30, 0, 0, time.UTC)), jst)

	if got := z.Today(); !got.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Today = %s", got)
	}
	if got := z.Now().Hour(); got != 1 {
		t.Errorf("Now hour = %d, want 1", got)
	}
	if NewZone(nil, nil).Location != time.UTC {
		t.Error("nil location should default to UTC")
	}
}
