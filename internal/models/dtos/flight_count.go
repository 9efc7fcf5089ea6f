package dtos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxFlightCount bounds the decoded value so the int conversion stays exact.
const maxFlightCount = 1_000_000

// FlightCount accepts a JSON number, a numeric string or a blank value (0), as posted
// by the daily report form. Fractional counts are rounded up.
type FlightCount int

func (fc *FlightCount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*fc = 0
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*fc = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("daily_flight must be a number: %w", err)
		}
		return fc.set(f)
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	return fc.set(f)
}

func (fc *FlightCount) set(f float64) error {
	if math.IsNaN(f) || math.Abs(f) > maxFlightCount {
		return fmt.Errorf("daily_flight out of range: %v", f)
	}
	*fc = FlightCount(math.Ceil(f))
	return nil
}
