package dtos

import "github.com/shopspring/decimal"

// ContractRecordRequest is the daily report form. FlightDate and RepackDate are
// YYYY-MM-DD; a blank FlightDate means today.
type ContractRecordRequest struct {
	UUID             string      `json:"uuid"`
	FlightDate       string      `json:"flight_date"`
	Name             string      `json:"name" validate:"max=100"`
	DailyFlight      FlightCount `json:"daily_flight"`
	TakeoffLocation  string      `json:"takeoff_location" validate:"max=100"`
	UsedGlider       string      `json:"used_glider" validate:"max=100"`
	Size             string      `json:"size" validate:"max=20"`
	PilotHarness     string      `json:"pilot_harness" validate:"max=100"`
	PassengerHarness string      `json:"passenger_harness" validate:"max=100"`
	RepackDate       string      `json:"repack_date"`
	NearMiss         string      `json:"near_miss"`
	Improvement      string      `json:"improvement"`
	DamagedSection   string      `json:"damaged_section"`
}

type ContractRecordResponse struct {
	ID               uint            `json:"id"`
	FlightDate       string          `json:"flight_date"`
	UUID             string          `json:"uuid"`
	Name             string          `json:"name"`
	DailyFlight      int             `json:"daily_flight"`
	TakeoffLocation  string          `json:"takeoff_location"`
	UsedGlider       string          `json:"used_glider"`
	Size             string          `json:"size"`
	PilotHarness     string          `json:"pilot_harness"`
	RepackDate       *string         `json:"repack_date"`
	PassengerHarness string          `json:"passenger_harness"`
	NearMiss         string          `json:"near_miss"`
	Improvement      string          `json:"improvement"`
	DamagedSection   string          `json:"damaged_section"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	MiniGuarantee    bool            `json:"mini_guarantee"`
}

// RegisterResponse tells the form whether the key was new.
type RegisterResponse struct {
	ID      uint   `json:"id"`
	Outcome string `json:"outcome"`
}

type ContractSummaryRow struct {
	UUID         string          `json:"uuid"`
	Name         string          `json:"name"`
	TotalFlights int             `json:"total_flights"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

type ContractFlightDaysRow struct {
	UUID         string          `json:"uuid"`
	Name         string          `json:"name"`
	FlightDays   int             `json:"flight_days"`
	TotalFlights int             `json:"total_flights"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// MonthlyReport wraps per-contractor rows for one month.
type MonthlyReport[T any] struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Data  []T `json:"data"`
}

type ContractDetailRow struct {
	FlightDate    string          `json:"flight_date"`
	DailyFlight   int             `json:"daily_flight"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	MiniGuarantee bool            `json:"mini_guarantee"`
	Notes         string          `json:"notes"`
}

type ContractDetailResponse struct {
	UUID  string              `json:"uuid"`
	Name  string              `json:"name"`
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Data  []ContractDetailRow `json:"data"`
}
