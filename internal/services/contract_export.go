package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
)

const (
	exportSummarySheet = "Summary"
	exportDetailSheet  = "Detail"
)

var (
	exportSummaryHeaders = []string{"Name", "UUID", "Flight days", "Flights", "Amount (JPY)"}
	exportDetailHeaders  = []string{
		"Flight date", "Name", "UUID", "Flights", "Amount (JPY)", "Minimum guarantee",
		"Takeoff", "Glider", "Size", "Pilot harness", "Passenger harness", "Notes",
	}
)

// ExportMonth builds the month's billing statement as an .xlsx workbook: one summary
// row per contractor with a total row, and one detail row per flight record.
func (s *ContractService) ExportMonth(ctx context.Context, year int, month time.Month) ([]byte, error) {
	summary, err := s.FlightDays(ctx, year, month)
	if err != nil {
		return nil, err
	}
	recs, err := s.ListMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSummarySheet); err != nil {
		return nil, exportError(err)
	}
	if _, err := f.NewSheet(exportDetailSheet); err != nil {
		return nil, exportError(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, exportError(err)
	}

	if err := writeRow(f, exportSummarySheet, 1, toAny(exportSummaryHeaders), headerStyle); err != nil {
		return nil, err
	}
	totalDays, totalFlights, totalAmount := 0, 0, decimal.Zero
	row := 2
	for _, r := range summary.Data {
		values := []any{r.Name, r.UUID, r.FlightDays, r.TotalFlights, r.TotalAmount.InexactFloat64()}
		if err := writeRow(f, exportSummarySheet, row, values, 0); err != nil {
			return nil, err
		}
		totalDays += r.FlightDays
		totalFlights += r.TotalFlights
		totalAmount = totalAmount.Add(r.TotalAmount)
		row++
	}
	totals := []any{"Total", "", totalDays, totalFlights, totalAmount.InexactFloat64()}
	if err := writeRow(f, exportSummarySheet, row, totals, headerStyle); err != nil {
		return nil, err
	}

	if err := writeRow(f, exportDetailSheet, 1, toAny(exportDetailHeaders), headerStyle); err != nil {
		return nil, err
	}
	for i, r := range recs {
		guarantee := ""
		if r.MiniGuarantee {
			guarantee = "yes"
		}
		values := []any{
			calendar.FormatDate(r.FlightDate), r.Name, r.UUID, r.DailyFlight,
			r.TotalAmount.InexactFloat64(), guarantee, r.TakeoffLocation, r.UsedGlider,
			r.Size, r.PilotHarness, r.PassengerHarness,
			BuildNotes(r.NearMiss, r.Improvement, r.DamagedSection),
		}
		if err := writeRow(f, exportDetailSheet, i+2, values, 0); err != nil {
			return nil, err
		}
	}

	for _, sheet := range []string{exportSummarySheet, exportDetailSheet} {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return nil, exportError(err)
		}
	}
	if err := f.SetColWidth(exportSummarySheet, "A", "B", 24); err != nil {
		return nil, exportError(err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, exportError(err)
	}
	return buf.Bytes(), nil
}

// ExportFileName is the download name for a month's statement.
func ExportFileName(year int, month time.Month) string {
	return fmt.Sprintf("contract_%04d-%02d.xlsx", year, int(month))
}

func writeRow(f *excelize.File, sheet string, row int, values []any, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return exportError(err)
	}
	if err := f.SetSheetRow(sheet, start, &values); err != nil {
		return exportError(err)
	}
	if style != 0 {
		end, err := excelize.CoordinatesToCellName(len(values), row)
		if err != nil {
			return exportError(err)
		}
		if err := f.SetCellStyle(sheet, start, end, style); err != nil {
			return exportError(err)
		}
	}
	return nil
}

func toAny(headers []string) []any {
	out := make([]any, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}

func exportError(err error) error {
	return common.NewStorageError("failed to build statement", err)
}
