package repositories

import (
	"context"
	"fmt"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/constants"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// ContractAggregate is one contractor's totals for a month.
type ContractAggregate struct {
	UUID         string          `db:"uuid"`
	Name         string          `db:"name"`
	FlightDays   int             `db:"flight_days"`
	TotalFlights int             `db:"total_flights"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
}

// ContractReportRepository runs the monthly reporting queries over sqlx.
type ContractReportRepository struct {
	db *sqlx.DB
}

func NewContractReportRepository(db *sqlx.DB) *ContractReportRepository {
	return &ContractReportRepository{db: db}
}

// MonthlyAggregates returns a row for every contractor, zeros included, for records
// with start <= flight_date < end.
func (r *ContractReportRepository) MonthlyAggregates(ctx context.Context, start, end time.Time) ([]ContractAggregate, error) {
	var rows []ContractAggregate

	query := r.db.Rebind(constants.ContractMonthlyAggregate)
	if err := r.db.SelectContext(ctx, &rows, query, start, end, true); err != nil {
		return nil, fmt.Errorf("failed to aggregate flight records: %w", err)
	}
	return rows, nil
}

// Ping verifies the reporting connection.
func (r *ContractReportRepository) Ping(ctx context.Context) error {
	var one int
	return r.db.GetContext(ctx, &one, constants.PingQuery)
}
