package constants

// Monthly contractor aggregates. Every contractor gets a row, with zeros when they have no
// records in [start, end). Placeholders are rebound per driver with sqlx.Rebind.
const (
	ContractMonthlyAggregate = `
	SELECT
		m.uuid                                AS uuid,
		m.full_name                           AS name,
		COUNT(DISTINCT r.flight_date)         AS flight_days,
		COALESCE(SUM(r.daily_flight), 0)      AS total_flights,
		COALESCE(SUM(r.total_amount), 0)      AS total_amount
	FROM members m
	LEFT JOIN rep_contract r
		ON r.uuid = m.uuid
		AND r.flight_date >= ?
		AND r.flight_date < ?
	WHERE m.contract = ?
	GROUP BY m.uuid, m.full_name
	ORDER BY m.full_name, m.uuid
	`

	PingQuery = `SELECT 1`
)
