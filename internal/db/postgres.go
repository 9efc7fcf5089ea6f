package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// InitPostgres opens the sqlx connection used for reporting queries, retrying while
// the database container comes up.
func InitPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	for i := 0; i < 10; i++ {
		conn, err = sqlx.ConnectContext(ctx, "postgres", dsn)
		if err == nil {
			conn.SetMaxOpenConns(10)
			conn.SetConnMaxIdleTime(5 * time.Minute)
			return conn, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return nil, err
}
