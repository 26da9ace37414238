package database

import (
	"database/sql"
	"fmt"
)

// queryRowsFunc turns a result set into a typed value.
type queryRowsFunc[T any] func(*sql.Rows) (T, error)

// queryRows runs a parameterized query, hands the rows to process and takes
// care of closing them and surfacing iteration errors.
func queryRows[T any](db *sql.DB, query string, args []interface{}, process queryRowsFunc[T]) (T, error) {
	var zero T

	rows, err := db.Query(query, args...)
	if err != nil {
		return zero, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	result, err := process(rows)
	if err != nil {
		return zero, err
	}
	if err := rows.Err(); err != nil {
		return zero, fmt.Errorf("rows iteration error: %w", err)
	}
	return result, nil
}

// querySingleValue scans the single value a query returns into dest.
func querySingleValue[T any](db *sql.DB, query string, args []interface{}, dest *T) error {
	if err := db.QueryRow(query, args...).Scan(dest); err != nil {
		return fmt.Errorf("query single value failed: %w", err)
	}
	return nil
}
