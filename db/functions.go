package db

import (
	"database/sql"
	"fmt"
	"time"
)

// InsertTrim records a completed trim and returns its row ID.
// A zero CreatedAt is replaced with the current time.
func InsertTrim(db *sql.DB, t *Trim) (int64, error) {
	created := t.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	result, err := db.Exec(InsertTrimSQL,
		t.SourcePath, t.DestPath, t.StartText, t.EndText,
		t.StartSeconds, t.Length, t.Encoder, created.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert trim: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get trim id: %w", err)
	}
	return id, nil
}

// ListTrims returns up to limit trims, most recent first. A limit <= 0 returns all rows.
func ListTrims(db *sql.DB, limit int) ([]Trim, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(SelectTrimsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select trims: %w", err)
	}
	defer rows.Close()

	var trims []Trim
	for rows.Next() {
		var t Trim
		var created int64
		if err := rows.Scan(&t.ID, &t.SourcePath, &t.DestPath, &t.StartText, &t.EndText,
			&t.StartSeconds, &t.Length, &t.Encoder, &created); err != nil {
			return nil, fmt.Errorf("scan trim: %w", err)
		}
		t.CreatedAt = time.Unix(created, 0)
		trims = append(trims, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trims: %w", err)
	}
	return trims, nil
}

// ClearTrims deletes every recorded trim and returns how many were removed.
func ClearTrims(db *sql.DB) (int64, error) {
	result, err := db.Exec(DeleteTrimsSQL)
	if err != nil {
		return 0, fmt.Errorf("delete trims: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted trims: %w", err)
	}
	return n, nil
}
