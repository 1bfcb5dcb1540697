package db

import "time"

// Trim represents a row in the trims table.
type Trim struct {
	ID           int64
	SourcePath   string
	DestPath     string
	StartText    string
	EndText      string
	StartSeconds float64
	Length       float64
	Encoder      string
	CreatedAt    time.Time
}
