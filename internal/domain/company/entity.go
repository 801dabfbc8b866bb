package company

import "time"

// Company carries denormalized roster counters. They are a cached
// projection recomputed by the service layer after every driver
// mutation, not an independently authoritative aggregate.
type Company struct {
	ID                string
	Name              string
	PresentCount      int
	AbsentCount       int
	TotalDrivers      int
	PresentPercentage float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
