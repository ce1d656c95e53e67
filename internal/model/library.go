package model

import "time"

// StoredActivity is one entry in the local activity library: the raw
// TCX text plus the summary columns computed at import time.
type StoredActivity struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Sport            string    `json:"sport"`
	StartTime        string    `json:"start_time,omitempty"`
	TotalTimeSeconds float64   `json:"total_time_seconds"`
	DistanceMeters   float64   `json:"distance_meters"`
	Calories         uint      `json:"calories"`
	Trackpoints      int       `json:"trackpoints"`
	XML              string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}
