// Package domain contains the core entities of the xcov19 backend: diagnosis
// queries submitted by patients, the results handed back to them, and the
// service contracts implementations must honour.
package domain

import (
	"time"
)

// QueryStatus represents the processing state of a diagnosis query
type QueryStatus string

const (
	QUEUED QueryStatus = "QUEUED"
)

// Location represents where the patient submitted the query from
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Valid reports whether the coordinates lie within WGS84 bounds
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// DiagnosisQuery represents a patient's request for diagnosis
type DiagnosisQuery struct {
	Symptoms []string  `json:"symptoms"`
	Age      int       `json:"age,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// DiagnosisResult represents the answer to a diagnosis query
type DiagnosisResult struct {
	QueryID   string      `json:"query_id"`
	Status    QueryStatus `json:"status"`
	Response  string      `json:"response"`
	CreatedAt time.Time   `json:"created_at"`
}
