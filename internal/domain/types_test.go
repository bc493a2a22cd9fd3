package domain

import (
	"testing"
)

func TestLocation_Valid(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		expected bool
	}{
		{"Origin", Location{}, true},
		{"New Delhi", Location{Latitude: 28.61, Longitude: 77.20}, true},
		{"Latitude out of range", Location{Latitude: 91, Longitude: 0}, false},
		{"Longitude out of range", Location{Latitude: 0, Longitude: -180.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.location.Valid(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
