// Package entity defines the domain models for the tracks feature.
package entity

// DefaultTrackName is used when a track is stored without an explicit name.
const DefaultTrackName = "Untitled Track"

// Coords holds one GPS fix. Every field is optional; absent values are zero.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Accuracy  float64 `json:"accuracy"`
	Heading   float64 `json:"heading"`
	Speed     float64 `json:"speed"`
}

// Point is one geo-stamped sample on a track. Points have no identity of
// their own; they only exist embedded in a track's location list.
type Point struct {
	Timestamp float64 `json:"timestamp"` // epoch-style, as reported by the client
	Coords    Coords  `json:"coords"`
}

// Track is a named path recorded by one user. Locations are ordered; the
// sequence represents the path as it was travelled.
type Track struct {
	ID        uint
	UserID    uint
	Name      string
	Locations []Point
}
