// Package dto defines data transfer objects for the tracks feature's HTTP transport layer.
package dto

// CoordsPayload mirrors one GPS fix on the wire. All fields are optional.
type CoordsPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Accuracy  float64 `json:"accuracy"`
	Heading   float64 `json:"heading"`
	Speed     float64 `json:"speed"`
}

// PointPayload is one geo-stamped sample in a request or response body.
type PointPayload struct {
	Timestamp float64       `json:"timestamp"`
	Coords    CoordsPayload `json:"coords"`
}

// CreateTrackReq represents the request body for POST /tracks.
// Presence of both fields is required; locations must be non-empty.
type CreateTrackReq struct {
	Name      string         `json:"name" binding:"required"`
	Locations []PointPayload `json:"locations" binding:"required"`
}

// TrackResponse is the JSON representation of a stored track.
type TrackResponse struct {
	ID        uint           `json:"id"`
	UserID    uint           `json:"userId"`
	Name      string         `json:"name"`
	Locations []PointPayload `json:"locations"`
}
