// Package handler provides the HTTP handlers for the tracks feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trackapp/internal/feature/tracks/domain/entity"
	"trackapp/internal/feature/tracks/transport/http/dto"
	jwtmw "trackapp/internal/platform/jwt"
)

// missingFieldsMsg answers a create request lacking a name or locations.
const missingFieldsMsg = "Please provide a name and locations."

// TracksUsecase defines the usecase interface for track operations.
// Following Go convention, the interface is defined on the consumer (handler) side.
type TracksUsecase interface {
	ListByOwner(ctx context.Context, userID uint) ([]entity.Track, error)
	Create(ctx context.Context, userID uint, name string, locations []entity.Point) (*entity.Track, error)
}

// TrackHandler processes HTTP requests for track operations.
type TrackHandler struct {
	uc TracksUsecase
}

// NewTrackHandler creates a new TrackHandler instance with the given usecase.
func NewTrackHandler(uc TracksUsecase) *TrackHandler {
	return &TrackHandler{uc: uc}
}

// List answers GET /tracks with every track owned by the authenticated
// caller, oldest first. Other users' tracks are never included.
func (h *TrackHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	tracks, err := h.uc.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("track listing failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.TrackResponse, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, toResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// Create answers POST /tracks. The owner is taken from the authenticated
// caller, never from the body. Missing name or locations yields a 422.
func (h *TrackHandler) Create(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.CreateTrackReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Locations) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": missingFieldsMsg})
		return
	}

	track, err := h.uc.Create(c.Request.Context(), userID, req.Name, toPoints(req.Locations))
	if err != nil {
		slog.Warn("track creation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(*track))
}

func toPoints(in []dto.PointPayload) []entity.Point {
	out := make([]entity.Point, 0, len(in))
	for _, p := range in {
		out = append(out, entity.Point{
			Timestamp: p.Timestamp,
			Coords:    entity.Coords(p.Coords),
		})
	}
	return out
}

func toResponse(t entity.Track) dto.TrackResponse {
	locations := make([]dto.PointPayload, 0, len(t.Locations))
	for _, p := range t.Locations {
		locations = append(locations, dto.PointPayload{
			Timestamp: p.Timestamp,
			Coords:    dto.CoordsPayload(p.Coords),
		})
	}
	return dto.TrackResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		Locations: locations,
	}
}
