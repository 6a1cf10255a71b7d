// Package usecase implements the business logic for track operations.
package usecase

import (
	"context"

	"trackapp/internal/feature/tracks/domain/entity"
)

// TrackRepository abstracts the persistence layer for tracks.
// Following Go convention, the interface is defined on the consumer (usecase) side.
type TrackRepository interface {
	// ListByOwner returns all tracks owned by the given user, oldest first.
	ListByOwner(ctx context.Context, userID uint) ([]entity.Track, error)

	// Create persists a new track and fills in its generated ID.
	Create(ctx context.Context, track *entity.Track) error
}

// tracksUsecase defines the usecases for track operations.
type tracksUsecase struct {
	tracks TrackRepository
}

// NewTracksUsecase creates a new instance of tracksUsecase.
func NewTracksUsecase(tracks TrackRepository) *tracksUsecase {
	return &tracksUsecase{tracks: tracks}
}

// ListByOwner returns the tracks recorded by the given user.
func (tu *tracksUsecase) ListByOwner(ctx context.Context, userID uint) ([]entity.Track, error) {
	return tu.tracks.ListByOwner(ctx, userID)
}

// Create stores a new track. The owner is always the authenticated caller
// passed in by the handler, never anything taken from the request body, so a
// client cannot record a track against another user. An empty name falls
// back to DefaultTrackName.
func (tu *tracksUsecase) Create(ctx context.Context, userID uint, name string, locations []entity.Point) (*entity.Track, error) {
	if name == "" {
		name = entity.DefaultTrackName
	}
	track := &entity.Track{
		UserID:    userID,
		Name:      name,
		Locations: locations,
	}
	if err := tu.tracks.Create(ctx, track); err != nil {
		return nil, err
	}
	return track, nil
}
