// Package adapters provides the repository implementations for the tracks feature.
package adapters

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"trackapp/internal/feature/tracks/domain/entity"
	"trackapp/internal/feature/tracks/usecase"
)

type trackPostgres struct {
	db *gorm.DB
}

var _ usecase.TrackRepository = (*trackPostgres)(nil)

// NewTrackPostgres creates a new trackPostgres instance with the given
// gorm.DB connection. Constructor for dependency injection.
func NewTrackPostgres(db *gorm.DB) *trackPostgres {
	return &trackPostgres{db: db}
}

// PointList stores a track's location sequence as a single JSON column.
// Points are embedded in the track row rather than normalized into their own
// table, so column order never matters for path order.
type PointList []entity.Point

// Value serializes the point list for storage.
func (p PointList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal locations: %w", err)
	}
	return string(b), nil
}

// Scan deserializes the point list from storage.
func (p *PointList) Scan(src any) error {
	if src == nil {
		*p = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported locations column type %T", src)
	}
	return json.Unmarshal(b, p)
}

// TrackModel is the storage representation of a track. The user reference is
// advisory; no foreign-key constraint ties it to the users table.
type TrackModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Name      string    `gorm:"size:255;not null;default:'Untitled Track'"`
	Locations PointList `gorm:"type:json"`
}

func (TrackModel) TableName() string {
	return "tracks"
}

func toModel(e *entity.Track) TrackModel {
	return TrackModel{
		UserID:    e.UserID,
		Name:      e.Name,
		Locations: PointList(e.Locations),
	}
}

func toEntity(m TrackModel) entity.Track {
	return entity.Track{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Locations: []entity.Point(m.Locations),
	}
}

// ListByOwner returns all tracks whose user reference matches the given ID,
// ordered by ascending ID, i.e. insertion order.
func (r *trackPostgres) ListByOwner(ctx context.Context, userID uint) ([]entity.Track, error) {
	var rows []TrackModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Track, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// Create inserts a track and writes the generated ID back to the entity.
func (r *trackPostgres) Create(ctx context.Context, track *entity.Track) error {
	m := toModel(track)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	track.ID = m.ID
	return nil
}
