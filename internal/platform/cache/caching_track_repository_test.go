package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"trackapp/internal/feature/tracks/domain/entity"
)

// mockTrackRepository is a mock TrackRepository implementation for testing.
type mockTrackRepository struct {
	listByOwnerFn func(ctx context.Context, userID uint) ([]entity.Track, error)
	createFn      func(ctx context.Context, track *entity.Track) error
	listCalls     int
}

func (m *mockTrackRepository) ListByOwner(ctx context.Context, userID uint) ([]entity.Track, error) {
	m.listCalls++
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTrackRepository) Create(ctx context.Context, track *entity.Track) error {
	if m.createFn != nil {
		return m.createFn(ctx, track)
	}
	return nil
}

// TestNewCachingTrackRepository_Defaults verifies the TTL and namespace defaults.
func TestNewCachingTrackRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 5 * time.Minute, "tracks"},
		{"negative ttl uses default", -time.Minute, "", 5 * time.Minute, "tracks"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingTrackRepository(nil, tt.ttl, &mockTrackRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingTrackRepository_ListByOwner_NilRedis verifies the decorator
// bypasses caching and calls the inner repository when Redis is absent.
func TestCachingTrackRepository_ListByOwner_NilRedis(t *testing.T) {
	t.Parallel()

	expected := []entity.Track{{ID: 1, UserID: 7, Name: "Morning Run"}}
	inner := &mockTrackRepository{
		listByOwnerFn: func(ctx context.Context, userID uint) ([]entity.Track, error) {
			return expected, nil
		},
	}

	repo := NewCachingTrackRepository(nil, 5*time.Minute, inner, "tracks")

	tracks, err := repo.ListByOwner(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 || tracks[0].Name != "Morning Run" {
		t.Errorf("unexpected result: %+v", tracks)
	}
}

// TestCachingTrackRepository_ListByOwner_CacheHit verifies a hit serves from
// Redis without touching the inner repository.
func TestCachingTrackRepository_ListByOwner_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := []entity.Track{{ID: 1, UserID: 7, Name: "Morning Run"}}
	b, _ := json.Marshal(cached)
	mock.ExpectGet("tracks:7").SetVal(string(b))

	inner := &mockTrackRepository{
		listByOwnerFn: func(ctx context.Context, userID uint) ([]entity.Track, error) {
			t.Error("inner repository should not be called on a cache hit")
			return nil, nil
		},
	}

	repo := NewCachingTrackRepository(rdb, 5*time.Minute, inner, "tracks")

	tracks, err := repo.ListByOwner(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 || tracks[0].Name != "Morning Run" {
		t.Errorf("unexpected result: %+v", tracks)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingTrackRepository_ListByOwner_CacheMiss verifies a miss falls back
// to the database and stores the result.
func TestCachingTrackRepository_ListByOwner_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	fromDB := []entity.Track{{ID: 2, UserID: 7, Name: "Evening Ride"}}
	b, _ := json.Marshal(fromDB)

	mock.ExpectGet("tracks:7").RedisNil()
	mock.ExpectSet("tracks:7", b, 5*time.Minute).SetVal("OK")

	inner := &mockTrackRepository{
		listByOwnerFn: func(ctx context.Context, userID uint) ([]entity.Track, error) {
			return fromDB, nil
		},
	}

	repo := NewCachingTrackRepository(rdb, 5*time.Minute, inner, "tracks")

	tracks, err := repo.ListByOwner(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 || tracks[0].Name != "Evening Ride" {
		t.Errorf("unexpected result: %+v", tracks)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingTrackRepository_ListByOwner_InnerError verifies database errors
// propagate on a miss.
func TestCachingTrackRepository_ListByOwner_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("tracks:7").RedisNil()

	expectedErr := errors.New("database error")
	inner := &mockTrackRepository{
		listByOwnerFn: func(ctx context.Context, userID uint) ([]entity.Track, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingTrackRepository(rdb, 5*time.Minute, inner, "tracks")

	_, err := repo.ListByOwner(context.Background(), 7)
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected %v, got %v", expectedErr, err)
	}
}

// TestCachingTrackRepository_Create_InvalidatesOwnerListing verifies creating
// a track deletes the owner's cached listing.
func TestCachingTrackRepository_Create_InvalidatesOwnerListing(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("tracks:7").SetVal(1)

	repo := NewCachingTrackRepository(rdb, 5*time.Minute, &mockTrackRepository{}, "tracks")

	err := repo.Create(context.Background(), &entity.Track{UserID: 7, Name: "Morning Run"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingTrackRepository_Create_InnerErrorSkipsInvalidation verifies a
// failed insert leaves the cache untouched.
func TestCachingTrackRepository_Create_InnerErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	inner := &mockTrackRepository{
		createFn: func(ctx context.Context, track *entity.Track) error {
			return expectedErr
		},
	}

	repo := NewCachingTrackRepository(rdb, 5*time.Minute, inner, "tracks")

	err := repo.Create(context.Background(), &entity.Track{UserID: 7})
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected redis activity: %v", err)
	}
}
