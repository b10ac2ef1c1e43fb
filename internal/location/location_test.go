package location_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fondrenlibrary/name-authority/internal/location"
	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/platform/geocode"
)

// fakeRepo mirrors the store's Save contract, demotion included, so the
// service-level invariant can be observed end to end.
type fakeRepo struct {
	locations map[int64]*location.Location
	next      int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{locations: map[int64]*location.Location{}}
}

func (r *fakeRepo) ListForName(_ context.Context, nameID int64) ([]*location.Location, error) {
	var out []*location.Location
	for _, l := range r.locations {
		if l.NameID == nameID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeRepo) CurrentLocation(_ context.Context, nameID int64) (*location.Location, error) {
	var current *location.Location
	for _, l := range r.locations {
		if l.NameID == nameID && l.IsCurrent() && (current == nil || l.ID < current.ID) {
			current = l
		}
	}
	if current == nil {
		return nil, nil
	}
	clone := *current
	return &clone, nil
}

func (r *fakeRepo) Get(_ context.Context, id int64) (*location.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, apperr.NotFound("location")
	}
	clone := *l
	return &clone, nil
}

func (r *fakeRepo) CountForName(_ context.Context, nameID int64) (int, error) {
	count := 0
	for _, l := range r.locations {
		if l.NameID == nameID {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) Save(_ context.Context, l *location.Location) error {
	if l.Status == location.StatusCurrent {
		for _, sibling := range r.locations {
			if sibling.NameID == l.NameID && sibling.ID != l.ID && sibling.Status == location.StatusCurrent {
				sibling.Status = location.StatusFormer
			}
		}
	}
	if l.ID == 0 {
		r.next++
		l.ID = r.next
	}
	clone := *l
	r.locations[l.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(r.locations, id)
	return nil
}

type fakeResolver struct{}

func (fakeResolver) ResolveID(_ context.Context, nameID string) (int64, error) {
	switch nameID {
	case "nm0000001":
		return 1, nil
	case "nm0000002":
		return 2, nil
	}
	return 0, apperr.NotFound("name")
}

func newFixture() (*fakeRepo, *location.Service) {
	repo := newFakeRepo()
	return repo, location.NewService(repo, fakeResolver{}, slog.Default())
}

func coord(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func currentCount(t *testing.T, repo *fakeRepo) int {
	t.Helper()
	locations, err := repo.ListForName(context.Background(), 1)
	require.NoError(t, err)

	count := 0
	for _, l := range locations {
		if l.IsCurrent() {
			count++
		}
	}
	return count
}

/*
TestService_CurrentExclusivity saves three locations as Current in
sequence and checks that exactly one Current row survives, with the
earlier ones demoted rather than deleted.
*/
func TestService_CurrentExclusivity(t *testing.T) {
	ctx := context.Background()
	repo, service := newFixture()

	for _, pair := range [][2]string{
		{"29.7174", "-95.4018"},
		{"29.7199", "-95.3622"},
		{"29.7604", "-95.3698"},
	} {
		l := &location.Location{
			Latitude:  coord(pair[0]),
			Longitude: coord(pair[1]),
			Status:    location.StatusCurrent,
		}
		require.NoError(t, service.CreateLocation(ctx, "nm0000001", l))
	}

	locations, err := service.ListLocations(ctx, "nm0000001")
	require.NoError(t, err)
	assert.Len(t, locations, 3)
	assert.Equal(t, 1, currentCount(t, repo))
}

/*
TestService_PromoteFormer flips a Former location to Current and checks
the previously Current sibling is demoted.
*/
func TestService_PromoteFormer(t *testing.T) {
	ctx := context.Background()
	repo, service := newFixture()

	first := &location.Location{
		Latitude: coord("29.7174"), Longitude: coord("-95.4018"),
		Status: location.StatusCurrent,
	}
	require.NoError(t, service.CreateLocation(ctx, "nm0000001", first))

	second := &location.Location{
		Latitude: coord("29.7604"), Longitude: coord("-95.3698"),
		Status: location.StatusFormer,
	}
	require.NoError(t, service.CreateLocation(ctx, "nm0000001", second))
	assert.Equal(t, 1, currentCount(t, repo))

	second.Status = location.StatusCurrent
	require.NoError(t, service.UpdateLocation(ctx, "nm0000001", second.ID, second))

	assert.Equal(t, 1, currentCount(t, repo))
	demoted, err := service.ListLocations(ctx, "nm0000001")
	require.NoError(t, err)
	for _, l := range demoted {
		if l.ID == first.ID {
			assert.Equal(t, location.StatusFormer, l.Status)
		}
	}
}

func TestService_CoordinateValidation(t *testing.T) {
	_, service := newFixture()

	tests := []struct {
		name     string
		lat, lng string
	}{
		{"latitude_too_high", "90.5", "0"},
		{"latitude_too_low", "-91", "0"},
		{"longitude_too_high", "0", "180.1"},
		{"longitude_too_low", "0", "-181"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateLocation(context.Background(), "nm0000001", &location.Location{
				Latitude: coord(tt.lat), Longitude: coord(tt.lng),
			})
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_CreateFromGeocode checks the geocode hook entry point makes
a Current location with the match coordinates.
*/
func TestService_CreateFromGeocode(t *testing.T) {
	ctx := context.Background()
	repo, service := newFixture()

	match := &geocode.Match{
		Latitude:  coord("29.7174029"),
		Longitude: coord("-95.4018287"),
	}
	require.NoError(t, service.CreateFromGeocode(ctx, 1, match))

	locations, err := repo.ListForName(ctx, 1)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.True(t, locations[0].IsCurrent())
	assert.True(t, locations[0].Latitude.Equal(match.Latitude))
}

/*
TestService_CurrentLocation checks the current-location query: nothing
before any Current row exists, the Current row once one does, and the
successor after a demotion.
*/
func TestService_CurrentLocation(t *testing.T) {
	ctx := context.Background()
	_, service := newFixture()

	current, err := service.CurrentLocation(ctx, "nm0000001")
	require.NoError(t, err)
	assert.Nil(t, current)

	former := &location.Location{
		Latitude: coord("29.7174"), Longitude: coord("-95.4018"),
		Status: location.StatusFormer,
	}
	require.NoError(t, service.CreateLocation(ctx, "nm0000001", former))

	// A record with only Former locations still has no current one.
	current, err = service.CurrentLocation(ctx, "nm0000001")
	require.NoError(t, err)
	assert.Nil(t, current)

	first := &location.Location{
		Latitude: coord("29.7199"), Longitude: coord("-95.3622"),
		Status: location.StatusCurrent,
	}
	require.NoError(t, service.CreateLocation(ctx, "nm0000001", first))

	current, err = service.CurrentLocation(ctx, "nm0000001")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, first.ID, current.ID)

	second := &location.Location{
		Latitude: coord("29.7604"), Longitude: coord("-95.3698"),
		Status: location.StatusCurrent,
	}
	require.NoError(t, service.CreateLocation(ctx, "nm0000001", second))

	current, err = service.CurrentLocation(ctx, "nm0000001")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)
}

/*
TestService_WrongParentRejected addresses a location through a record
that does not own it and checks both update and delete refuse with a
not-found, leaving the row untouched.
*/
func TestService_WrongParentRejected(t *testing.T) {
	ctx := context.Background()
	repo, service := newFixture()

	owned := &location.Location{
		Latitude: coord("29.7174"), Longitude: coord("-95.4018"),
		Status: location.StatusCurrent,
	}
	require.NoError(t, service.CreateLocation(ctx, "nm0000001", owned))

	intruder := *owned
	intruder.Latitude = coord("0")
	err := service.UpdateLocation(ctx, "nm0000002", owned.ID, &intruder)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	err = service.DeleteLocation(ctx, "nm0000002", owned.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	kept, err := repo.Get(ctx, owned.ID)
	require.NoError(t, err)
	assert.True(t, kept.Latitude.Equal(owned.Latitude))

	// The owning record can still delete it.
	require.NoError(t, service.DeleteLocation(ctx, "nm0000001", owned.ID))
}
