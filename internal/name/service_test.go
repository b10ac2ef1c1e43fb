package name_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fondrenlibrary/name-authority/internal/name"
	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/platform/geocode"
)

// fakeRepo is an in-memory Repository keyed by public token.
type fakeRepo struct {
	records    map[string]*name.Name
	nextID     int64
	typeCounts *name.TypeCounts
	created    []name.MonthCount
	modified   []name.MonthCount
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[string]*name.Name{}, nextID: 1}
}

func (r *fakeRepo) GetByNameID(_ context.Context, nameID string) (*name.Name, error) {
	n, ok := r.records[nameID]
	if !ok {
		return nil, apperr.NotFound("name")
	}
	clone := *n
	return &clone, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*name.Name, error) {
	for _, n := range r.records {
		if n.ID == id {
			clone := *n
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("name")
}

func (r *fakeRepo) GetDetail(_ context.Context, nameID string, _ bool) (*name.Detail, error) {
	n, ok := r.records[nameID]
	if !ok {
		return nil, apperr.NotFound("name")
	}
	return &name.Detail{Name: *n}, nil
}

func (r *fakeRepo) Create(_ context.Context, n *name.Name) error {
	n.ID = r.nextID
	r.nextID++
	clone := *n
	r.records[n.NameID] = &clone
	return nil
}

func (r *fakeRepo) Update(_ context.Context, n *name.Name) error {
	clone := *n
	r.records[n.NameID] = &clone
	return nil
}

func (r *fakeRepo) Search(_ context.Context, _ name.Filter, _, _ int) ([]*name.Name, int, error) {
	return nil, 0, nil
}

func (r *fakeRepo) Export(_ context.Context, _, _ int) ([]*name.Name, int, error) {
	return nil, 0, nil
}

func (r *fakeRepo) ResolveLabel(_ context.Context, normalized string) (*name.Name, error) {
	for _, n := range r.records {
		if n.NormalizedName == normalized && n.IsVisible() {
			clone := *n
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("name")
}

func (r *fakeRepo) ActiveTypeCounts(_ context.Context) (*name.TypeCounts, error) {
	if r.typeCounts == nil {
		return &name.TypeCounts{}, nil
	}
	return r.typeCounts, nil
}

func (r *fakeRepo) CountsByMonth(_ context.Context, column name.StatsColumn) ([]name.MonthCount, error) {
	if column == name.StatsModified {
		return r.modified, nil
	}
	return r.created, nil
}

func (r *fakeRepo) MapPoints(_ context.Context) ([]name.MapPoint, error) {
	return nil, nil
}

// fakeAllocator hands out strictly increasing serials.
type fakeAllocator struct {
	next int64
}

func (a *fakeAllocator) Allocate(_ context.Context) (int64, error) {
	a.next++
	return a.next, nil
}

// fakeLocations records geocode-created locations per internal id.
type fakeLocations struct {
	counts  map[int64]int
	created []int64
}

func newFakeLocations() *fakeLocations {
	return &fakeLocations{counts: map[int64]int{}}
}

func (l *fakeLocations) CountForName(_ context.Context, nameID int64) (int, error) {
	return l.counts[nameID], nil
}

func (l *fakeLocations) CreateFromGeocode(_ context.Context, nameID int64, _ *geocode.Match) error {
	l.counts[nameID]++
	l.created = append(l.created, nameID)
	return nil
}

// fakeGeocoder returns a canned match (or nothing) and counts lookups.
type fakeGeocoder struct {
	match   *geocode.Match
	lookups int
}

func (g *fakeGeocoder) Lookup(_ context.Context, _ string) (*geocode.Match, error) {
	g.lookups++
	return g.match, nil
}

type serviceFixture struct {
	repo      *fakeRepo
	allocator *fakeAllocator
	locations *fakeLocations
	geocoder  *fakeGeocoder
	service   *name.Service
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		repo:      newFakeRepo(),
		allocator: &fakeAllocator{},
		locations: newFakeLocations(),
		geocoder:  &fakeGeocoder{},
	}
	f.service = name.NewService(f.repo, f.allocator, f.locations, f.geocoder, slog.Default())
	return f
}

/*
TestService_CreateName checks first-save behavior: the public token is
derived from a fresh ticket and the normalized form is computed from
the display name.
*/
func TestService_CreateName(t *testing.T) {
	f := newServiceFixture()

	created, err := f.service.CreateName(context.Background(), &name.Input{
		Name: "Twain, Mark",
		Type: name.TypePersonal,
	})
	require.NoError(t, err)

	assert.Equal(t, "nm0000001", created.NameID)
	assert.Equal(t, "twain, mark", created.NormalizedName)
	assert.Equal(t, name.StatusActive, created.Status)

	// Tickets advance: a second record never reuses a token.
	second, err := f.service.CreateName(context.Background(), &name.Input{
		Name: "Austen, Jane",
		Type: name.TypePersonal,
	})
	require.NoError(t, err)
	assert.Equal(t, "nm0000002", second.NameID)
}

func TestService_CreateName_Validation(t *testing.T) {
	f := newServiceFixture()

	tests := []struct {
		name  string
		input name.Input
	}{
		{"empty_name", name.Input{Name: "", Type: name.TypePersonal}},
		{"bad_type", name.Input{Name: "X", Type: name.Type(9)}},
		{"bad_status", name.Input{Name: "X", Type: name.TypePersonal, Status: name.Status(9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateName(context.Background(), &tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestService_UpdateName_NormalizedRecomputed verifies that every save
refreshes the normalized form while the public token stays fixed.
*/
func TestService_UpdateName_NormalizedRecomputed(t *testing.T) {
	f := newServiceFixture()

	created, err := f.service.CreateName(context.Background(), &name.Input{
		Name: "Clemens, Samuel", Type: name.TypePersonal,
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateName(context.Background(), created.NameID, &name.Input{
		Name: "Twain, Mark", Type: name.TypePersonal,
	})
	require.NoError(t, err)

	assert.Equal(t, created.NameID, updated.NameID)
	assert.Equal(t, "twain, mark", updated.NormalizedName)
}

/*
TestService_MergeValidation covers the accept/reject matrix for the
merge pointer: unknown targets and already-merged targets are rejected,
as is pointing a record at itself.
*/
func TestService_MergeValidation(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	a, err := f.service.CreateName(ctx, &name.Input{Name: "Record A", Type: name.TypeOrganization})
	require.NoError(t, err)
	b, err := f.service.CreateName(ctx, &name.Input{Name: "Record B", Type: name.TypeOrganization})
	require.NoError(t, err)
	c, err := f.service.CreateName(ctx, &name.Input{Name: "Record C", Type: name.TypeOrganization})
	require.NoError(t, err)

	t.Run("valid_merge", func(t *testing.T) {
		updated, err := f.service.UpdateName(ctx, a.NameID, &name.Input{
			Name: "Record A", Type: name.TypeOrganization, MergedWith: &b.NameID,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.MergedWith)
		assert.Equal(t, b.NameID, *updated.MergedWith)
		assert.False(t, updated.IsVisible())
	})

	t.Run("self_merge_rejected", func(t *testing.T) {
		_, err := f.service.UpdateName(ctx, b.NameID, &name.Input{
			Name: "Record B", Type: name.TypeOrganization, MergedWith: &b.NameID,
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("chain_rejected", func(t *testing.T) {
		// A is merged into B; C may not merge into A.
		_, err := f.service.UpdateName(ctx, c.NameID, &name.Input{
			Name: "Record C", Type: name.TypeOrganization, MergedWith: &a.NameID,
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("unknown_target_rejected", func(t *testing.T) {
		missing := "nm9999999"
		_, err := f.service.UpdateName(ctx, c.NameID, &name.Input{
			Name: "Record C", Type: name.TypeOrganization, MergedWith: &missing,
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("clearing_merge_restores_visibility", func(t *testing.T) {
		updated, err := f.service.UpdateName(ctx, a.NameID, &name.Input{
			Name: "Record A", Type: name.TypeOrganization,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.MergedWith)
		assert.True(t, updated.IsVisible())
	})
}

/*
TestService_GeocodeHook checks the Building post-save side effect: a
location is created only for Building records with no existing
locations and a usable geocoder match, and a useless match never fails
the save.
*/
func TestService_GeocodeHook(t *testing.T) {
	ctx := context.Background()

	match := &geocode.Match{
		Latitude:  decimal.RequireFromString("29.7174"),
		Longitude: decimal.RequireFromString("-95.4018"),
	}

	t.Run("building_without_locations_gets_one", func(t *testing.T) {
		f := newServiceFixture()
		f.geocoder.match = match

		created, err := f.service.CreateName(ctx, &name.Input{
			Name: "Fondren Library", Type: name.TypeBuilding,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, f.geocoder.lookups)
		assert.Equal(t, []int64{created.ID}, f.locations.created)
	})

	t.Run("non_building_never_looked_up", func(t *testing.T) {
		f := newServiceFixture()
		f.geocoder.match = match

		_, err := f.service.CreateName(ctx, &name.Input{
			Name: "Twain, Mark", Type: name.TypePersonal,
		})
		require.NoError(t, err)
		assert.Zero(t, f.geocoder.lookups)
		assert.Empty(t, f.locations.created)
	})

	t.Run("existing_location_skips_lookup", func(t *testing.T) {
		f := newServiceFixture()
		f.geocoder.match = match

		created, err := f.service.CreateName(ctx, &name.Input{
			Name: "Lovett Hall", Type: name.TypeBuilding,
		})
		require.NoError(t, err)
		require.Len(t, f.locations.created, 1)

		// A later save sees the existing location and stays quiet.
		_, err = f.service.UpdateName(ctx, created.NameID, &name.Input{
			Name: "Lovett Hall", Type: name.TypeBuilding,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, f.geocoder.lookups)
		assert.Len(t, f.locations.created, 1)
	})

	t.Run("no_match_still_saves", func(t *testing.T) {
		f := newServiceFixture()
		f.geocoder.match = nil

		created, err := f.service.CreateName(ctx, &name.Input{
			Name: "Unmappable Hall", Type: name.TypeBuilding,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.NameID)
		assert.Equal(t, 1, f.geocoder.lookups)
		assert.Empty(t, f.locations.created)
	})
}

/*
TestService_Stats checks the statistics payload reflects the stored
distribution: each type bucket comes through intact and the total is
the sum of the buckets.
*/
func TestService_Stats(t *testing.T) {
	f := newServiceFixture()

	counts := &name.TypeCounts{}
	counts.Add(name.TypePersonal, 120)
	counts.Add(name.TypeOrganization, 45)
	counts.Add(name.TypeEvent, 9)
	counts.Add(name.TypeSoftware, 3)
	counts.Add(name.TypeBuilding, 17)
	f.repo.typeCounts = counts

	january := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	f.repo.created = []name.MonthCount{{Month: january, Count: 4}}
	f.repo.modified = []name.MonthCount{{Month: january, Count: 11}}

	stats, err := f.service.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120, stats.TypeCounts.Personal)
	assert.Equal(t, 45, stats.TypeCounts.Organization)
	assert.Equal(t, 9, stats.TypeCounts.Event)
	assert.Equal(t, 3, stats.TypeCounts.Software)
	assert.Equal(t, 17, stats.TypeCounts.Building)
	assert.Equal(t, 120+45+9+3+17, stats.TypeCounts.Total)

	require.Len(t, stats.Created, 1)
	assert.Equal(t, 4, stats.Created[0].Count)
	require.Len(t, stats.Modified, 1)
	assert.Equal(t, 11, stats.Modified[0].Count)
}
