package variant_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/variant"
)

type fakeRepo struct {
	variants map[int64]*variant.Variant
	next     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{variants: map[int64]*variant.Variant{}}
}

func (r *fakeRepo) ListForName(_ context.Context, nameID int64) ([]*variant.Variant, error) {
	var out []*variant.Variant
	for _, v := range r.variants {
		if v.NameID == nameID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeRepo) Get(_ context.Context, id int64) (*variant.Variant, error) {
	v, ok := r.variants[id]
	if !ok {
		return nil, apperr.NotFound("variant")
	}
	clone := *v
	return &clone, nil
}

func (r *fakeRepo) Create(_ context.Context, v *variant.Variant) error {
	r.next++
	v.ID = r.next
	clone := *v
	r.variants[v.ID] = &clone
	return nil
}

func (r *fakeRepo) Update(_ context.Context, v *variant.Variant) error {
	clone := *v
	r.variants[v.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(r.variants, id)
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

func newService(repo *fakeRepo) *variant.Service {
	return variant.NewService(repo, fakeResolver{}, slog.Default())
}

/*
TestService_NormalizedVariant checks that the stored normalized form is
derived from the display form on create and re-derived on update.
*/
func TestService_NormalizedVariant(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	service := newService(repo)

	v := &variant.Variant{Variant: "M.I.T.", Type: variant.TypeAcronym}
	require.NoError(t, service.CreateVariant(ctx, "nm0000001", v))
	assert.Equal(t, "m i t", v.NormalizedVariant)

	v.Variant = "Massachusetts Institute of Technology"
	v.Type = variant.TypeExpansion
	require.NoError(t, service.UpdateVariant(ctx, "nm0000001", v.ID, v))
	assert.Equal(t, "massachusetts institute of technology", v.NormalizedVariant)
}

func TestService_CreateVariant_Validation(t *testing.T) {
	service := newService(newFakeRepo())

	err := service.CreateVariant(context.Background(), "nm0000001", &variant.Variant{
		Variant: "", Type: variant.Type(9),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestType_Labels(t *testing.T) {
	assert.Equal(t, "Acronym", variant.TypeAcronym.Label())
	assert.Equal(t, "Expansion", variant.TypeExpansion.Label())
	assert.Equal(t, "Unknown", variant.Type(9).Label())
}

/*
TestService_WrongParentRejected addresses a variant through a record
that does not own it; update and delete both answer not-found.
*/
func TestService_WrongParentRejected(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	service := newService(repo)

	v := &variant.Variant{Variant: "M.I.T.", Type: variant.TypeAcronym}
	require.NoError(t, service.CreateVariant(ctx, "nm0000001", v))

	err := service.UpdateVariant(ctx, "nm0000002", v.ID, v)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	err = service.DeleteVariant(ctx, "nm0000002", v.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	survivors, err := service.ListVariants(ctx, "nm0000001")
	require.NoError(t, err)
	assert.Len(t, survivors, 1)
}
