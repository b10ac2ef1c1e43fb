package identifier_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fondrenlibrary/name-authority/internal/identifier"
	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
)

type fakeRepo struct {
	identifiers map[int64]*identifier.Identifier
	types       map[int64]*identifier.IdentifierType
	nextID      int64
	nextTypeID  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		identifiers: map[int64]*identifier.Identifier{},
		types:       map[int64]*identifier.IdentifierType{},
	}
}

func (r *fakeRepo) ListForName(_ context.Context, nameID int64, publicOnly bool) ([]*identifier.Identifier, error) {
	var out []*identifier.Identifier
	for _, i := range r.identifiers {
		if i.NameID != nameID {
			continue
		}
		if publicOnly && !i.Visible {
			continue
		}
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeRepo) Get(_ context.Context, id int64) (*identifier.Identifier, error) {
	i, ok := r.identifiers[id]
	if !ok {
		return nil, apperr.NotFound("identifier")
	}
	clone := *i
	return &clone, nil
}

func (r *fakeRepo) Create(_ context.Context, i *identifier.Identifier) error {
	r.nextID++
	i.ID = r.nextID
	clone := *i
	r.identifiers[i.ID] = &clone
	return nil
}

func (r *fakeRepo) Update(_ context.Context, i *identifier.Identifier) error {
	clone := *i
	r.identifiers[i.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(r.identifiers, id)
	return nil
}

func (r *fakeRepo) ListTypes(_ context.Context) ([]*identifier.IdentifierType, error) {
	var out []*identifier.IdentifierType
	for _, t := range r.types {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeRepo) GetType(_ context.Context, id int64) (*identifier.IdentifierType, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, apperr.NotFound("identifier type")
	}
	clone := *t
	return &clone, nil
}

func (r *fakeRepo) CreateType(_ context.Context, t *identifier.IdentifierType) error {
	r.nextTypeID++
	t.ID = r.nextTypeID
	clone := *t
	r.types[t.ID] = &clone
	return nil
}

func (r *fakeRepo) UpdateType(_ context.Context, t *identifier.IdentifierType) error {
	clone := *t
	r.types[t.ID] = &clone
	return nil
}

func (r *fakeRepo) DeleteType(_ context.Context, id int64) error {
	delete(r.types, id)
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

func newService(repo *fakeRepo) *identifier.Service {
	return identifier.NewService(repo, fakeResolver{}, slog.Default())
}

/*
TestService_ListIdentifiers checks the visibility split: hidden rows
only appear for editors.
*/
func TestService_ListIdentifiers(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	service := newService(repo)

	require.NoError(t, service.CreateIdentifier(ctx, "nm0000001", &identifier.Identifier{
		TypeID: 1, Value: "http://viaf.org/viaf/50566653", Visible: true,
	}))
	require.NoError(t, service.CreateIdentifier(ctx, "nm0000001", &identifier.Identifier{
		TypeID: 1, Value: "internal-legacy-4471", Visible: false,
	}))

	public, err := service.ListIdentifiers(ctx, "nm0000001", false)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := service.ListIdentifiers(ctx, "nm0000001", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_CreateIdentifier_Validation(t *testing.T) {
	service := newService(newFakeRepo())

	err := service.CreateIdentifier(context.Background(), "nm0000001", &identifier.Identifier{
		TypeID: 0, Value: "",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestService_TypeCatalog(t *testing.T) {
	ctx := context.Background()
	service := newService(newFakeRepo())

	it := &identifier.IdentifierType{Label: "VIAF", Homepage: "https://viaf.org"}
	require.NoError(t, service.CreateType(ctx, it))
	assert.NotZero(t, it.ID)

	it.Label = "VIAF Authority"
	require.NoError(t, service.UpdateType(ctx, it.ID, it))

	types, err := service.ListTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "VIAF Authority", types[0].Label)
}

func TestService_CreateType_BadHomepage(t *testing.T) {
	service := newService(newFakeRepo())

	err := service.CreateType(context.Background(), &identifier.IdentifierType{
		Label: "VIAF", Homepage: "not a url",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_WrongParentRejected addresses an identifier through a
record that does not own it; update and delete both answer not-found.
*/
func TestService_WrongParentRejected(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	service := newService(repo)

	owned := &identifier.Identifier{TypeID: 1, Value: "http://viaf.org/viaf/1", Visible: true}
	require.NoError(t, service.CreateIdentifier(ctx, "nm0000001", owned))

	err := service.UpdateIdentifier(ctx, "nm0000002", owned.ID, &identifier.Identifier{
		TypeID: 1, Value: "tampered",
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	err = service.DeleteIdentifier(ctx, "nm0000002", owned.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	kept, err := repo.Get(ctx, owned.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://viaf.org/viaf/1", kept.Value)
}
