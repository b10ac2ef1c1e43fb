package note_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fondrenlibrary/name-authority/internal/note"
	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
)

/*
TestNote_IsPublic verifies the public/nonpublic split: only the
Nonpublic type is held back from anonymous readers.
*/
func TestNote_IsPublic(t *testing.T) {
	tests := []struct {
		name     string
		noteType note.Type
		public   bool
	}{
		{"biographical", note.TypeBiographical, true},
		{"deletion", note.TypeDeletion, true},
		{"nonpublic", note.TypeNonpublic, false},
		{"source", note.TypeSource, true},
		{"other", note.TypeOther, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &note.Note{Type: tt.noteType}
			assert.Equal(t, tt.public, n.IsPublic())
		})
	}
}

func TestType_Valid(t *testing.T) {
	assert.True(t, note.TypeBiographical.Valid())
	assert.True(t, note.TypeOther.Valid())
	assert.False(t, note.Type(5).Valid())
	assert.False(t, note.Type(-1).Valid())
}

type fakeRepo struct {
	notes map[int64]*note.Note
	next  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{notes: map[int64]*note.Note{}}
}

func (r *fakeRepo) ListForName(_ context.Context, nameID int64, publicOnly bool) ([]*note.Note, error) {
	var out []*note.Note
	for _, n := range r.notes {
		if n.NameID != nameID {
			continue
		}
		if publicOnly && !n.IsPublic() {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *fakeRepo) Get(_ context.Context, id int64) (*note.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, apperr.NotFound("note")
	}
	clone := *n
	return &clone, nil
}

func (r *fakeRepo) Create(_ context.Context, n *note.Note) error {
	r.next++
	n.ID = r.next
	clone := *n
	r.notes[n.ID] = &clone
	return nil
}

func (r *fakeRepo) Update(_ context.Context, n *note.Note) error {
	clone := *n
	r.notes[n.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(r.notes, id)
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

/*
TestService_ListNotes checks that editor context widens the listing to
nonpublic notes while anonymous listings stay public-only.
*/
func TestService_ListNotes(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	service := note.NewService(repo, fakeResolver{}, slog.Default())

	require.NoError(t, service.CreateNote(ctx, "nm0000001", &note.Note{
		Note: "Founded the press in 1912.", Type: note.TypeBiographical,
	}))
	require.NoError(t, service.CreateNote(ctx, "nm0000001", &note.Note{
		Note: "Donor restrictions apply.", Type: note.TypeNonpublic,
	}))

	public, err := service.ListNotes(ctx, "nm0000001", false)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := service.ListNotes(ctx, "nm0000001", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_CreateNote_Validation(t *testing.T) {
	service := note.NewService(newFakeRepo(), fakeResolver{}, slog.Default())

	err := service.CreateNote(context.Background(), "nm0000001", &note.Note{
		Note: "", Type: note.Type(9),
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, ae.Details, 2)
}

func TestService_CreateNote_UnknownName(t *testing.T) {
	service := note.NewService(newFakeRepo(), fakeResolver{}, slog.Default())

	err := service.CreateNote(context.Background(), "nm404", &note.Note{
		Note: "text", Type: note.TypeOther,
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_WrongParentRejected addresses a note through a record that
does not own it; update and delete both answer not-found.
*/
func TestService_WrongParentRejected(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	service := note.NewService(repo, fakeResolver{}, slog.Default())

	owned := &note.Note{Note: "Founded the press in 1912.", Type: note.TypeBiographical}
	require.NoError(t, service.CreateNote(ctx, "nm0000001", owned))

	err := service.UpdateNote(ctx, "nm0000002", owned.ID, &note.Note{
		Note: "rewritten", Type: note.TypeOther,
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	err = service.DeleteNote(ctx, "nm0000002", owned.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	kept, err := repo.Get(ctx, owned.ID)
	require.NoError(t, err)
	assert.Equal(t, "Founded the press in 1912.", kept.Note)
}
