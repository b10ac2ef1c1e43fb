package note

import (
	"context"
	"log/slog"

	"github.com/fondrenlibrary/name-authority/internal/platform/dberr"
	"github.com/fondrenlibrary/name-authority/internal/platform/validate"
)

// NameResolver maps a public name token onto the internal row id.
type NameResolver interface {
	ResolveID(ctx context.Context, nameID string) (int64, error)
}

type Service struct {
	repo   Repository
	names  NameResolver
	logger *slog.Logger
}

func NewService(repo Repository, names NameResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		names:  names,
		logger: logger,
	}
}

func validateNote(n *Note) error {
	validator := &validate.Validator{}

	validator.Required(FieldNote, n.Note)
	validator.Custom(FieldNoteType, !n.Type.Valid(), "must be a known note type")

	return validator.Err()
}

// ListNotes returns the notes on a record; without editor privileges
// the nonpublic ones are held back.
func (service *Service) ListNotes(ctx context.Context, nameToken string, includeNonpublic bool) ([]*Note, error) {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return nil, err
	}
	return service.repo.ListForName(ctx, nameID, !includeNonpublic)
}

func (service *Service) CreateNote(ctx context.Context, nameToken string, n *Note) error {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return err
	}
	n.NameID = nameID

	if err := validateNote(n); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, n); err != nil {
		return err
	}

	service.logger.Info("note_created", slog.String("name_id", nameToken), slog.Int64("note_id", n.ID))
	return nil
}

func (service *Service) UpdateNote(ctx context.Context, nameToken string, id int64, n *Note) error {
	existing, err := service.owned(ctx, nameToken, id)
	if err != nil {
		return err
	}

	existing.Note = n.Note
	existing.Type = n.Type

	if err := validateNote(existing); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, existing); err != nil {
		return err
	}
	*n = *existing

	service.logger.Info("note_updated", slog.Int64("note_id", id))
	return nil
}

func (service *Service) DeleteNote(ctx context.Context, nameToken string, id int64) error {
	if _, err := service.owned(ctx, nameToken, id); err != nil {
		return err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("note_deleted", slog.Int64("note_id", id))
	return nil
}

// owned loads a note and checks it belongs to the record addressed in
// the URL. A row reached through the wrong parent does not exist from
// the caller's point of view.
func (service *Service) owned(ctx context.Context, nameToken string, id int64) (*Note, error) {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return nil, err
	}

	existing, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.NameID != nameID {
		return nil, dberr.ErrNotFound
	}
	return existing, nil
}
