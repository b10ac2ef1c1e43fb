package identifier

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

func validateIdentifier(i *Identifier) error {
	validator := &validate.Validator{}

	validator.Required(FieldValue, i.Value).MaxLen(FieldValue, i.Value, 500)
	validator.Custom(FieldTypeID, i.TypeID <= 0, "must reference an identifier type")
	validator.Custom(FieldDisplayOrder, i.DisplayOrder < 0, "must not be negative")

	return validator.Err()
}

func validateType(it *IdentifierType) error {
	validator := &validate.Validator{}

	validator.Required(FieldLabel, it.Label).MaxLen(FieldLabel, it.Label, 255)
	validator.MaxLen(FieldIconPath, it.IconPath, 255)
	if it.Homepage != "" {
		validator.URL(FieldHomepage, it.Homepage)
	}

	return validator.Err()
}

// ListIdentifiers returns the identifiers on a record; hidden rows are
// held back without editor privileges.
func (service *Service) ListIdentifiers(ctx context.Context, nameToken string, includeHidden bool) ([]*Identifier, error) {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return nil, err
	}
	return service.repo.ListForName(ctx, nameID, !includeHidden)
}

func (service *Service) CreateIdentifier(ctx context.Context, nameToken string, i *Identifier) error {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return err
	}
	i.NameID = nameID

	if err := validateIdentifier(i); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, i); err != nil {
		return err
	}

	service.logger.Info("identifier_created",
		slog.String("name_id", nameToken), slog.Int64("identifier_id", i.ID))
	return nil
}

func (service *Service) UpdateIdentifier(ctx context.Context, nameToken string, id int64, i *Identifier) error {
	existing, err := service.owned(ctx, nameToken, id)
	if err != nil {
		return err
	}

	existing.TypeID = i.TypeID
	existing.Value = i.Value
	existing.Visible = i.Visible
	existing.DisplayOrder = i.DisplayOrder

	if err := validateIdentifier(existing); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, existing); err != nil {
		return err
	}
	*i = *existing

	service.logger.Info("identifier_updated", slog.Int64("identifier_id", id))
	return nil
}

func (service *Service) DeleteIdentifier(ctx context.Context, nameToken string, id int64) error {
	if _, err := service.owned(ctx, nameToken, id); err != nil {
		return err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("identifier_deleted", slog.Int64("identifier_id", id))
	return nil
}

// owned loads an identifier and checks it belongs to the record
// addressed in the URL. A row reached through the wrong parent does not
// exist from the caller's point of view.
func (service *Service) owned(ctx context.Context, nameToken string, id int64) (*Identifier, error) {
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

// # Type catalog

func (service *Service) ListTypes(ctx context.Context) ([]*IdentifierType, error) {
	return service.repo.ListTypes(ctx)
}

func (service *Service) CreateType(ctx context.Context, it *IdentifierType) error {
	if err := validateType(it); err != nil {
		return err
	}

	if err := service.repo.CreateType(ctx, it); err != nil {
		return err
	}

	service.logger.Info("identifier_type_created", slog.String("label", it.Label))
	return nil
}

func (service *Service) UpdateType(ctx context.Context, id int64, it *IdentifierType) error {
	existing, err := service.repo.GetType(ctx, id)
	if err != nil {
		return err
	}

	existing.Label = it.Label
	existing.IconPath = it.IconPath
	existing.Homepage = it.Homepage

	if err := validateType(existing); err != nil {
		return err
	}

	if err := service.repo.UpdateType(ctx, existing); err != nil {
		return err
	}
	*it = *existing

	service.logger.Info("identifier_type_updated", slog.Int64("type_id", id))
	return nil
}

func (service *Service) DeleteType(ctx context.Context, id int64) error {
	if err := service.repo.DeleteType(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("identifier_type_deleted", slog.Int64("type_id", id))
	return nil
}
