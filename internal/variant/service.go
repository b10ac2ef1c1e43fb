package variant

import (
	"context"
	"log/slog"

	"github.com/fondrenlibrary/name-authority/internal/platform/dberr"
	"github.com/fondrenlibrary/name-authority/internal/platform/validate"
	"github.com/fondrenlibrary/name-authority/pkg/naco"
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

func validateVariant(v *Variant) error {
	validator := &validate.Validator{}

	validator.Required(FieldVariant, v.Variant).MaxLen(FieldVariant, v.Variant, 255)
	validator.Custom(FieldVariantType, !v.Type.Valid(), "must be a known variant type")

	return validator.Err()
}

func (service *Service) ListVariants(ctx context.Context, nameToken string) ([]*Variant, error) {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return nil, err
	}
	return service.repo.ListForName(ctx, nameID)
}

func (service *Service) CreateVariant(ctx context.Context, nameToken string, v *Variant) error {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return err
	}
	v.NameID = nameID

	if err := validateVariant(v); err != nil {
		return err
	}
	v.NormalizedVariant = naco.Normalize(v.Variant)

	if err := service.repo.Create(ctx, v); err != nil {
		return err
	}

	service.logger.Info("variant_created",
		slog.String("name_id", nameToken), slog.Int64("variant_id", v.ID))
	return nil
}

func (service *Service) UpdateVariant(ctx context.Context, nameToken string, id int64, v *Variant) error {
	existing, err := service.owned(ctx, nameToken, id)
	if err != nil {
		return err
	}

	existing.Variant = v.Variant
	existing.Type = v.Type

	if err := validateVariant(existing); err != nil {
		return err
	}
	// The normalized form never goes stale: it is derived on every save.
	existing.NormalizedVariant = naco.Normalize(existing.Variant)

	if err := service.repo.Update(ctx, existing); err != nil {
		return err
	}
	*v = *existing

	service.logger.Info("variant_updated", slog.Int64("variant_id", id))
	return nil
}

func (service *Service) DeleteVariant(ctx context.Context, nameToken string, id int64) error {
	if _, err := service.owned(ctx, nameToken, id); err != nil {
		return err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("variant_deleted", slog.Int64("variant_id", id))
	return nil
}

// owned loads a variant and checks it belongs to the record addressed
// in the URL. A row reached through the wrong parent does not exist
// from the caller's point of view.
func (service *Service) owned(ctx context.Context, nameToken string, id int64) (*Variant, error) {
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
