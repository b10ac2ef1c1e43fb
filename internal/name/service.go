package name

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/platform/geocode"
	"github.com/fondrenlibrary/name-authority/internal/platform/validate"
	"github.com/fondrenlibrary/name-authority/internal/ticket"
	"github.com/fondrenlibrary/name-authority/pkg/markup"
	"github.com/fondrenlibrary/name-authority/pkg/naco"
)

// LocationStore is the slice of the location package the post-save
// geocode hook needs.
type LocationStore interface {
	CountForName(ctx context.Context, nameID int64) (int, error)
	CreateFromGeocode(ctx context.Context, nameID int64, match *geocode.Match) error
}

// Geocoder resolves a query string to coordinates. A nil match with a
// nil error means the lookup produced nothing usable.
type Geocoder interface {
	Lookup(ctx context.Context, query string) (*geocode.Match, error)
}

type Service struct {
	repo      Repository
	tickets   ticket.Allocator
	locations LocationStore
	geocoder  Geocoder
	logger    *slog.Logger
}

func NewService(repo Repository, tickets ticket.Allocator, locations LocationStore, geocoder Geocoder, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		tickets:   tickets,
		locations: locations,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// Input is the write payload for a name record. MergedWith carries the
// public token of the merge target, or null to clear the pointer.
type Input struct {
	Name           string  `json:"name"`
	Type           Type    `json:"name_type"`
	Begin          string  `json:"begin"`
	End            string  `json:"end"`
	Disambiguation string  `json:"disambiguation"`
	Biography      string  `json:"biography"`
	Status         Status  `json:"record_status"`
	MergedWith     *string `json:"merged_with"`
}

func (service *Service) validateInput(input *Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 255)
	validator.Custom(FieldNameType, !input.Type.Valid(), "must be a known name type")
	validator.Custom(FieldRecordStatus, !input.Status.Valid(), "must be a known record status")
	validator.MaxLen(FieldBegin, input.Begin, 25)
	validator.MaxLen(FieldEnd, input.End, 25)
	validator.MaxLen(FieldDisambiguation, input.Disambiguation, 255)

	return validator.Err()
}

// resolveMergeTarget turns a public merge token into the target row,
// rejecting targets that do not exist or are themselves merged. The
// second rule keeps merge pointers to a single hop.
func (service *Service) resolveMergeTarget(ctx context.Context, token string) (*Name, error) {
	target, err := service.repo.GetByNameID(ctx, token)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.HTTPStatus == http.StatusNotFound {
			return nil, apperr.ValidationError("invalid merge target", apperr.FieldError{
				Field: FieldMergedWith, Message: "no record with that name_id exists",
			})
		}
		return nil, err
	}

	if target.MergedWithID != nil {
		return nil, apperr.ValidationError("invalid merge target", apperr.FieldError{
			Field: FieldMergedWith, Message: "target record has itself been merged",
		})
	}

	return target, nil
}

func (service *Service) CreateName(ctx context.Context, input *Input) (*Name, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	n := &Name{
		Name:           input.Name,
		NormalizedName: naco.Normalize(input.Name),
		Type:           input.Type,
		Begin:          input.Begin,
		End:            input.End,
		Disambiguation: input.Disambiguation,
		Biography:      input.Biography,
		Status:         input.Status,
	}

	if input.MergedWith != nil && *input.MergedWith != "" {
		target, err := service.resolveMergeTarget(ctx, *input.MergedWith)
		if err != nil {
			return nil, err
		}
		n.MergedWithID = &target.ID
		n.MergedWith = &target.NameID
	}

	// The public token is derived from a ticket exactly once, at first
	// save, and never recomputed.
	serial, err := service.tickets.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	n.NameID = ticket.Format(serial)

	if err := service.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	service.logger.Info("name_created",
		slog.String("name_id", n.NameID),
		slog.String("name", n.Name),
	)

	service.maybeGeocode(ctx, n)
	return n, nil
}

func (service *Service) UpdateName(ctx context.Context, nameID string, input *Input) (*Name, error) {
	existing, err := service.repo.GetByNameID(ctx, nameID)
	if err != nil {
		return nil, err
	}

	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.NormalizedName = naco.Normalize(input.Name)
	existing.Type = input.Type
	existing.Begin = input.Begin
	existing.End = input.End
	existing.Disambiguation = input.Disambiguation
	existing.Biography = input.Biography
	existing.Status = input.Status

	existing.MergedWithID = nil
	existing.MergedWith = nil
	if input.MergedWith != nil && *input.MergedWith != "" {
		if *input.MergedWith == existing.NameID {
			return nil, apperr.ValidationError("invalid merge target", apperr.FieldError{
				Field: FieldMergedWith, Message: "a record cannot be merged with itself",
			})
		}

		target, err := service.resolveMergeTarget(ctx, *input.MergedWith)
		if err != nil {
			return nil, err
		}
		existing.MergedWithID = &target.ID
		existing.MergedWith = &target.NameID
	}

	if err := service.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	service.logger.Info("name_updated", slog.String("name_id", existing.NameID))

	service.maybeGeocode(ctx, existing)
	return existing, nil
}

// maybeGeocode gives a Building record with no locations a Current
// location from a geocoder lookup on its normalized name. Every failure
// mode is logged and swallowed: the save already succeeded.
func (service *Service) maybeGeocode(ctx context.Context, n *Name) {
	if !n.IsBuilding() {
		return
	}

	count, err := service.locations.CountForName(ctx, n.ID)
	if err != nil {
		service.logger.Warn("geocode_location_count_failed",
			slog.String("name_id", n.NameID), slog.Any("error", err))
		return
	}
	if count > 0 {
		return
	}

	match, err := service.geocoder.Lookup(ctx, n.NormalizedName)
	if err != nil {
		service.logger.Warn("geocode_lookup_failed",
			slog.String("name_id", n.NameID), slog.Any("error", err))
		return
	}
	if match == nil {
		return
	}

	if err := service.locations.CreateFromGeocode(ctx, n.ID, match); err != nil {
		service.logger.Warn("geocode_location_create_failed",
			slog.String("name_id", n.NameID), slog.Any("error", err))
		return
	}

	service.logger.Info("geocode_location_created", slog.String("name_id", n.NameID))
}

// ResolveID maps a public token onto the internal row id. The
// associated-record services use this to anchor their rows.
func (service *Service) ResolveID(ctx context.Context, nameID string) (int64, error) {
	n, err := service.repo.GetByNameID(ctx, nameID)
	if err != nil {
		return 0, err
	}
	return n.ID, nil
}

func (service *Service) GetName(ctx context.Context, nameID string) (*Name, error) {
	return service.repo.GetByNameID(ctx, nameID)
}

// GetDetail loads the aggregate view and fills in the derived
// presentation fields.
func (service *Service) GetDetail(ctx context.Context, nameID string, includeNonpublic bool) (*Detail, error) {
	detail, err := service.repo.GetDetail(ctx, nameID, includeNonpublic)
	if err != nil {
		return nil, err
	}

	detail.BiographyHTML = markup.Render(detail.Biography)
	detail.SchemaURL = detail.Type.SchemaURL()
	return detail, nil
}

func (service *Service) Search(ctx context.Context, f Filter, limit, offset int) ([]*Name, int, error) {
	f.Query = naco.Normalize(f.Query)
	return service.repo.Search(ctx, f, limit, offset)
}

func (service *Service) Export(ctx context.Context, limit, offset int) ([]*Name, int, error) {
	return service.repo.Export(ctx, limit, offset)
}

// ResolveLabel finds the visible record whose normalized name equals
// the normalization of the given label.
func (service *Service) ResolveLabel(ctx context.Context, label string) (*Name, error) {
	return service.repo.ResolveLabel(ctx, naco.Normalize(label))
}

func (service *Service) Stats(ctx context.Context) (*Stats, error) {
	counts, err := service.repo.ActiveTypeCounts(ctx)
	if err != nil {
		return nil, err
	}

	created, err := service.repo.CountsByMonth(ctx, StatsCreated)
	if err != nil {
		return nil, err
	}

	modified, err := service.repo.CountsByMonth(ctx, StatsModified)
	if err != nil {
		return nil, err
	}

	return &Stats{TypeCounts: *counts, Created: created, Modified: modified}, nil
}

func (service *Service) MapPoints(ctx context.Context) ([]MapPoint, error) {
	return service.repo.MapPoints(ctx)
}
