package location

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/fondrenlibrary/name-authority/internal/platform/dberr"
	"github.com/fondrenlibrary/name-authority/internal/platform/geocode"
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

// NewService builds the location service. The name resolver may be nil
// at construction and set afterwards: the name service and the location
// service reference each other (geocode hook one way, token resolution
// the other), so one side is wired in a second phase.
func NewService(repo Repository, names NameResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		names:  names,
		logger: logger,
	}
}

// SetNameResolver completes the two-phase wiring.
func (service *Service) SetNameResolver(names NameResolver) {
	service.names = names
}

var (
	latitudeMin  = decimal.NewFromInt(-90)
	latitudeMax  = decimal.NewFromInt(90)
	longitudeMin = decimal.NewFromInt(-180)
	longitudeMax = decimal.NewFromInt(180)
)

func validateLocation(l *Location) error {
	validator := &validate.Validator{}

	validator.Custom(FieldLatitude,
		l.Latitude.LessThan(latitudeMin) || l.Latitude.GreaterThan(latitudeMax),
		"must be between -90 and 90")
	validator.Custom(FieldLongitude,
		l.Longitude.LessThan(longitudeMin) || l.Longitude.GreaterThan(longitudeMax),
		"must be between -180 and 180")
	validator.Custom(FieldStatus, !l.Status.Valid(), "must be Current or Former")

	return validator.Err()
}

func (service *Service) ListLocations(ctx context.Context, nameToken string) ([]*Location, error) {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return nil, err
	}
	return service.repo.ListForName(ctx, nameID)
}

// CurrentLocation returns the record's Current location, or nil when it
// has none.
func (service *Service) CurrentLocation(ctx context.Context, nameToken string) (*Location, error) {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return nil, err
	}
	return service.repo.CurrentLocation(ctx, nameID)
}

func (service *Service) CreateLocation(ctx context.Context, nameToken string, l *Location) error {
	nameID, err := service.names.ResolveID(ctx, nameToken)
	if err != nil {
		return err
	}
	l.ID = 0
	l.NameID = nameID

	if err := validateLocation(l); err != nil {
		return err
	}

	if err := service.repo.Save(ctx, l); err != nil {
		return err
	}

	service.logger.Info("location_created",
		slog.String("name_id", nameToken), slog.Int64("location_id", l.ID))
	return nil
}

func (service *Service) UpdateLocation(ctx context.Context, nameToken string, id int64, l *Location) error {
	existing, err := service.owned(ctx, nameToken, id)
	if err != nil {
		return err
	}

	existing.Latitude = l.Latitude
	existing.Longitude = l.Longitude
	existing.Status = l.Status

	if err := validateLocation(existing); err != nil {
		return err
	}

	if err := service.repo.Save(ctx, existing); err != nil {
		return err
	}
	*l = *existing

	service.logger.Info("location_updated", slog.Int64("location_id", id))
	return nil
}

func (service *Service) DeleteLocation(ctx context.Context, nameToken string, id int64) error {
	if _, err := service.owned(ctx, nameToken, id); err != nil {
		return err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("location_deleted", slog.Int64("location_id", id))
	return nil
}

// owned loads a location and checks it belongs to the record addressed
// in the URL. A row reached through the wrong parent does not exist
// from the caller's point of view.
func (service *Service) owned(ctx context.Context, nameToken string, id int64) (*Location, error) {
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

// CountForName reports how many locations a record has. The name
// package's post-save geocode hook keys off this.
func (service *Service) CountForName(ctx context.Context, nameID int64) (int, error) {
	return service.repo.CountForName(ctx, nameID)
}

// CreateFromGeocode creates a Current location from a geocoder match.
func (service *Service) CreateFromGeocode(ctx context.Context, nameID int64, match *geocode.Match) error {
	l := &Location{
		NameID:    nameID,
		Latitude:  match.Latitude,
		Longitude: match.Longitude,
		Status:    StatusCurrent,
	}

	if err := validateLocation(l); err != nil {
		return err
	}
	return service.repo.Save(ctx, l)
}
