package location

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/platform/middleware"
	requestutil "github.com/fondrenlibrary/name-authority/internal/platform/request"
	"github.com/fondrenlibrary/name-authority/internal/platform/respond"
	"github.com/fondrenlibrary/name-authority/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts under /names/{nameID}/locations.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLocations)
	router.Get("/current", handler.currentLocation)

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createLocation)
		editorRoute.Patch("/{id}", handler.updateLocation)
		editorRoute.Delete("/{id}", handler.deleteLocation)
	})
}

func (handler *Handler) listLocations(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")

	locations, err := handler.service.ListLocations(request.Context(), nameToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if locations == nil {
		locations = []*Location{}
	}
	respond.OK(writer, locations)
}

func (handler *Handler) currentLocation(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")

	l, err := handler.service.CurrentLocation(request.Context(), nameToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if l == nil {
		respond.Error(writer, request, apperr.NotFound("Current location"))
		return
	}
	respond.OK(writer, l)
}

func (handler *Handler) createLocation(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")

	var input Location
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateLocation(request.Context(), nameToken, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateLocation(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")
	locationID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Location
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateLocation(request.Context(), nameToken, locationID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteLocation(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")
	locationID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteLocation(request.Context(), nameToken, locationID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
