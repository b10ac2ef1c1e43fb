package identifier

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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

// RegisterRoutes mounts under /names/{nameID}/identifiers.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listIdentifiers)

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createIdentifier)
		editorRoute.Patch("/{id}", handler.updateIdentifier)
		editorRoute.Delete("/{id}", handler.deleteIdentifier)
	})
}

// RegisterTypeRoutes mounts under /identifier-types. The catalog is
// readable by anyone; writes are admin-only.
func (handler *Handler) RegisterTypeRoutes(router chi.Router) {
	router.Get("/", handler.listTypes)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createType)
		adminRoute.Patch("/{id}", handler.updateType)
		adminRoute.Delete("/{id}", handler.deleteType)
	})
}

func (handler *Handler) listIdentifiers(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")

	identifiers, err := handler.service.ListIdentifiers(request.Context(), nameToken, requestutil.IsEditor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if identifiers == nil {
		identifiers = []*Identifier{}
	}
	respond.OK(writer, identifiers)
}

func (handler *Handler) createIdentifier(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")

	input := Identifier{Visible: true}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateIdentifier(request.Context(), nameToken, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateIdentifier(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")
	identifierID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Identifier
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateIdentifier(request.Context(), nameToken, identifierID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteIdentifier(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")
	identifierID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteIdentifier(request.Context(), nameToken, identifierID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listTypes(writer http.ResponseWriter, request *http.Request) {
	types, err := handler.service.ListTypes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if types == nil {
		types = []*IdentifierType{}
	}
	respond.OK(writer, types)
}

func (handler *Handler) createType(writer http.ResponseWriter, request *http.Request) {
	var input IdentifierType
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateType(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateType(writer http.ResponseWriter, request *http.Request) {
	typeID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input IdentifierType
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateType(request.Context(), typeID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteType(writer http.ResponseWriter, request *http.Request) {
	typeID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteType(request.Context(), typeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
