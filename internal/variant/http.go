package variant

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

// RegisterRoutes mounts under /names/{nameID}/variants.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listVariants)

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createVariant)
		editorRoute.Patch("/{id}", handler.updateVariant)
		editorRoute.Delete("/{id}", handler.deleteVariant)
	})
}

func (handler *Handler) listVariants(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")

	variants, err := handler.service.ListVariants(request.Context(), nameToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if variants == nil {
		variants = []*Variant{}
	}
	respond.OK(writer, variants)
}

func (handler *Handler) createVariant(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")

	var input Variant
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateVariant(request.Context(), nameToken, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateVariant(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")
	variantID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Variant
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateVariant(request.Context(), nameToken, variantID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteVariant(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")
	variantID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteVariant(request.Context(), nameToken, variantID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
