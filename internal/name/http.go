package name

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/platform/middleware"
	requestutil "github.com/fondrenlibrary/name-authority/internal/platform/request"
	"github.com/fondrenlibrary/name-authority/internal/platform/respond"
	"github.com/fondrenlibrary/name-authority/internal/platform/sec"
	"github.com/fondrenlibrary/name-authority/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.searchNames)
	router.Get("/{nameID}", handler.getName)
	router.Get("/{nameID}/mads.xml", handler.getNameMADS)

	// Editor and up
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createName)
		editorRoute.Patch("/{nameID}", handler.updateName)
	})
}

func (handler *Handler) searchNames(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	if raw := request.URL.Query().Get("name_type"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || !Type(value).Valid() {
			respond.Error(writer, request, apperr.ValidationError("invalid name_type filter"))
			return
		}
		nameType := Type(value)
		filter.Type = &nameType
	}

	names, total, err := handler.service.Search(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, names, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getName(writer http.ResponseWriter, request *http.Request) {
	nameID := requestutil.Param(request, "nameID")

	detail, err := handler.service.GetDetail(request.Context(), nameID, requestutil.IsEditor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) getNameMADS(writer http.ResponseWriter, request *http.Request) {
	nameID := requestutil.Param(request, "nameID")

	detail, err := handler.service.GetDetail(request.Context(), nameID, false)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.XML(writer, http.StatusOK, newMADSRecord(detail))
}

func (handler *Handler) createName(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateName(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateName(writer http.ResponseWriter, request *http.Request) {
	nameID := requestutil.Param(request, "nameID")

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateName(request.Context(), nameID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

// # Standalone read endpoints
//
// Mounted outside the /names subtree by the server.

func (handler *Handler) Stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) MapJSON(writer http.ResponseWriter, request *http.Request) {
	points, err := handler.service.MapPoints(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if points == nil {
		points = []MapPoint{}
	}
	respond.OK(writer, points)
}

// ResolveLabel redirects a plain-text label to the canonical record
// that carries the same normalized form.
func (handler *Handler) ResolveLabel(writer http.ResponseWriter, request *http.Request) {
	label := requestutil.Param(request, "label")

	n, err := handler.service.ResolveLabel(request.Context(), label)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.Redirect(writer, request, "/api/v1/names/"+n.NameID, http.StatusSeeOther)
}

func (handler *Handler) Export(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	names, total, err := handler.service.Export(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, names, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
