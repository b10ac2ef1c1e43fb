package note

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

// RegisterRoutes mounts under /names/{nameID}/notes.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listNotes)

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createNote)
		editorRoute.Patch("/{id}", handler.updateNote)
		editorRoute.Delete("/{id}", handler.deleteNote)
	})
}

func (handler *Handler) listNotes(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")

	notes, err := handler.service.ListNotes(request.Context(), nameToken, requestutil.IsEditor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if notes == nil {
		notes = []*Note{}
	}
	respond.OK(writer, notes)
}

func (handler *Handler) createNote(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")

	var input Note
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateNote(request.Context(), nameToken, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateNote(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")
	noteID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Note
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateNote(request.Context(), nameToken, noteID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteNote(writer http.ResponseWriter, request *http.Request) {
	nameToken := requestutil.Param(request, "nameID")
	noteID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteNote(request.Context(), nameToken, noteID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
