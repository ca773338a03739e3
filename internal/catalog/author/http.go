// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/chitalka/internal/platform/apperr"
	requestutil "github.com/taibuivan/chitalka/internal/platform/request"
	"github.com/taibuivan/chitalka/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public catalog surface
	router.Get("/filter-author-first", handler.filterByPrefix)
	router.Get("/first-letter-author", handler.firstLetters)
	router.Get("/detail-author/{id}", handler.detail)
}

// GET /filter-author-first?value=
func (handler *Handler) filterByPrefix(writer http.ResponseWriter, request *http.Request) {
	prefix := request.URL.Query().Get("value")

	authors, err := handler.service.ListByPrefix(request.Context(), prefix)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if authors == nil {
		authors = []*Author{}
	}
	respond.OK(writer, authors)
}

// GET /first-letter-author
func (handler *Handler) firstLetters(writer http.ResponseWriter, request *http.Request) {
	histogram, err := handler.service.FirstLetterHistogram(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, histogram)
}

// GET /detail-author/{id}
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	authorID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Author id must be numeric"))
		return
	}

	// Anonymous callers still get the author page, just without `last`.
	userID := ""
	if claims := requestutil.Claims(request); claims != nil {
		userID = claims.UserID
	}

	detail, err := handler.service.Detail(request.Context(), authorID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}
