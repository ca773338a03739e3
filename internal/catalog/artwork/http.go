// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artwork

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
	router.Get("/filter-artworks-first", handler.filterByPrefix)
	router.Get("/filter-year-artworks", handler.filterByYear)
	router.Get("/filter-genre-artworks", handler.filterByGenre)
	router.Get("/artworks-year", handler.yearHistogram)
	router.Get("/books-genre-author", handler.byAuthorAndGenre)
}

// callerID extracts the user id from an optional Bearer token. Anonymous
// callers still get catalog results, just without `read` annotations.
func callerID(request *http.Request) string {
	if claims := requestutil.Claims(request); claims != nil {
		return claims.UserID
	}
	return ""
}

// GET /filter-artworks-first?value=
func (handler *Handler) filterByPrefix(writer http.ResponseWriter, request *http.Request) {
	prefix := request.URL.Query().Get("value")

	artworks, err := handler.service.ListByPrefix(request.Context(), prefix, callerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nonNil(artworks))
}

// GET /filter-year-artworks?year=
func (handler *Handler) filterByYear(writer http.ResponseWriter, request *http.Request) {
	year := request.URL.Query().Get("year")

	artworks, err := handler.service.FilterByYear(request.Context(), year, callerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nonNil(artworks))
}

// GET /filter-genre-artworks?genre=
func (handler *Handler) filterByGenre(writer http.ResponseWriter, request *http.Request) {
	genre := request.URL.Query().Get("genre")

	artworks, err := handler.service.FilterByGenreName(request.Context(), genre, callerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nonNil(artworks))
}

// GET /artworks-year
func (handler *Handler) yearHistogram(writer http.ResponseWriter, request *http.Request) {
	histogram, err := handler.service.YearHistogram(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, histogram)
}

// GET /books-genre-author?author=&genre=
func (handler *Handler) byAuthorAndGenre(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	authorID, authorErr := strconv.Atoi(query.Get("author"))
	genreID, genreErr := strconv.Atoi(query.Get("genre"))
	if authorErr != nil || genreErr != nil {
		respond.Error(writer, request, apperr.ValidationError("Author and genre ids are required and must be numeric"))
		return
	}

	artworks, err := handler.service.FilterByAuthorAndGenre(request.Context(), authorID, genreID, callerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nonNil(artworks))
}

func nonNil(artworks []*Artwork) []*Artwork {
	if artworks == nil {
		return []*Artwork{}
	}
	return artworks
}
