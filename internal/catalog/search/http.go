// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/chitalka/internal/platform/request"
	"github.com/taibuivan/chitalka/internal/platform/respond"
	"github.com/taibuivan/chitalka/pkg/convert"
	"github.com/taibuivan/chitalka/pkg/searchpage"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/search", handler.search)
}

// GET /search?value=&author=&artworks=&page=&limit=
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	query := Query{
		Value:        values.Get("value"),
		AuthorOnly:   convert.ToBool(values.Get("author")),
		ArtworksOnly: convert.ToBool(values.Get("artworks")),
		Page:         searchpage.FromRequest(request),
	}
	if claims := requestutil.Claims(request); claims != nil {
		query.UserID = claims.UserID
	}

	page, err := handler.service.Search(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page)
}
