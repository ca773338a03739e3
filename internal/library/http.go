// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package library

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/chitalka/internal/platform/apperr"
	requestutil "github.com/taibuivan/chitalka/internal/platform/request"
	"github.com/taibuivan/chitalka/internal/platform/respond"
	"github.com/taibuivan/chitalka/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the reading-list endpoints. The router is expected
// to already require authentication.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/book-state", handler.create)
	router.Patch("/update-state-book/{id}", handler.update)
	router.Get("/books", handler.list)
	router.Delete("/delete-book-state/{id}", handler.hide)
	router.Get("/book/{id}", handler.book)
}

// POST /book-state
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	state, err := handler.service.Create(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, state)
}

// PATCH /update-state-book/{id}
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stateID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("State id must be numeric"))
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	state, err := handler.service.UpdateState(request.Context(), userID, stateID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, state)
}

// GET /books
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.List(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

// DELETE /delete-book-state/{id}
func (handler *Handler) hide(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stateID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("State id must be numeric"))
		return
	}

	if err := handler.service.Hide(request.Context(), userID, stateID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// GET /book/{id}
func (handler *Handler) book(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artworkID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Book id must be numeric"))
		return
	}

	view, err := handler.service.Book(request.Context(), userID, artworkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}
