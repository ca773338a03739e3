// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/chitalka/internal/platform/apperr"
	"github.com/taibuivan/chitalka/internal/platform/middleware"
	requestutil "github.com/taibuivan/chitalka/internal/platform/request"
	"github.com/taibuivan/chitalka/internal/platform/respond"
	"github.com/taibuivan/chitalka/internal/platform/sec"
	"github.com/taibuivan/chitalka/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the feedback endpoints. Submission needs any
// authenticated user; the triage queue is staff-only.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/feedback", handler.create)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleStaff))
		r.Get("/feedback", handler.list)
		r.Patch("/feedback/{id}", handler.updateStatus)
	})
}

type createRequest struct {
	Text string `json:"text"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// POST /feedback
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	created, err := handler.service.Create(request.Context(), userID, input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

// GET /feedback
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	requests, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, requests)
}

// PATCH /feedback/{id}
func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Feedback id must be numeric"))
		return
	}

	var input updateStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.UpdateStatus(request.Context(), id, input.Status); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
