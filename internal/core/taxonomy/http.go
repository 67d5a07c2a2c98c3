// Copyright (c) 2026 Daleel Balady. All rights reserved.

package taxonomy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/daleelbalady/daleel/internal/platform/request"
	"github.com/daleelbalady/daleel/internal/platform/respond"
	"github.com/daleelbalady/daleel/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Get("/{id}", handler.getCategory)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	categories, total, err := handler.service.ListCategories(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, categories, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	category, err := handler.service.GetCategory(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}
