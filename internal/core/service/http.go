// Copyright (c) 2026 Daleel Balady. All rights reserved.

package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daleelbalady/daleel/internal/core/review"
	"github.com/daleelbalady/daleel/internal/core/tag"
	requestutil "github.com/daleelbalady/daleel/internal/platform/request"
	"github.com/daleelbalady/daleel/internal/platform/respond"
	"github.com/daleelbalady/daleel/pkg/pagination"
)

// ServiceView is the API shape for a single service with its tags and
// reviews resolved.
type ServiceView struct {
	*Service
	Tags    []tag.Tag        `json:"tags"`
	Reviews []*review.Review `json:"reviews"`
}

type Handler struct {
	repo    Repository
	tags    tag.Repository
	reviews review.Repository
}

func NewHandler(repo Repository, tags tag.Repository, reviews review.Repository) *Handler {
	return &Handler{repo: repo, tags: tags, reviews: reviews}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listServices)
	router.Get("/{id}", handler.getService)
}

func (handler *Handler) listServices(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	city := request.URL.Query().Get("city")
	categoryID := request.URL.Query().Get("category_id")

	services, total, err := handler.repo.List(request.Context(), params, city, categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, services, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getService(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	service, err := handler.repo.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tags, err := handler.tags.ListByService(request.Context(), service.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.reviews.ListByService(request.Context(), service.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ServiceView{Service: service, Tags: tags, Reviews: reviews})
}
