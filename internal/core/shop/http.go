// Copyright (c) 2026 Daleel Balady. All rights reserved.

package shop

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
	router.Get("/", handler.listShops)
	router.Get("/by-slug/{slug}", handler.getShopBySlug)
}

func (handler *Handler) listShops(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	city := request.URL.Query().Get("city")

	shops, total, err := handler.service.ListShops(request.Context(), params, city)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, shops, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getShopBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	shop, err := handler.service.GetShopBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shop)
}
