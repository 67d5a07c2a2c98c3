// Copyright (c) 2026 Daleel Balady. All rights reserved.

/*
Package memory provides an in-process implementation of every repository
interface in internal/core.

It backs the importer's dry-run mode, where a full pipeline pass runs
without touching Postgres, and doubles as the fixture store for pipeline
tests. Semantics mirror the Postgres stores: lookups return the dberr
not-found sentinel, "first" queries follow insertion order, and the
subscription table enforces its one-per-provider unique constraint with a
Conflict error.
*/
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/daleelbalady/daleel/internal/core/provider"
	"github.com/daleelbalady/daleel/internal/core/review"
	"github.com/daleelbalady/daleel/internal/core/service"
	"github.com/daleelbalady/daleel/internal/core/shop"
	"github.com/daleelbalady/daleel/internal/core/tag"
	"github.com/daleelbalady/daleel/internal/core/taxonomy"
	"github.com/daleelbalady/daleel/internal/core/user"
	"github.com/daleelbalady/daleel/internal/platform/apperr"
	"github.com/daleelbalady/daleel/internal/platform/dberr"
	"github.com/daleelbalady/daleel/pkg/pagination"
)

// Store holds every entity table in insertion order behind one mutex.
// The importer is sequential, so contention is not a concern; the lock
// exists so the read API can share a dry-run store safely.
type Store struct {
	mu sync.Mutex

	users            []*user.User
	categories       []*taxonomy.Category
	subCategories    []*taxonomy.SubCategory
	designs          []*taxonomy.Design
	shops            []*shop.Shop
	shopAddresses    []*shop.Translation
	services         []*service.Service
	serviceTexts     []*service.Translation
	serviceTags      map[string][]string
	tags             []*tag.Tag
	reviews          []*review.Review
	subscriptions    []*provider.Subscription
	applications     []*provider.Application
}

func NewStore() *Store {
	return &Store{serviceTags: map[string][]string{}}
}

// # Users

func (store *Store) Users() user.Repository { return userRepo{store} }

type userRepo struct{ s *Store }

func (r userRepo) GetByName(_ context.Context, name string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r userRepo) Create(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users = append(r.s.users, u)
	return nil
}

// # Taxonomy

func (store *Store) Taxonomy() taxonomy.Repository { return taxonomyRepo{store} }

type taxonomyRepo struct{ s *Store }

func (r taxonomyRepo) GetCategoryByIDOrName(_ context.Context, id, name string) (*taxonomy.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.categories {
		if c.ID == id || c.Name == name {
			return c, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r taxonomyRepo) GetCategoryByID(_ context.Context, id string) (*taxonomy.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r taxonomyRepo) GetCategoryByName(_ context.Context, name string) (*taxonomy.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r taxonomyRepo) GetFirstCategory(_ context.Context) (*taxonomy.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if len(r.s.categories) == 0 {
		return nil, dberr.ErrNotFound
	}
	return r.s.categories[0], nil
}

func (r taxonomyRepo) ListCategories(_ context.Context, params pagination.Params) ([]*taxonomy.Category, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	total := len(r.s.categories)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	page := make([]*taxonomy.Category, end-start)
	copy(page, r.s.categories[start:end])
	return page, total, nil
}

func (r taxonomyRepo) CreateCategory(_ context.Context, c *taxonomy.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.categories = append(r.s.categories, c)
	return nil
}

func (r taxonomyRepo) SetCategoryDesign(_ context.Context, categoryID, designID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.categories {
		if c.ID == categoryID {
			c.DesignID = designID
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (r taxonomyRepo) GetSubCategory(_ context.Context, id, name, categoryID string, slugs []string) (*taxonomy.SubCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	slugSet := map[string]bool{}
	for _, s := range slugs {
		slugSet[s] = true
	}

	for _, sc := range r.s.subCategories {
		if sc.ID == id || (sc.Name == name && sc.CategoryID == categoryID) || slugSet[sc.Slug] {
			return sc, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r taxonomyRepo) GetSubCategoryByID(_ context.Context, id string) (*taxonomy.SubCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sc := range r.s.subCategories {
		if sc.ID == id {
			return sc, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r taxonomyRepo) ListSubCategories(_ context.Context, categoryID string) ([]taxonomy.SubCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]taxonomy.SubCategory, 0)
	for _, sc := range r.s.subCategories {
		if sc.CategoryID == categoryID {
			out = append(out, *sc)
		}
	}
	return out, nil
}

func (r taxonomyRepo) CreateSubCategory(_ context.Context, sc *taxonomy.SubCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sc.CreatedAt = time.Now()
	sc.UpdatedAt = sc.CreatedAt
	r.s.subCategories = append(r.s.subCategories, sc)
	return nil
}

func (r taxonomyRepo) GetDesignBySlug(_ context.Context, slug string) (*taxonomy.Design, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, d := range r.s.designs {
		if d.Slug == slug {
			return d, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r taxonomyRepo) GetFirstDesign(_ context.Context) (*taxonomy.Design, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if len(r.s.designs) == 0 {
		return nil, dberr.ErrNotFound
	}
	return r.s.designs[0], nil
}

func (r taxonomyRepo) CreateDesign(_ context.Context, d *taxonomy.Design) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.s.designs = append(r.s.designs, d)
	return nil
}

func (r taxonomyRepo) SetDesignCategory(_ context.Context, designID, categoryID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, d := range r.s.designs {
		if d.ID == designID {
			d.CategoryID = categoryID
			d.UpdatedAt = time.Now()
			return nil
		}
	}
	return dberr.ErrNotFound
}

// # Shops

func (store *Store) Shops() shop.Repository { return shopRepo{store} }

type shopRepo struct{ s *Store }

func (r shopRepo) GetByNameAndOwner(_ context.Context, name, ownerID string) (*shop.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sh := range r.s.shops {
		if sh.Name == name && sh.OwnerID == ownerID {
			return sh, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r shopRepo) GetBySlug(_ context.Context, slug string) (*shop.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sh := range r.s.shops {
		if sh.Slug == slug {
			out := *sh
			for _, addr := range r.s.shopAddresses {
				if addr.ID == sh.AddressID {
					out.Address = addr
					break
				}
			}
			return &out, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r shopRepo) List(_ context.Context, params pagination.Params, city string) ([]*shop.Shop, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := make([]*shop.Shop, 0)
	for _, sh := range r.s.shops {
		if city == "" || sh.City == city {
			matched = append(matched, sh)
		}
	}

	total := len(matched)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r shopRepo) SlugTaken(_ context.Context, slug string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sh := range r.s.shops {
		if sh.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r shopRepo) CreateTranslation(_ context.Context, t *shop.Translation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.shopAddresses = append(r.s.shopAddresses, t)
	return nil
}

func (r shopRepo) Create(_ context.Context, sh *shop.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sh.CreatedAt = time.Now()
	sh.UpdatedAt = sh.CreatedAt
	r.s.shops = append(r.s.shops, sh)
	return nil
}

// # Services

func (store *Store) Services() service.Repository { return serviceRepo{store} }

type serviceRepo struct{ s *Store }

func (r serviceRepo) GetByShopAndEmbedding(_ context.Context, shopID, embeddingText string) (*service.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sv := range r.s.services {
		if sv.ShopID == shopID && sv.EmbeddingText == embeddingText {
			return sv, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r serviceRepo) GetByID(_ context.Context, id string) (*service.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sv := range r.s.services {
		if sv.ID == id {
			out := *sv
			for _, t := range r.s.serviceTexts {
				if t.ID == sv.TranslationID {
					out.Translation = t
					break
				}
			}
			return &out, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r serviceRepo) List(_ context.Context, params pagination.Params, city, categoryID string) ([]*service.Service, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := make([]*service.Service, 0)
	for _, sv := range r.s.services {
		if city != "" && sv.City != city {
			continue
		}
		if categoryID != "" && (sv.CategoryID == nil || *sv.CategoryID != categoryID) {
			continue
		}
		matched = append(matched, sv)
	}

	total := len(matched)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r serviceRepo) CreateTranslation(_ context.Context, t *service.Translation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.serviceTexts = append(r.s.serviceTexts, t)
	return nil
}

func (r serviceRepo) Create(_ context.Context, sv *service.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sv.CreatedAt = time.Now()
	sv.UpdatedAt = sv.CreatedAt
	r.s.services = append(r.s.services, sv)
	r.s.serviceTags[sv.ID] = append([]string{}, sv.TagIDs...)
	return nil
}

// # Tags

func (store *Store) Tags() tag.Repository { return tagRepo{store} }

type tagRepo struct{ s *Store }

func (r tagRepo) GetByName(_ context.Context, name string) (*tag.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.tags {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r tagRepo) ListByService(_ context.Context, serviceID string) ([]tag.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]tag.Tag, 0)
	for _, id := range r.s.serviceTags[serviceID] {
		for _, t := range r.s.tags {
			if t.ID == id {
				out = append(out, *t)
				break
			}
		}
	}
	return out, nil
}

func (r tagRepo) Create(_ context.Context, t *tag.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.CreatedAt = time.Now()
	r.s.tags = append(r.s.tags, t)
	return nil
}

// # Reviews

func (store *Store) Reviews() review.Repository { return reviewRepo{store} }

type reviewRepo struct{ s *Store }

func (r reviewRepo) GetByCommentAndService(_ context.Context, comment, serviceID string) (*review.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rv := range r.s.reviews {
		if rv.Comment == comment && rv.ServiceID == serviceID {
			return rv, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r reviewRepo) ListByService(_ context.Context, serviceID string) ([]*review.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*review.Review, 0)
	for _, rv := range r.s.reviews {
		if rv.ServiceID == serviceID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r reviewRepo) Create(_ context.Context, rv *review.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rv.CreatedAt = time.Now()
	r.s.reviews = append(r.s.reviews, rv)
	return nil
}

// # Providers

func (store *Store) Providers() provider.Repository { return providerRepo{store} }

type providerRepo struct{ s *Store }

func (r providerRepo) GetSubscriptionByProvider(_ context.Context, providerID string) (*provider.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sub := range r.s.subscriptions {
		if sub.ProviderID == providerID {
			return sub, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r providerRepo) CreateSubscription(_ context.Context, sub *provider.Subscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// One subscription per provider, same as the unique index in Postgres.
	for _, existing := range r.s.subscriptions {
		if existing.ProviderID == sub.ProviderID {
			return apperr.Conflict("Resource already exists")
		}
	}

	sub.CreatedAt = time.Now()
	r.s.subscriptions = append(r.s.subscriptions, sub)
	return nil
}

func (r providerRepo) GetApplicationByApplicantAndName(_ context.Context, applicantID, businessName string) (*provider.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, app := range r.s.applications {
		if app.ApplicantID == applicantID && app.BusinessName == businessName {
			return app, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r providerRepo) CreateApplication(_ context.Context, app *provider.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Business emails are unique in Postgres; imported data reuses them
	// freely, so imports see this as an expected duplicate.
	for _, existing := range r.s.applications {
		if existing.BusinessEmail != "" && strings.EqualFold(existing.BusinessEmail, app.BusinessEmail) {
			return apperr.Conflict("Resource already exists")
		}
	}

	app.CreatedAt = time.Now()
	r.s.applications = append(r.s.applications, app)
	return nil
}
