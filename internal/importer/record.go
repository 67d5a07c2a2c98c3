// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daleelbalady/daleel/internal/core/provider"
	"github.com/daleelbalady/daleel/internal/core/review"
	"github.com/daleelbalady/daleel/internal/core/service"
	"github.com/daleelbalady/daleel/internal/core/shop"
	"github.com/daleelbalady/daleel/internal/core/tag"
	"github.com/daleelbalady/daleel/internal/core/taxonomy"
	"github.com/daleelbalady/daleel/internal/core/user"
	"github.com/daleelbalady/daleel/internal/platform/apperr"
	"github.com/daleelbalady/daleel/internal/platform/constants"
	"github.com/daleelbalady/daleel/pkg/pointer"
	"github.com/daleelbalady/daleel/pkg/slice"
	"github.com/daleelbalady/daleel/pkg/slug"
	"github.com/daleelbalady/daleel/pkg/uuidv7"
)

// processEntry runs one entry through the strict User -> Shop -> Tags ->
// Service -> Reviews order. Any error aborts this entry only; the caller
// records it and moves on.
func (imp *Importer) processEntry(ctx context.Context, entry *Entry) error {

	// 1. User
	owner, err := imp.resolveOwner(ctx, entry)
	if err != nil {
		return fmt.Errorf("user %q: %w", entry.User.Name, err)
	}

	// 2. Shop
	entryShop, err := imp.resolveShop(ctx, entry, owner)
	if err != nil {
		return fmt.Errorf("shop %q: %w", entry.Shop.Name, err)
	}

	// 3. Tags
	tagIDs, err := imp.resolveTags(ctx, entry)
	if err != nil {
		return fmt.Errorf("tags: %w", err)
	}

	// 4. Service
	entryService, err := imp.resolveService(ctx, entry, owner, entryShop, tagIDs)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}

	// 5. Reviews
	if err := imp.importReviews(ctx, entry, entryShop, entryService); err != nil {
		return fmt.Errorf("reviews: %w", err)
	}
	return nil
}

// # User

func (imp *Importer) resolveOwner(ctx context.Context, entry *Entry) (*user.User, error) {
	role := entry.User.Role
	if role == "" {
		role = constants.DefaultUserRole
	}

	owner, created, err := FirstOrCreate(ctx,
		[]Clause[user.User]{
			Lookup(func(ctx context.Context) (*user.User, error) {
				return imp.stores.Users.GetByName(ctx, entry.User.Name)
			}),
		},
		func(ctx context.Context) (*user.User, error) {
			now := time.Now()
			owner := &user.User{
				ID:         uuidv7.Must(),
				Name:       entry.User.Name,
				Phone:      scrubPhone(entry.User.Phone),
				Role:       role,
				IsVerified: true,
				VerifiedAt: &now,
			}
			if err := imp.stores.Users.Create(ctx, owner); err != nil {
				return nil, err
			}
			return owner, nil
		},
	)
	if err != nil {
		return nil, err
	}

	if !created {
		imp.stats.UsersSkipped++
		imp.logger.Info("user_exists", slog.String("name", entry.User.Name))
		return owner, nil
	}

	imp.stats.UsersCreated++
	imp.logger.Info("user_created", slog.String("name", entry.User.Name))

	// New providers get their registration paperwork synthesized. Failures
	// here are logged but never sink the entry; the duplicate-heavy source
	// data makes unique violations routine.
	if role == user.RoleProvider {
		imp.createBusinessApplication(ctx, owner, entry)
		imp.createSubscription(ctx, owner)
	}
	return owner, nil
}

func (imp *Importer) createBusinessApplication(ctx context.Context, owner *user.User, entry *Entry) {
	_, created, err := FirstOrCreate(ctx,
		[]Clause[provider.Application]{
			Lookup(func(ctx context.Context) (*provider.Application, error) {
				return imp.stores.Providers.GetApplicationByApplicantAndName(ctx, owner.ID, entry.Shop.Name)
			}),
		},
		func(ctx context.Context) (*provider.Application, error) {
			email := entry.User.Email
			if email == "" {
				email = syntheticEmail(entry.User.Name)
			}

			now := time.Now()
			application := &provider.Application{
				ID:              uuidv7.Must(),
				ApplicantID:     owner.ID,
				BusinessName:    entry.Shop.Name,
				BusinessEmail:   email,
				BusinessPhone:   fallback(entry.Shop.Phone, entry.User.Phone, constants.DefaultBusinessPhone),
				Description:     fallback(entry.Service.DescriptionAR, entry.Service.DescriptionEN, constants.DefaultBusinessDescription),
				BusinessAddress: fallback(entry.Shop.AddressAR, entry.Shop.AddressEN, constants.DefaultBusinessAddress),
				BusinessCity:    ExtractCity(entry),
				BusinessType:    user.RoleProvider,
				Status:          provider.StatusApproved,
				ApprovedAt:      &now,
				ReviewedBy:      constants.ImportReviewerIdentity,
				StatusNotes:     "Auto-approved during data import",
			}
			if err := imp.stores.Providers.CreateApplication(ctx, application); err != nil {
				return nil, err
			}
			return application, nil
		},
	)
	if err != nil {
		// Duplicate emails are expected across entries of the same business.
		if apperr.IsConflict(err) {
			return
		}
		imp.errors.Record(fmt.Sprintf("Error creating business application for %s", entry.User.Name), err)
		imp.stats.Errors++
		return
	}
	if created {
		imp.stats.ApplicationsCreated++
		imp.logger.Info("business_application_created", slog.String("applicant", entry.User.Name))
	}
}

func (imp *Importer) createSubscription(ctx context.Context, owner *user.User) {
	_, created, err := FirstOrCreate(ctx,
		[]Clause[provider.Subscription]{
			Lookup(func(ctx context.Context) (*provider.Subscription, error) {
				return imp.stores.Providers.GetSubscriptionByProvider(ctx, owner.ID)
			}),
		},
		func(ctx context.Context) (*provider.Subscription, error) {
			subscription := &provider.Subscription{
				ID:         uuidv7.Must(),
				ProviderID: owner.ID,
				PlanType:   provider.PlanBasicFree,
				IsActive:   true,
			}
			if err := imp.stores.Providers.CreateSubscription(ctx, subscription); err != nil {
				return nil, err
			}
			return subscription, nil
		},
	)
	if err != nil {
		if apperr.IsConflict(err) {
			return
		}
		imp.errors.Record(fmt.Sprintf("Error creating subscription for %s", owner.ID), err)
		imp.stats.Errors++
		return
	}
	if created {
		imp.stats.SubscriptionsCreated++
		imp.logger.Info("subscription_created", slog.String("provider_id", owner.ID))
	}
}

// # Shop

func (imp *Importer) resolveShop(ctx context.Context, entry *Entry, owner *user.User) (*shop.Shop, error) {
	entryShop, created, err := FirstOrCreate(ctx,
		[]Clause[shop.Shop]{
			Lookup(func(ctx context.Context) (*shop.Shop, error) {
				return imp.stores.Shops.GetByNameAndOwner(ctx, entry.Shop.Name, owner.ID)
			}),
		},
		func(ctx context.Context) (*shop.Shop, error) {
			address := &shop.Translation{
				ID:     uuidv7.Must(),
				TextEN: fallback(entry.Shop.AddressEN, constants.DefaultShopAddressEN),
				TextAR: fallback(entry.Shop.AddressAR, constants.DefaultShopAddressAR),
			}
			if err := imp.stores.Shops.CreateTranslation(ctx, address); err != nil {
				return nil, err
			}

			designID, err := imp.shopDesign(ctx, entry)
			if err != nil {
				return nil, err
			}

			shopID := uuidv7.Must()
			shopSlug, err := imp.shopSlug(ctx, entry.Shop.Name, shopID)
			if err != nil {
				return nil, err
			}

			description := fallback(entry.Service.DescriptionAR, entry.Service.DescriptionEN)

			entryShop := &shop.Shop{
				ID:          shopID,
				Name:        entry.Shop.Name,
				Slug:        shopSlug,
				Phone:       scrubPhone(entry.Shop.Phone),
				Email:       pointer.ToNonZero(entry.Shop.Email),
				City:        ExtractCity(entry),
				Description: pointer.ToNonZero(description),
				AddressID:   address.ID,
				OwnerID:     owner.ID,
				DesignID:    designID,
			}
			if err := imp.stores.Shops.Create(ctx, entryShop); err != nil {
				return nil, err
			}
			return entryShop, nil
		},
	)
	if err != nil {
		return nil, err
	}

	if created {
		imp.stats.ShopsCreated++
		imp.logger.Info("shop_created", slog.String("name", entry.Shop.Name))
	} else {
		imp.stats.ShopsSkipped++
		imp.logger.Info("shop_exists", slog.String("name", entry.Shop.Name))
	}
	return entryShop, nil
}

// shopDesign picks a design for a new shop: the design of the service's
// category when it resolves, otherwise the first design in the store.
func (imp *Importer) shopDesign(ctx context.Context, entry *Entry) (*string, error) {
	if entry.Service.CategoryID != "" {
		category, err := Lookup(func(ctx context.Context) (*taxonomy.Category, error) {
			return imp.stores.Taxonomy.GetCategoryByID(ctx, entry.Service.CategoryID)
		})(ctx)
		if err != nil {
			return nil, err
		}
		if category != nil {
			return &category.DesignID, nil
		}
	}

	design, err := Lookup(func(ctx context.Context) (*taxonomy.Design, error) {
		return imp.stores.Taxonomy.GetFirstDesign(ctx)
	})(ctx)
	if err != nil {
		return nil, err
	}
	if design == nil {
		return nil, nil
	}
	return &design.ID, nil
}

// shopSlug derives a unique URL slug. Arabic-only names transliterate to
// nothing useful, so those fall back to an id-derived slug; collisions
// probe -2, -3, ... until free.
func (imp *Importer) shopSlug(ctx context.Context, name, shopID string) (string, error) {
	base := slug.From(name)
	if len(base) < 2 {
		suffix := shopID
		if len(suffix) > 12 {
			suffix = suffix[len(suffix)-12:]
		}
		base = "shop-" + suffix
	}

	candidate := base
	for attempt := 2; ; attempt++ {
		taken, err := imp.stores.Shops.SlugTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
}

// # Tags

// resolveTags finds or creates every tag named on the shop and service,
// returning distinct ids in first-seen order.
func (imp *Importer) resolveTags(ctx context.Context, entry *Entry) ([]string, error) {
	names := append(append([]string{}, entry.Shop.Tags...), entry.Service.Tags...)

	tagIDs := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		entryTag, _, err := FirstOrCreate(ctx,
			[]Clause[tag.Tag]{
				Lookup(func(ctx context.Context) (*tag.Tag, error) {
					return imp.stores.Tags.GetByName(ctx, name)
				}),
			},
			func(ctx context.Context) (*tag.Tag, error) {
				entryTag := &tag.Tag{ID: uuidv7.Must(), Name: name}
				if err := imp.stores.Tags.Create(ctx, entryTag); err != nil {
					return nil, err
				}
				return entryTag, nil
			},
		)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", name, err)
		}
		tagIDs = append(tagIDs, entryTag.ID)
	}

	// Shop and service tag lists overlap heavily in the source data.
	tagIDs = slice.Unique(tagIDs)

	if len(tagIDs) > 0 {
		imp.logger.Info("tags_processed", slog.Int("count", len(tagIDs)))
	}
	return tagIDs, nil
}

// # Service

func (imp *Importer) resolveService(ctx context.Context, entry *Entry, owner *user.User, entryShop *shop.Shop, tagIDs []string) (*service.Service, error) {
	// Resolve by the same text the create stores, so entries without a
	// source embedding converge on the synthesized one across runs.
	text := embeddingText(entry)

	entryService, created, err := FirstOrCreate(ctx,
		[]Clause[service.Service]{
			Lookup(func(ctx context.Context) (*service.Service, error) {
				return imp.stores.Services.GetByShopAndEmbedding(ctx, entryShop.ID, text)
			}),
		},
		func(ctx context.Context) (*service.Service, error) {
			translation := &service.Translation{
				ID:            uuidv7.Must(),
				NameEN:        fallback(entry.Service.NameEN, entry.User.Name),
				NameAR:        fallback(entry.Service.NameAR, entry.User.Name),
				DescriptionEN: fallback(entry.Service.DescriptionEN, constants.DefaultServiceDescriptionEN),
				DescriptionAR: fallback(entry.Service.DescriptionAR, entry.Service.DescriptionEN, constants.DefaultServiceDescriptionAR),
			}
			if err := imp.stores.Services.CreateTranslation(ctx, translation); err != nil {
				return nil, err
			}

			category, subCategoryID, err := imp.serviceTaxonomy(ctx, entry)
			if err != nil {
				return nil, err
			}

			designID, err := imp.serviceDesign(ctx, category)
			if err != nil {
				return nil, err
			}

			var categoryID *string
			if category != nil {
				categoryID = &category.ID
			}

			entryService := &service.Service{
				ID:            uuidv7.Must(),
				EmbeddingText: text,
				Phone:         scrubPhone(entry.Shop.Phone),
				City:          ExtractCity(entry),
				Price:         entry.Service.Price,
				ShopID:        entryShop.ID,
				OwnerUserID:   owner.ID,
				TranslationID: translation.ID,
				CategoryID:    categoryID,
				SubCategoryID: subCategoryID,
				DesignID:      designID,
				TagIDs:        tagIDs,
			}
			if err := imp.stores.Services.Create(ctx, entryService); err != nil {
				return nil, err
			}
			return entryService, nil
		},
	)
	if err != nil {
		return nil, err
	}

	if created {
		imp.stats.ServicesCreated++
		imp.logger.Info("service_created", slog.String("name", fallback(entry.Service.NameEN, entry.Service.NameAR)))
	} else {
		imp.stats.ServicesSkipped++
		imp.logger.Info("service_exists")
	}
	return entryService, nil
}

// serviceTaxonomy resolves the entry's category and subcategory references,
// falling back to the first category (and its first subcategory) when the
// referenced ids are unknown.
func (imp *Importer) serviceTaxonomy(ctx context.Context, entry *Entry) (*taxonomy.Category, *string, error) {
	var category *taxonomy.Category
	var subCategoryID *string

	if entry.Service.CategoryID != "" {
		found, err := Lookup(func(ctx context.Context) (*taxonomy.Category, error) {
			return imp.stores.Taxonomy.GetCategoryByID(ctx, entry.Service.CategoryID)
		})(ctx)
		if err != nil {
			return nil, nil, err
		}

		if found != nil {
			category = found

			if entry.Service.SubCategoryID != "" {
				subCategory, err := Lookup(func(ctx context.Context) (*taxonomy.SubCategory, error) {
					return imp.stores.Taxonomy.GetSubCategoryByID(ctx, entry.Service.SubCategoryID)
				})(ctx)
				if err != nil {
					return nil, nil, err
				}
				if subCategory != nil {
					subCategoryID = &subCategory.ID
				}
			}
		}
	}

	if category == nil {
		first, err := Lookup(func(ctx context.Context) (*taxonomy.Category, error) {
			return imp.stores.Taxonomy.GetFirstCategory(ctx)
		})(ctx)
		if err != nil {
			return nil, nil, err
		}
		if first != nil {
			category = first

			subCategories, err := imp.stores.Taxonomy.ListSubCategories(ctx, first.ID)
			if err != nil {
				return nil, nil, err
			}
			if len(subCategories) > 0 {
				subCategoryID = &subCategories[0].ID
			}
		}
	}
	return category, subCategoryID, nil
}

func (imp *Importer) serviceDesign(ctx context.Context, category *taxonomy.Category) (*string, error) {
	if category != nil && category.DesignID != "" {
		return &category.DesignID, nil
	}

	design, err := Lookup(func(ctx context.Context) (*taxonomy.Design, error) {
		return imp.stores.Taxonomy.GetFirstDesign(ctx)
	})(ctx)
	if err != nil {
		return nil, err
	}
	if design == nil {
		return nil, nil
	}
	return &design.ID, nil
}

// embeddingText returns the entry's search text, composed from name,
// description and tags when the extraction did not provide one.
func embeddingText(entry *Entry) string {
	if entry.Service.EmbeddingText != "" {
		return entry.Service.EmbeddingText
	}

	name := fallback(entry.Service.NameEN, entry.Service.NameAR, entry.User.Name)
	description := fallback(entry.Service.DescriptionEN, entry.Service.DescriptionAR)
	return name + " " + description + " " + strings.Join(entry.Service.Tags, " ")
}

// # Reviews

func (imp *Importer) importReviews(ctx context.Context, entry *Entry, entryShop *shop.Shop, entryService *service.Service) error {
	created := 0

	for _, input := range entry.Reviews {
		if input.Comment == "" || !input.Rating.Present() {
			continue
		}

		existing, err := Lookup(func(ctx context.Context) (*review.Review, error) {
			return imp.stores.Reviews.GetByCommentAndService(ctx, input.Comment, entryService.ID)
		})(ctx)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		reviewer, err := imp.resolveReviewer(ctx, input.Author)
		if err != nil {
			return err
		}

		entryReview := &review.Review{
			ID:         uuidv7.Must(),
			AuthorID:   reviewer.ID,
			Rating:     input.Rating.Value(),
			Comment:    input.Comment,
			ServiceID:  entryService.ID,
			ShopID:     entryShop.ID,
			IsVerified: true,
		}
		if err := imp.stores.Reviews.Create(ctx, entryReview); err != nil {
			return err
		}

		created++
		imp.stats.ReviewsCreated++
	}

	if created > 0 {
		imp.logger.Info("reviews_created", slog.Int("count", created))
	}
	return nil
}

// resolveReviewer finds or creates the review's author, defaulting to the
// shared anonymous reviewer identity.
func (imp *Importer) resolveReviewer(ctx context.Context, author string) (*user.User, error) {
	name := fallback(author, constants.DefaultReviewerName)

	reviewer, _, err := FirstOrCreate(ctx,
		[]Clause[user.User]{
			Lookup(func(ctx context.Context) (*user.User, error) {
				return imp.stores.Users.GetByName(ctx, name)
			}),
		},
		func(ctx context.Context) (*user.User, error) {
			reviewer := &user.User{
				ID:   uuidv7.Must(),
				Name: name,
				Role: user.RoleCustomer,
			}
			if err := imp.stores.Users.Create(ctx, reviewer); err != nil {
				return nil, err
			}
			return reviewer, nil
		},
	)
	return reviewer, err
}

// # Field Helpers

// scrubPhone treats the scraper's "N/A" sentinel and empty strings as
// missing values.
func scrubPhone(phone string) *string {
	if phone == "" || phone == constants.SourceFieldMissing {
		return nil
	}
	return &phone
}

// fallback returns the first non-empty value.
func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// syntheticEmail derives a contact address from a provider name.
func syntheticEmail(name string) string {
	compact := strings.Join(strings.Fields(name), "")
	return strings.ToLower(compact) + constants.SyntheticEmailDomain
}
