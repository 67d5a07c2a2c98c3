// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelbalady/daleel/internal/core/service"
	"github.com/daleelbalady/daleel/internal/importer"
	"github.com/daleelbalady/daleel/internal/platform/memory"
	"github.com/daleelbalady/daleel/pkg/pagination"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStores(store *memory.Store) importer.Stores {
	return importer.Stores{
		Users:     store.Users(),
		Taxonomy:  store.Taxonomy(),
		Shops:     store.Shops(),
		Services:  store.Services(),
		Tags:      store.Tags(),
		Reviews:   store.Reviews(),
		Providers: store.Providers(),
	}
}

func testImporter(store *memory.Store) *importer.Importer {
	logger := testLogger()
	return importer.New(testStores(store), importer.NewConsoleErrorLog(logger), logger)
}

// testDataset decodes a dataset from its JSON form, which is also how the
// pipeline receives production data.
func testDataset(t *testing.T, raw string) *importer.Dataset {
	t.Helper()

	dataset := &importer.Dataset{}
	require.NoError(t, json.Unmarshal([]byte(raw), dataset))
	return dataset
}

const sampleDatasetJSON = `{
	"categories": [
		{
			"id": "MEDICAL",
			"name": "Medical",
			"sub_categories": [
				{"id": "DENTAL", "name": "Dental"}
			]
		}
	],
	"entries": [
		{
			"user": {"name": "دكتور أحمد حسن", "phone": "N/A"},
			"shop": {
				"name": "Ahmed Hassan Clinic",
				"phone": "0101234567",
				"city": "القاهرة",
				"address_ar": "شارع التحرير",
				"tags": ["أسنان", " تجميل "]
			},
			"service": {
				"name_en": "Dental Care",
				"name_ar": "رعاية الأسنان",
				"description_ar": "علاج الأسنان",
				"category_id": "MEDICAL",
				"sub_category_id": "DENTAL",
				"tags": ["أسنان", ""],
				"price": 250,
				"embeddingText": "dental care cairo"
			},
			"reviews": [
				{"author": "محمد", "rating": 4, "comment": "خدمة ممتازة"},
				{"author": "", "rating": "5 stars", "comment": "تجربة جيدة"},
				{"author": "سارة", "rating": 5, "comment": ""},
				{"author": "علي", "rating": 0, "comment": "حضرت مرة واحدة"}
			]
		}
	]
}`

/*
TestImporter_Run_CreatesAllEntities verifies that a fresh run materializes the
full entity graph for one entry: owner with paperwork, shop, tags, service and
the usable reviews.
*/
func TestImporter_Run_CreatesAllEntities(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	dataset := testDataset(t, sampleDatasetJSON)

	// 1. Run the full pipeline once
	stats, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)

	// 2. Counters: one review lacks a comment, one carries a falsy rating
	assert.Equal(t, 1, stats.UsersCreated)
	assert.Equal(t, 1, stats.ShopsCreated)
	assert.Equal(t, 1, stats.ServicesCreated)
	assert.Equal(t, 2, stats.ReviewsCreated)
	assert.Equal(t, 1, stats.SubscriptionsCreated)
	assert.Equal(t, 1, stats.ApplicationsCreated)
	assert.Equal(t, 0, stats.Errors)

	// 3. The owner defaults to a verified provider; "N/A" phones are scrubbed
	owner, err := store.Users().GetByName(ctx, "دكتور أحمد حسن")
	require.NoError(t, err)
	assert.Equal(t, "PROVIDER", owner.Role)
	assert.True(t, owner.IsVerified)
	assert.Nil(t, owner.Phone)

	// 4. Provider paperwork is auto-approved with a synthesized contact email
	application, err := store.Providers().GetApplicationByApplicantAndName(ctx, owner.ID, "Ahmed Hassan Clinic")
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", application.Status)
	assert.Equal(t, "system-import", application.ReviewedBy)
	assert.Equal(t, "دكتورأحمدحسن@business.com", application.BusinessEmail)

	subscription, err := store.Providers().GetSubscriptionByProvider(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "BASIC_FREE", subscription.PlanType)
	assert.True(t, subscription.IsActive)

	// 5. The shop carries the structured city and a Latin slug
	created, err := store.Shops().GetByNameAndOwner(ctx, "Ahmed Hassan Clinic", owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "القاهرة", created.City)
	assert.Equal(t, "ahmed-hassan-clinic", created.Slug)

	// 6. The service resolves its explicit taxonomy references and keeps the price
	entryService, err := store.Services().GetByShopAndEmbedding(ctx, created.ID, "dental care cairo")
	require.NoError(t, err)
	require.NotNil(t, entryService.CategoryID)
	assert.Equal(t, "MEDICAL", *entryService.CategoryID)
	require.NotNil(t, entryService.SubCategoryID)
	assert.Equal(t, "DENTAL", *entryService.SubCategoryID)
	require.NotNil(t, entryService.Price)
	assert.Equal(t, 250.0, *entryService.Price)

	// 7. Shop and service tags merge without duplicates
	assert.Len(t, entryService.TagIDs, 2)

	// 8. Reviews are verified on import; the anonymous author gets the shared identity
	reviews, err := store.Reviews().ListByService(ctx, entryService.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 4, reviews[0].Rating)
	assert.True(t, reviews[0].IsVerified)
	assert.Equal(t, 5, reviews[1].Rating)

	anonymous, err := store.Users().GetByName(ctx, "مريض سابق")
	require.NoError(t, err)
	assert.Equal(t, "CUSTOMER", anonymous.Role)
}

/*
TestImporter_Run_Idempotent verifies that re-running the same dataset against
an already seeded store converges: every entity resolves to its existing row
and nothing new is created.
*/
func TestImporter_Run_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	dataset := testDataset(t, sampleDatasetJSON)

	// 1. Seed the store with a first run
	first, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)
	require.Equal(t, 0, first.Errors)

	// 2. A second run over the same data creates nothing
	second, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)

	assert.Equal(t, 0, second.UsersCreated)
	assert.Equal(t, 1, second.UsersSkipped)
	assert.Equal(t, 0, second.ShopsCreated)
	assert.Equal(t, 1, second.ShopsSkipped)
	assert.Equal(t, 0, second.ServicesCreated)
	assert.Equal(t, 1, second.ServicesSkipped)
	assert.Equal(t, 0, second.ReviewsCreated)
	assert.Equal(t, 0, second.SubscriptionsCreated)
	assert.Equal(t, 0, second.ApplicationsCreated)
	assert.Equal(t, 0, second.Errors)
}

/*
TestImporter_Run_IdempotentWithoutEmbeddingText verifies that an entry whose
service carries no source embedding still converges on re-runs: the stored
service holds the synthesized search text and the second run resolves it
instead of creating a duplicate.
*/
func TestImporter_Run_IdempotentWithoutEmbeddingText(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	dataset := testDataset(t, `{
		"categories": [],
		"entries": [
			{
				"user": {"name": "Dr. Y"},
				"shop": {"name": "Clinic B", "tags": []},
				"service": {
					"name_en": "Cardiology",
					"description_en": "heart checkups",
					"tags": ["قلب"]
				},
				"reviews": []
			}
		]
	}`)

	// 1. Seed the store; the service text is synthesized from name,
	//    description and tags
	first, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)
	require.Equal(t, 1, first.ServicesCreated)
	require.Equal(t, 0, first.Errors)

	services, _, err := store.Services().List(ctx, pagination.Params{Page: 1, Limit: 10}, "", "")
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Cardiology heart checkups قلب", services[0].EmbeddingText)

	// 2. A second run finds the synthesized row and creates nothing
	second, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)
	assert.Equal(t, 0, second.ServicesCreated)
	assert.Equal(t, 1, second.ServicesSkipped)

	services, _, err = store.Services().List(ctx, pagination.Params{Page: 1, Limit: 10}, "", "")
	require.NoError(t, err)
	assert.Len(t, services, 1)
}

// failingServices wraps a service repository and fails the lookup for one
// search text, simulating a storage fault confined to a single entry's
// service step.
type failingServices struct {
	service.Repository
	failText string
}

func (f failingServices) GetByShopAndEmbedding(ctx context.Context, shopID, embeddingText string) (*service.Service, error) {
	if embeddingText == f.failText {
		return nil, errors.New("storage offline")
	}
	return f.Repository.GetByShopAndEmbedding(ctx, shopID, embeddingText)
}

/*
TestImporter_Run_IsolatesEntryFailures verifies that one failing entry is
counted and skipped while the rest of the batch still imports, and that the
entities created before the failing step stay in place.
*/
func TestImporter_Run_IsolatesEntryFailures(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	dataset := testDataset(t, `{
		"entries": [
			{
				"user": {"name": "عيادة أولى"},
				"shop": {"name": "Broken Clinic"},
				"service": {"name_en": "First", "embeddingText": "first"}
			},
			{
				"user": {"name": "عيادة ثانية"},
				"shop": {"name": "Working Clinic"},
				"service": {"name_en": "Second", "embeddingText": "second"}
			}
		]
	}`)

	stores := testStores(store)
	stores.Services = failingServices{Repository: stores.Services, failText: "first"}

	logger := testLogger()
	stats, err := importer.New(stores, importer.NewConsoleErrorLog(logger), logger).Run(ctx, dataset)
	require.NoError(t, err)

	// 1. The faulty entry is recorded exactly once, not fatal
	assert.Equal(t, 1, stats.Errors)

	// 2. Both owners and shops landed before the service step failed
	assert.Equal(t, 2, stats.UsersCreated)
	assert.Equal(t, 2, stats.ShopsCreated)

	firstOwner, err := store.Users().GetByName(ctx, "عيادة أولى")
	require.NoError(t, err)
	_, err = store.Shops().GetByNameAndOwner(ctx, "Broken Clinic", firstOwner.ID)
	assert.NoError(t, err)

	// 3. Only the healthy entry's service exists
	assert.Equal(t, 1, stats.ServicesCreated)
	secondOwner, err := store.Users().GetByName(ctx, "عيادة ثانية")
	require.NoError(t, err)
	workingShop, err := store.Shops().GetByNameAndOwner(ctx, "Working Clinic", secondOwner.ID)
	require.NoError(t, err)
	_, err = store.Services().GetByShopAndEmbedding(ctx, workingShop.ID, "second")
	assert.NoError(t, err)
}

/*
TestImporter_Run_SharedTagsAcrossEntries verifies that tag rows are shared:
a name already created by an earlier entry resolves to the same id instead of
a duplicate row.
*/
func TestImporter_Run_SharedTagsAcrossEntries(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	dataset := testDataset(t, `{
		"entries": [
			{
				"user": {"name": "مركز الليزر"},
				"shop": {"name": "Laser Center", "tags": ["ليزر", "تجميل"]},
				"service": {"name_en": "Laser", "tags": ["ليزر"], "embeddingText": "laser"}
			},
			{
				"user": {"name": "مركز التجميل"},
				"shop": {"name": "Beauty Center", "tags": ["تجميل"]},
				"service": {"name_en": "Beauty", "tags": ["بشرة"], "embeddingText": "beauty"}
			}
		]
	}`)

	stats, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Errors)

	// 1. Both entries' tag names overlap; each service still links distinct ids
	services, total, err := store.Services().List(ctx, pagination.Params{Page: 1, Limit: 10}, "", "")
	require.NoError(t, err)
	require.Equal(t, 2, total)
	assert.Len(t, services[0].TagIDs, 2)
	assert.Len(t, services[1].TagIDs, 2)

	// 2. The shared name resolves to one row, so the ids intersect
	shared, err := store.Tags().GetByName(ctx, "تجميل")
	require.NoError(t, err)
	assert.Contains(t, services[0].TagIDs, shared.ID)
	assert.Contains(t, services[1].TagIDs, shared.ID)
}

/*
TestImporter_Run_MinimalProviderEntry verifies a bare provider entry against
an empty store: one owner, approved paperwork, free subscription, shop,
service, one reviewer and one review — and a rerun that adds nothing.
*/
func TestImporter_Run_MinimalProviderEntry(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	raw := `{
		"entries": [
			{
				"user": {"name": "Dr. X", "role": "PROVIDER"},
				"shop": {"name": "Clinic A"},
				"service": {"embeddingText": "clinic a cardiology"},
				"reviews": [{"comment": "great", "rating": "4"}]
			}
		]
	}`

	stats, err := testImporter(store).Run(ctx, testDataset(t, raw))
	require.NoError(t, err)
	require.Equal(t, 0, stats.Errors)

	// 1. The full graph exists
	assert.Equal(t, 1, stats.UsersCreated)
	assert.Equal(t, 1, stats.ApplicationsCreated)
	assert.Equal(t, 1, stats.SubscriptionsCreated)
	assert.Equal(t, 1, stats.ShopsCreated)
	assert.Equal(t, 1, stats.ServicesCreated)
	assert.Equal(t, 1, stats.ReviewsCreated)

	owner, err := store.Users().GetByName(ctx, "Dr. X")
	require.NoError(t, err)
	clinic, err := store.Shops().GetByNameAndOwner(ctx, "Clinic A", owner.ID)
	require.NoError(t, err)
	created, err := store.Services().GetByShopAndEmbedding(ctx, clinic.ID, "clinic a cardiology")
	require.NoError(t, err)

	reviews, err := store.Reviews().ListByService(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)

	// 2. The anonymous reviewer is a second user beside the owner
	_, err = store.Users().GetByName(ctx, "مريض سابق")
	assert.NoError(t, err)

	// 3. The rerun converges
	second, err := testImporter(store).Run(ctx, testDataset(t, raw))
	require.NoError(t, err)
	assert.Equal(t, 0, second.UsersCreated)
	assert.Equal(t, 0, second.ShopsCreated)
	assert.Equal(t, 0, second.ServicesCreated)
	assert.Equal(t, 0, second.ReviewsCreated)
	assert.Equal(t, 0, second.Errors)
}

/*
TestImporter_Run_TagTrimAndCase verifies tag handling: names are trimmed,
blanks dropped, repeats linked once, and matching stays case-sensitive so
"A" and "a" are distinct tags.
*/
func TestImporter_Run_TagTrimAndCase(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	dataset := testDataset(t, `{
		"entries": [
			{
				"user": {"name": "متجر الوسوم"},
				"shop": {"name": "Tag Shop", "tags": ["A", "a ", ""]},
				"service": {"name_en": "Tagged", "tags": ["A", "B"], "embeddingText": "tagged"}
			}
		]
	}`)

	stats, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Errors)

	// 1. Exactly the distinct trimmed set {A, a, B} is linked
	services, _, err := store.Services().List(ctx, pagination.Params{Page: 1, Limit: 10}, "", "")
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Len(t, services[0].TagIDs, 3)

	// 2. Case-sensitive rows exist side by side
	upper, err := store.Tags().GetByName(ctx, "A")
	require.NoError(t, err)
	lower, err := store.Tags().GetByName(ctx, "a")
	require.NoError(t, err)
	assert.NotEqual(t, upper.ID, lower.ID)
}

/*
TestImporter_Run_DefaultTaxonomy verifies the fallback seeding: a dataset
without categories still yields a Default category with a General subcategory,
and services attach to it.
*/
func TestImporter_Run_DefaultTaxonomy(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	dataset := testDataset(t, `{
		"entries": [
			{
				"user": {"name": "عيادة بدون تصنيف"},
				"shop": {"name": "Plain Clinic"},
				"service": {"name_en": "Checkup", "embeddingText": "checkup"}
			}
		]
	}`)

	stats, err := testImporter(store).Run(ctx, dataset)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Errors)

	// 1. The minimal taxonomy exists and the design points back at its category
	category, err := store.Taxonomy().GetCategoryByName(ctx, "Default")
	require.NoError(t, err)

	design, err := store.Taxonomy().GetDesignBySlug(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, category.ID, design.CategoryID)
	assert.Equal(t, design.ID, category.DesignID)

	subCategories, err := store.Taxonomy().ListSubCategories(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, subCategories, 1)
	assert.Equal(t, "General", subCategories[0].Name)

	// 2. The service fell back to the seeded taxonomy
	services, _, err := store.Services().List(ctx, pagination.Params{Page: 1, Limit: 10}, "", "")
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.NotNil(t, services[0].CategoryID)
	assert.Equal(t, category.ID, *services[0].CategoryID)
	require.NotNil(t, services[0].SubCategoryID)
	assert.Equal(t, subCategories[0].ID, *services[0].SubCategoryID)
}
