// Copyright (c) 2026 Daleel Balady. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, import defaults, and cross-cutting keys that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Import Defaults: synthesized values applied to incomplete source records.
  - Cache Taxonomy: Redis key prefixes and TTLs.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "daleel"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Import Defaults
//
// Synthesized values applied when a source record omits a required field.
// The dataset is bilingual; Arabic defaults mirror what the directory's
// storefront expects for the AR locale.

const (
	// DefaultUserRole is assumed when a source record carries no role.
	DefaultUserRole = "PROVIDER"

	// DefaultReviewerName is the anonymous reviewer identity (AR: "former patient").
	DefaultReviewerName = "مريض سابق"

	// DefaultReviewRating is applied when a source rating cannot be parsed.
	DefaultReviewRating = 5

	// DefaultShopAddressEN and DefaultShopAddressAR back-fill missing address text.
	DefaultShopAddressEN = "Medical Clinic"
	DefaultShopAddressAR = "عيادة طبية"

	// DefaultServiceDescriptionEN and DefaultServiceDescriptionAR back-fill
	// missing service descriptions.
	DefaultServiceDescriptionEN = "Professional medical services"
	DefaultServiceDescriptionAR = "خدمات طبية متخصصة"

	// DefaultBusinessPhone is the national short-number fallback.
	DefaultBusinessPhone = "16676"

	// DefaultBusinessDescription and DefaultBusinessAddress back-fill
	// business application fields (AR: "specialized commercial services" /
	// "commercial premises").
	DefaultBusinessDescription = "خدمات تجارية متخصصة"
	DefaultBusinessAddress     = "محل تجاري"

	// SyntheticEmailDomain completes synthesized provider contact emails.
	SyntheticEmailDomain = "@business.com"

	// ImportReviewerIdentity marks auto-approved applications in audit fields.
	ImportReviewerIdentity = "system-import"

	// SourceFieldMissing is the sentinel some scrapers emit for absent values.
	SourceFieldMissing = "N/A"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldItems   = "items"
	FieldTotal   = "total"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaCore = "core"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixCategoryList = "directory:categories:"
	RedisPrefixShopList     = "directory:shops:"
	RedisPrefixServiceList  = "directory:services:"
)

// # Cache TTLs

const (
	// BrowseCacheTTL bounds staleness of cached directory listings. Imports
	// run out-of-band, so listings may lag a fresh batch by up to this long.
	BrowseCacheTTL = 60 * time.Second
)
