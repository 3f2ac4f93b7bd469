// Copyright (c) Microsoft. All rights reserved.

package ecommerce

import (
	"context"

	"github.com/microsoft/commerce-agents/agentic"
)

// ProductIDArgs selects a storefront product.
type ProductIDArgs struct {
	ProductID string `json:"product_id" jsonschema:"description=Product ID such as '101',required"`
}

// CatalogArgs selects a content-pipeline catalog entry.
type CatalogArgs struct {
	ProductID string `json:"product_id" jsonschema:"description=The product ID (e.g. PROD001 or PROD002),required"`
}

// CategoryArgs selects a product category.
type CategoryArgs struct {
	Category string `json:"category" jsonschema:"description=The product category (e.g. 'Computer Accessories' or 'Kitchen & Dining'),required"`
}

// SEOKeywordArgs carries content plus the keywords to check.
type SEOKeywordArgs struct {
	Content  string   `json:"content" jsonschema:"description=The content text to analyze,required"`
	Keywords []string `json:"keywords" jsonschema:"description=List of keywords to check for,required"`
}

// PlatformArgs carries content plus its platform content type.
type PlatformArgs struct {
	ContentType string `json:"content_type" jsonschema:"description=Type of content (e.g. 'product_title' or 'short_description' or 'meta_description'),required"`
	Content     string `json:"content" jsonschema:"description=The content text to validate,required"`
}

// ComplianceArgs carries content plus the forbidden terms to detect.
type ComplianceArgs struct {
	Content        string   `json:"content" jsonschema:"description=The content text to check,required"`
	ForbiddenTerms []string `json:"forbidden_terms" jsonschema:"description=List of forbidden terms/claims to detect,required"`
}

// ReadabilityArgs carries the content to analyze.
type ReadabilityArgs struct {
	Content string `json:"content" jsonschema:"description=The content text to analyze,required"`
}

// ConsistencyArgs pairs a brief with the content written from it.
type ConsistencyArgs struct {
	Brief   string `json:"brief" jsonschema:"description=The original content brief,required"`
	Content string `json:"content" jsonschema:"description=The marketing content to verify,required"`
}

// ProductInfoTool exposes store product lookup as a model tool.
func ProductInfoTool(store *Store) agentic.Tool {
	return agentic.NewTypedTool("get_product_info", "Get product information.",
		func(ctx context.Context, args ProductIDArgs) (any, error) {
			return store.ProductInfo(args.ProductID), nil
		})
}

// DiscountTool exposes store discount lookup as a model tool.
func DiscountTool(store *Store) agentic.Tool {
	return agentic.NewTypedTool("get_discount", "Get active discount percentage for a product.",
		func(ctx context.Context, args ProductIDArgs) (any, error) {
			return store.Discount(args.ProductID), nil
		})
}

// CampaignTools returns the storefront tools used by the campaign writer.
func CampaignTools(store *Store) []agentic.Tool {
	return []agentic.Tool{
		ProductInfoTool(store),
		DiscountTool(store),
	}
}

// ContentTools returns the research and validation tools used by the
// content pipeline.
func ContentTools(catalog Catalog) []agentic.Tool {
	return []agentic.Tool{
		agentic.NewTypedTool("get_product_catalog", "Retrieve product data from internal catalog.",
			func(ctx context.Context, args CatalogArgs) (any, error) {
				return catalog.Lookup(args.ProductID), nil
			}),
		agentic.NewTypedTool("get_brand_guidelines", "Get brand guidelines for product category.",
			func(ctx context.Context, args CategoryArgs) (any, error) {
				return BrandGuidelines(args.Category), nil
			}),
		agentic.NewTypedTool("validate_seo_keywords", "Analyze keyword placement in content.",
			func(ctx context.Context, args SEOKeywordArgs) (any, error) {
				return ValidateSEOKeywords(args.Content, args.Keywords), nil
			}),
		agentic.NewTypedTool("check_platform_constraints", "Validate content against platform rules.",
			func(ctx context.Context, args PlatformArgs) (any, error) {
				return CheckPlatformConstraints(args.ContentType, args.Content), nil
			}),
		agentic.NewTypedTool("check_brand_compliance", "Check content for forbidden claims.",
			func(ctx context.Context, args ComplianceArgs) (any, error) {
				return CheckBrandCompliance(args.Content, args.ForbiddenTerms), nil
			}),
		agentic.NewTypedTool("analyze_readability", "Analyze content readability metrics.",
			func(ctx context.Context, args ReadabilityArgs) (any, error) {
				return AnalyzeReadability(args.Content), nil
			}),
		agentic.NewTypedTool("verify_fact_consistency", "Verify claims in content match the brief.",
			func(ctx context.Context, args ConsistencyArgs) (any, error) {
				return VerifyFactConsistency(args.Brief, args.Content), nil
			}),
	}
}
