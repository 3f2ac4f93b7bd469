// Copyright (c) Microsoft. All rights reserved.

package ecommerce

// brandGuidelines maps product categories to brand guideline text.
var brandGuidelines = map[string]string{
	"Computer Accessories": `
Brand Tone: Professional, tech-savvy, performance-focused
Forbidden Claims: unbreakable, fastest in the world, medical grade
Required Disclaimers: Performance may vary by system
Compliance: No health claims, Must specify wireless frequency
`,
	"Kitchen & Dining": `
Brand Tone: Warm, eco-conscious, lifestyle-oriented
Forbidden Claims: 100% eco-friendly, zero waste, miracle product
Required Disclaimers: Hand wash recommended for longevity
Compliance: Must mention care instructions, Material sourcing transparency
`,
}

// defaultGuidelines applies to categories without dedicated guidelines.
const defaultGuidelines = "Brand Tone: Friendly and informative"

// BrandGuidelines returns brand guideline text for a product category.
func BrandGuidelines(category string) string {
	if g, ok := brandGuidelines[category]; ok {
		return g
	}
	return defaultGuidelines
}
