// Copyright (c) Microsoft. All rights reserved.

package ecommerce

import (
	"fmt"
	"strings"
)

// ValidateSEOKeywords counts keyword occurrences in content. One to five
// occurrences per keyword is the healthy band.
func ValidateSEOKeywords(content string, keywords []string) string {
	contentLower := strings.ToLower(content)

	results := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		count := strings.Count(contentLower, strings.ToLower(keyword))
		status := "Needs adjustment"
		if count >= 1 && count <= 5 {
			status = "Good"
		}
		results = append(results, fmt.Sprintf("%s: %d occurrences - %s", keyword, count, status))
	}

	return strings.Join(results, "\n")
}

// lengthRule bounds the character count for one content type.
type lengthRule struct {
	min, max int
}

var platformRules = map[string]lengthRule{
	"product_title":     {min: 10, max: 200},
	"short_description": {min: 50, max: 500},
	"meta_description":  {min: 50, max: 160},
}

var defaultLengthRule = lengthRule{min: 10, max: 1000}

// CheckPlatformConstraints validates content length against the platform
// rules for the given content type. Unknown content types fall back to a
// permissive default rule.
func CheckPlatformConstraints(contentType, content string) string {
	rule, ok := platformRules[contentType]
	if !ok {
		rule = defaultLengthRule
	}

	length := len(content)
	if length >= rule.min && length <= rule.max {
		return fmt.Sprintf("Valid length (%d chars, limit: %d)", length, rule.max)
	}
	return fmt.Sprintf("Invalid length (%d chars, allowed: %d-%d)", length, rule.min, rule.max)
}

// CheckBrandCompliance scans content for forbidden claims. Matching is
// case-insensitive substring search.
func CheckBrandCompliance(content string, forbiddenTerms []string) string {
	contentLower := strings.ToLower(content)

	var violations []string
	for _, term := range forbiddenTerms {
		if strings.Contains(contentLower, strings.ToLower(term)) {
			violations = append(violations, fmt.Sprintf("Forbidden term detected: '%s'", term))
		}
	}

	if len(violations) > 0 {
		return strings.Join(violations, "\n")
	}
	return "No brand violations detected"
}

// AnalyzeReadability reports word count, reading level, and clarity for
// content. Average word length under six characters reads at 8th grade.
func AnalyzeReadability(content string) string {
	words := strings.Fields(content)
	wordCount := len(words)

	totalLen := 0
	for _, w := range words {
		totalLen += len(w)
	}
	avgWordLength := float64(totalLen) / float64(max(wordCount, 1))

	level, clarity := "College", "Could be simpler"
	if avgWordLength < 6 {
		level, clarity = "8th grade", "Good"
	}

	return fmt.Sprintf(`
Word Count: %d
Reading Level: %s
Clarity: %s
`, wordCount, level, clarity)
}

// factCheckTerms are the key claims checked for brief/content consistency.
var factCheckTerms = []string{"dpi", "battery", "bamboo", "capacity", "wireless", "sustainable"}

// VerifyFactConsistency reports key terms present in the brief but
// missing from the content.
func VerifyFactConsistency(brief, content string) string {
	briefLower := strings.ToLower(brief)
	contentLower := strings.ToLower(content)

	var missing []string
	for _, term := range factCheckTerms {
		if strings.Contains(briefLower, term) && !strings.Contains(contentLower, term) {
			missing = append(missing, fmt.Sprintf("Brief mentions '%s' but content doesn't", term))
		}
	}

	if len(missing) > 0 {
		return strings.Join(missing, "\n")
	}
	return "Content consistent with brief"
}
