// Package report derives all dashboard metrics for a user from their
// transaction, budget, savings goal and net worth rows.
package report

import (
	"strings"
)

// CategoryFallback is the category for descriptions that match no rule.
const CategoryFallback = "Others"

// categoryRule maps a category to the keywords that select it.
type categoryRule struct {
	category string
	keywords []string
}

// The rule order is significant: keywords overlap between categories,
// and the first matching category wins.
var categoryRules = []categoryRule{
	{"Food", []string{"swiggy", "zomato", "restaurant", "food"}},
	{"Travel", []string{"uber", "ola", "bus", "train", "flight"}},
	{"Shopping", []string{"amazon", "flipkart", "mall"}},
	{"Salary", []string{"salary", "credited", "income"}},
	{"Bills", []string{"electricity", "water", "rent", "bill"}},
}

// Classify maps a transaction description to exactly one category.
//
// Matching is case-insensitive substring containment against a fixed,
// ordered keyword table. Descriptions that match no keyword are
// classified as CategoryFallback.
func Classify(description string) string {
	description = strings.ToLower(description)

	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(description, keyword) {
				return rule.category
			}
		}
	}

	return CategoryFallback
}

// Categories returns the category labels in classifier order, including
// the fallback.
func Categories() []string {
	categories := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		categories = append(categories, rule.category)
	}

	return append(categories, CategoryFallback)
}
