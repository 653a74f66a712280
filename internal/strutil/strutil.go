// Package strutil provides the naming helpers used when turning a model name
// and its field names into generated file paths, class names and labels.
package strutil

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// -----------------------------------------------------------------------------
// Case Conversion
// -----------------------------------------------------------------------------

// ToSnakeCase converts a string to snake_case.
// Examples: userName -> user_name, UserName -> user_name, HTTPServer -> http_server
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var result strings.Builder
	result.Grow(len(s) + 4)

	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			// Split before an upper-case rune that follows a lower-case one,
			// or that starts a new word after an acronym ("HTTPServer").
			if i > 0 {
				prev := runes[i-1]
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					result.WriteByte('_')
				} else if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					result.WriteByte('_')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == ' ':
			result.WriteByte('_')
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// -----------------------------------------------------------------------------
// Model Naming
// -----------------------------------------------------------------------------

// Plural returns the lower-cased plural of a model name. It names the views
// directory and the route resource.
// Examples: Product -> products, Category -> categories, ProductLine -> productlines
func Plural(name string) string {
	if name == "" {
		return ""
	}
	return inflection.Plural(strings.ToLower(name))
}

// TableName returns the conventional table for a model: the snake_case name
// with its last word pluralised.
// Examples: Product -> products, ProductCategory -> product_categories
func TableName(name string) string {
	if name == "" {
		return ""
	}
	return inflection.Plural(ToSnakeCase(name))
}

// Headline turns a field name into a label: underscores become spaces and
// each word starts with an upper-case letter. The rest of each word is kept.
// Examples: category_id -> Category Id, user_email -> User Email
func Headline(field string) string {
	runes := []rune(strings.ReplaceAll(field, "_", " "))
	upperNext := true
	for i, r := range runes {
		if unicode.IsSpace(r) {
			upperNext = true
			continue
		}
		if upperNext {
			runes[i] = unicode.ToUpper(r)
			upperNext = false
		}
	}
	return string(runes)
}

// IsIdentifier reports whether s is a valid class-style identifier: a letter
// followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return unicode.IsLetter([]rune(s)[0])
}
