package catalog

import "strings"

// EncodeCategoryName turns a category name into its URL path segment by
// replacing spaces with underscores. Names that already contain
// underscores will not round-trip through DecodeCategorySlug.
func EncodeCategoryName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// DecodeCategorySlug is the inverse of EncodeCategoryName for names
// without underscores.
func DecodeCategorySlug(slug string) string {
	return strings.ReplaceAll(slug, "_", " ")
}
