package naming

import (
	"fmt"
	"strings"

	"catalog-sync/feature/catalog/models"
)

// DefaultTitle is the sentinel option value the storefront assigns to
// variants of products with no real options. It never contributes to names.
const DefaultTitle = "Default Title"

// GenerateName derives the canonical display name: vendor and title, then
// each option value that is non-empty and not the default-title sentinel,
// preserving option order. No truncation or sanitization happens here;
// validation catches oversize or malformed results later.
func GenerateName(vendor, title string, options []models.SelectedOption) string {
	parts := []string{vendor, title}
	for _, option := range options {
		if option.Value == "" || option.Value == DefaultTitle {
			continue
		}
		parts = append(parts, option.Value)
	}
	return strings.Join(parts, " ")
}

// GenerateDescription derives the item description from a generated name
// and the variant barcode.
func GenerateDescription(name, barcode string) string {
	return fmt.Sprintf("%s, barcode: %s", name, barcode)
}
