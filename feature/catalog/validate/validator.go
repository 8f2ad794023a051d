package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/naming"
)

// Error is a single validation failure on a variant.
type Error struct {
	// Code is the numeric rule identifier (100-110).
	Code int `json:"code"`
	// Message is the human-readable explanation.
	Message string `json:"message"`
}

// Result is the validation outcome for one variant, in input order.
type Result struct {
	// ID is the variant identifier.
	ID string `json:"id"`
	// ProductID is the owning product's identifier.
	ProductID string `json:"product_id"`
	// Title is the owning product's title.
	Title string `json:"title"`
	// Errors lists every rule the variant violated. Empty means passed.
	Errors []Error `json:"errors"`
}

// Passed reports whether the variant cleared every rule.
func (r Result) Passed() bool {
	return len(r.Errors) == 0
}

// Report is the batch-level validation outcome.
type Report struct {
	// OK is true iff no result carries any error.
	OK bool `json:"ok"`
	// Results holds one entry per input variant, preserving input order.
	Results []Result `json:"results"`
}

// seenTracker records the first variant id that used each name, SKU, and
// barcode. It persists across the whole batch regardless of other errors on
// earlier variants.
type seenTracker struct {
	names    map[string]string
	skus     map[string]string
	barcodes map[string]string
}

func newSeenTracker() *seenTracker {
	return &seenTracker{
		names:    make(map[string]string),
		skus:     make(map[string]string),
		barcodes: make(map[string]string),
	}
}

// Batch screens a batch of parsed variants. Every rule is evaluated
// independently per variant except where no input exists for it: name-shape
// rules need both vendor and title, and the name-duplicate rule needs a
// well-formed name.
func Batch(variants []models.ProductVariant) Report {
	seen := newSeenTracker()
	report := Report{OK: true, Results: make([]Result, 0, len(variants))}

	for _, variant := range variants {
		result := validateVariant(variant, seen)
		if !result.Passed() {
			report.OK = false
		}
		report.Results = append(report.Results, result)
	}

	return report
}

func validateVariant(variant models.ProductVariant, seen *seenTracker) Result {
	result := Result{
		ID:        variant.ID,
		ProductID: variant.ProductID,
		Title:     variant.Title,
		Errors:    []Error{},
	}
	fail := func(code int, message string) {
		result.Errors = append(result.Errors, Error{Code: code, Message: message})
	}

	if variant.Price == "" {
		fail(CodePriceRequired, "price is required")
	}
	if variant.CostAmount == "" {
		fail(CodeCostRequired, "cost is required")
	}

	if variant.Vendor == "" {
		fail(CodeVendorRequired, "vendor is required")
	}
	if variant.Title == "" {
		fail(CodeTitleRequired, "title is required")
	}

	// Name rules need a computable name; without vendor and title there is
	// nothing to check.
	if variant.Vendor != "" && variant.Title != "" {
		name := naming.GenerateName(variant.Vendor, variant.Title, variant.SelectedOptions)

		wellFormed := true
		if strings.HasPrefix(name, "_") {
			fail(CodeNameReservedPrefix, "name must not start with '_', reserved for inactivated items")
			wellFormed = false
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			fail(CodeNameTooLong, fmt.Sprintf("name exceeds %d characters", MaxNameLength))
			wellFormed = false
		}

		// A malformed name is never checked for duplication.
		if wellFormed {
			if firstID, dup := seen.names[name]; dup {
				fail(CodeNameDuplicate, fmt.Sprintf("name already used by variant %s", firstID))
			} else {
				seen.names[name] = variant.ID
			}
		}
	}

	if variant.Sku == "" {
		fail(CodeSkuRequired, "sku is required")
	} else if firstID, dup := seen.skus[variant.Sku]; dup {
		fail(CodeSkuDuplicate, fmt.Sprintf("sku already used by variant %s", firstID))
	} else {
		seen.skus[variant.Sku] = variant.ID
	}

	if variant.Barcode == "" {
		fail(CodeBarcodeRequired, "barcode is required")
	} else if firstID, dup := seen.barcodes[variant.Barcode]; dup {
		fail(CodeBarcodeDuplicate, fmt.Sprintf("barcode already used by variant %s", firstID))
	} else {
		seen.barcodes[variant.Barcode] = variant.ID
	}

	return result
}
