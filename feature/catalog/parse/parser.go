package parse

import (
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/naming"
	"catalog-sync/feature/storefront"

	"github.com/shopspring/decimal"
)

// Variant flattens a raw storefront variant into the parsed shape the
// validator consumes. Product-level fields (title, vendor, type) are copied
// onto the variant record; money amounts stay raw strings.
func Variant(raw storefront.Variant) models.ProductVariant {
	variant := models.ProductVariant{
		ID:        raw.ID,
		ProductID: raw.Product.ID,
		Title:     raw.Product.Title,
		Vendor:    raw.Product.Vendor,
		Category:  raw.Product.ProductType,
		Sku:       raw.Sku,
		Barcode:   raw.Barcode,
		Price:     raw.Price,
		Taxable:   raw.Taxable,
	}
	if raw.InventoryItem.UnitCost != nil {
		variant.CostAmount = raw.InventoryItem.UnitCost.Amount
	}
	for _, option := range raw.SelectedOptions {
		variant.SelectedOptions = append(variant.SelectedOptions, models.SelectedOption{
			Name:  option.Name,
			Value: option.Value,
		})
	}
	return variant
}

// Batch flattens a whole fetched batch, preserving order.
func Batch(raw []storefront.Variant) []models.ProductVariant {
	variants := make([]models.ProductVariant, 0, len(raw))
	for _, r := range raw {
		variants = append(variants, Variant(r))
	}
	return variants
}

// Normalize maps a parsed variant into the product shape the reconciliation
// engine consumes. Name and description are derived; absent or empty money
// strings become nil, never zero.
func Normalize(variant models.ProductVariant) models.NormalizedProduct {
	name := naming.GenerateName(variant.Vendor, variant.Title, variant.SelectedOptions)

	return models.NormalizedProduct{
		Name:         name,
		Category:     variant.Category,
		Sku:          variant.Sku,
		Description:  naming.GenerateDescription(name, variant.Barcode),
		UnitPrice:    toDecimal(variant.Price),
		PurchaseCost: toDecimal(variant.CostAmount),
		Taxable:      variant.Taxable,
	}
}

// toDecimal coerces a raw money string, keeping absence distinct from zero.
// Unparseable values also map to nil; validation reports them upstream.
func toDecimal(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}
