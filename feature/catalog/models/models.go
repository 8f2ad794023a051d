package models

import "github.com/shopspring/decimal"

// SelectedOption is a variant option value, in selection order.
type SelectedOption struct {
	// Name is the option name (e.g., "Size").
	Name string `json:"name"`
	// Value is the selected value (e.g., "Large").
	Value string `json:"value"`
}

// ProductVariant is a parsed storefront variant, flattened into the shape
// the validator and the normalizer consume. Price and CostAmount stay raw
// strings so "missing" remains distinguishable from "0".
// Immutable once created.
type ProductVariant struct {
	// ID is the variant identifier.
	ID string `json:"id"`
	// ProductID is the owning product's identifier.
	ProductID string `json:"product_id"`
	// Title is the owning product's title.
	Title string `json:"title"`
	// Vendor is the product vendor.
	Vendor string `json:"vendor"`
	// Category is the product type, used as the accounting item category.
	Category string `json:"category"`
	// Sku is the stock keeping unit.
	Sku string `json:"sku"`
	// Barcode is the scannable barcode.
	Barcode string `json:"barcode"`
	// Price is the raw selling price string.
	Price string `json:"price"`
	// CostAmount is the raw unit cost amount string.
	CostAmount string `json:"cost_amount"`
	// SelectedOptions are the option values selected for this variant.
	SelectedOptions []SelectedOption `json:"selected_options"`
	// Taxable indicates whether the variant is charged tax.
	Taxable bool `json:"taxable"`
}

// NormalizedProduct is the unit of work handed to the reconciliation
// engine. It carries no handle back to the originating variant beyond what
// is embedded.
type NormalizedProduct struct {
	// Name is the derived display name (vendor + title + options).
	Name string `json:"name"`
	// Category is the item category, empty for uncategorized products.
	Category string `json:"category"`
	// Sku is the stock keeping unit.
	Sku string `json:"sku"`
	// Description is the derived description.
	Description string `json:"description"`
	// UnitPrice is the selling price, nil when absent.
	UnitPrice *decimal.Decimal `json:"unit_price"`
	// PurchaseCost is the per-unit cost, nil when absent.
	PurchaseCost *decimal.Decimal `json:"purchase_cost"`
	// Taxable indicates whether the product is charged tax.
	Taxable bool `json:"taxable"`
}
