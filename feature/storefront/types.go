package storefront

// Variant is a product variant exactly as the storefront API returns it.
// Money amounts stay strings until the parser coerces them; absent and empty
// must remain distinguishable from zero.
type Variant struct {
	// ID is the variant identifier.
	ID string `json:"id"`
	// Title is the variant title (e.g., "Hot / Large").
	Title string `json:"title"`
	// Sku is the stock keeping unit.
	Sku string `json:"sku"`
	// Barcode is the scannable barcode (UPC/EAN/ISBN).
	Barcode string `json:"barcode"`
	// Price is the selling price as a decimal string.
	Price string `json:"price"`
	// Taxable indicates whether the variant is charged tax.
	Taxable bool `json:"taxable"`
	// SelectedOptions are the option values selected for this variant.
	SelectedOptions []SelectedOption `json:"selectedOptions"`
	// InventoryItem carries inventory-level fields such as unit cost.
	InventoryItem InventoryItem `json:"inventoryItem"`
	// Product is the owning product.
	Product Product `json:"product"`
}

// SelectedOption is a single option name/value pair on a variant.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// InventoryItem carries the inventory fields of a variant.
type InventoryItem struct {
	// UnitCost is the per-unit cost, nil when the shop never set one.
	UnitCost *Money `json:"unitCost"`
}

// Money is an amount as the API serializes it.
type Money struct {
	Amount string `json:"amount"`
}

// Product is the subset of product fields the sync needs.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Vendor      string `json:"vendor"`
	ProductType string `json:"productType"`
}

// Page is one page of variants plus the cursor to fetch the next one.
// NextCursor is nil when the listing is exhausted.
type Page struct {
	Items      []Variant
	NextCursor *string
}
