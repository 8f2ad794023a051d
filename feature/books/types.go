package books

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixed ledger account names resolved when creating a new inventory item.
const (
	IncomeAccountName  = "Sales of Product Income"
	ExpenseAccountName = "Cost of Goods Sold"
	AssetAccountName   = "Inventory Asset"
)

// Ref is a reference to another accounting entity. A zero Value marks an
// unresolved reference; callers treat that as a soft warning, not an error.
type Ref struct {
	// Value is the referenced entity's identifier.
	Value string `json:"value"`
	// Name is the referenced entity's display name.
	Name string `json:"name"`
}

// Resolved reports whether the reference points at a real entity.
func (r Ref) Resolved() bool {
	return r.Value != ""
}

// Category is an item category in the accounting store.
type Category struct {
	// ID is the category identifier.
	ID string `json:"id"`
	// Name is the category display name.
	Name string `json:"name"`
}

// Ref returns a reference to the category.
func (c *Category) Ref() Ref {
	return Ref{Value: c.ID, Name: c.Name}
}

// Account is a ledger account (income, expense, or asset role).
type Account struct {
	// ID is the account identifier.
	ID string `json:"id"`
	// Name is the account display name.
	Name string `json:"name"`
}

// Ref returns a reference to the account.
func (a *Account) Ref() Ref {
	return Ref{Value: a.ID, Name: a.Name}
}

// Item is an inventory item owned by the accounting store. The
// reconciliation engine only reads items and proposes mutations.
type Item struct {
	// ID is the item identifier, empty on items not yet created.
	ID string `json:"id"`

	// Name is the item display name. The store caps it at 100 characters;
	// names starting with "_" are reserved for inactivated items.
	Name string `json:"name"`

	// Sku is the stock keeping unit.
	Sku string `json:"sku"`

	// Description is the sales description.
	Description string `json:"description"`

	// PurchaseDesc is the purchasing description.
	PurchaseDesc string `json:"purchase_desc"`

	// UnitPrice is the selling price, nil when unset.
	UnitPrice *decimal.Decimal `json:"unit_price"`

	// PurchaseCost is the per-unit cost, nil when unset.
	PurchaseCost *decimal.Decimal `json:"purchase_cost"`

	// Taxable indicates whether sales of this item are taxed.
	Taxable bool `json:"taxable"`

	// Active indicates whether the item is usable. Items are never deleted,
	// only deactivated.
	Active bool `json:"active"`

	// SubItem indicates the item sits under a parent category.
	SubItem bool `json:"sub_item"`

	// ParentRef references the parent category when SubItem is set.
	ParentRef Ref `json:"parent_ref"`

	// TrackQtyOnHand enables quantity tracking.
	TrackQtyOnHand bool `json:"track_qty_on_hand"`

	// QtyOnHand is the tracked quantity.
	QtyOnHand decimal.Decimal `json:"qty_on_hand"`

	// InvStartDate is the inventory start date (date only, no time
	// component). Zero when quantity tracking is off.
	InvStartDate time.Time `json:"inv_start_date"`

	// IncomeAccountRef, ExpenseAccountRef and AssetAccountRef are the fixed
	// ledger account references attached on creation.
	IncomeAccountRef  Ref `json:"income_account_ref"`
	ExpenseAccountRef Ref `json:"expense_account_ref"`
	AssetAccountRef   Ref `json:"asset_account_ref"`
}
