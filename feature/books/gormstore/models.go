package gormstore

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the item category row.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex"`
}

// TableName overrides the GORM default.
func (Category) TableName() string { return "item_categories" }

// Account is the ledger account row.
type Account struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex"`
}

// TableName overrides the GORM default.
func (Account) TableName() string { return "ledger_accounts" }

// Item is the inventory item row. The name column is capped at 100
// characters; validation code 105 mirrors this ceiling upstream.
type Item struct {
	ID             uint             `gorm:"primaryKey"`
	Name           string           `gorm:"size:100;uniqueIndex"`
	Sku            string           `gorm:"size:100;index"`
	Description    string           `gorm:"size:4000"`
	PurchaseDesc   string           `gorm:"size:4000"`
	UnitPrice      *decimal.Decimal `gorm:"type:decimal(20,8)"`
	PurchaseCost   *decimal.Decimal `gorm:"type:decimal(20,8)"`
	Taxable        bool
	Active         bool `gorm:"index"`
	SubItem        bool
	ParentValue    string `gorm:"size:36"`
	ParentName     string `gorm:"size:100"`
	TrackQtyOnHand bool
	QtyOnHand      decimal.Decimal `gorm:"type:decimal(20,8)"`
	InvStartDate   *time.Time
	IncomeValue    string `gorm:"size:36"`
	IncomeName     string `gorm:"size:100"`
	ExpenseValue   string `gorm:"size:36"`
	ExpenseName    string `gorm:"size:100"`
	AssetValue     string `gorm:"size:36"`
	AssetName      string `gorm:"size:100"`
}

// TableName overrides the GORM default.
func (Item) TableName() string { return "inventory_items" }

// RequiredItemColumns lists the columns the reconciliation engine writes.
// The schema check verifies they exist before a run mutates anything.
var RequiredItemColumns = []string{
	"name", "sku", "description", "purchase_desc",
	"unit_price", "purchase_cost", "taxable", "active",
	"sub_item", "parent_value", "parent_name",
	"track_qty_on_hand", "qty_on_hand", "inv_start_date",
	"income_value", "expense_value", "asset_value",
}
