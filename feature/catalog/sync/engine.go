package sync

import (
	"context"
	"time"

	"catalog-sync/feature/books"
	"catalog-sync/feature/catalog/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Outcome classifies what a sync pass did for one product.
type Outcome string

const (
	// OutcomeCreated means a new inventory item was created.
	OutcomeCreated Outcome = "created"
	// OutcomeUpdated means an existing item was updated (or reactivated).
	OutcomeUpdated Outcome = "updated"
	// OutcomeUnchanged means the stored item already matched; no write.
	OutcomeUnchanged Outcome = "unchanged"
)

// Result describes the effect of syncing one product.
type Result struct {
	// Outcome classifies the terminal action.
	Outcome Outcome
	// Renamed is true when a stale item occupying the product's name was
	// renamed and deactivated to free it.
	Renamed bool
	// Item is the item the product now corresponds to.
	Item *books.Item
}

// Engine converges the accounting store to reflect normalized products,
// one product at a time. Products must be applied sequentially: each one
// may mutate shared state (categories, renamed items) that later products
// observe, and the name-collision guard needs a consistent view of what
// was already renamed.
//
// The engine performs no retries and catches nothing: any capability
// failure propagates unmodified, leaving the product's state wherever the
// last successful step left it.
type Engine struct {
	store  books.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates an engine over the given store.
func NewEngine(store books.Store, logger *zap.Logger) *Engine {
	return &Engine{store: store, logger: logger, now: time.Now}
}

// SyncProduct applies one product: create, update, or leave alone.
func (e *Engine) SyncProduct(ctx context.Context, product models.NormalizedProduct) (*Result, error) {
	target := books.Item{
		Name:         product.Name,
		Sku:          product.Sku,
		Description:  product.Description,
		PurchaseDesc: product.Description,
		UnitPrice:    product.UnitPrice,
		PurchaseCost: product.PurchaseCost,
		Taxable:      product.Taxable,
	}

	if product.Category != "" {
		category, err := books.FindOrCreate(ctx, product.Category,
			e.store.FindCategoryByName, e.store.CreateCategory)
		if err != nil {
			return nil, err
		}
		target.SubItem = true
		target.ParentRef = category.Ref()
	}

	result := &Result{}

	// Name-collision guard: an item already holding the target name with a
	// different SKU is a stale record. Rename it to _{its SKU} and
	// deactivate it before anything else; this write happens even if the
	// rest of the pass fails.
	existing, err := e.store.FindItemByName(ctx, target.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Sku != target.Sku {
		stale := *existing
		stale.Name = "_" + stale.Sku
		stale.Active = false
		if _, err := e.store.UpdateItem(ctx, &stale); err != nil {
			return nil, err
		}
		e.logger.Info("Renamed stale item to free name",
			zap.String("name", target.Name),
			zap.String("stale_sku", stale.Sku),
		)
		result.Renamed = true
		existing = nil
	}

	if existing == nil {
		existing, err = e.store.FindItemBySku(ctx, target.Sku)
		if err != nil {
			return nil, err
		}
	}

	// A product resolved to an existing item is never also created.
	if existing != nil {
		if !contentChanged(existing, &target) && existing.Active {
			e.logger.Debug("Item unchanged", zap.String("name", target.Name))
			result.Outcome = OutcomeUnchanged
			result.Item = existing
			return result, nil
		}

		update := *existing
		update.Name = target.Name
		update.Sku = target.Sku
		update.Description = target.Description
		update.PurchaseDesc = target.PurchaseDesc
		update.UnitPrice = target.UnitPrice
		update.PurchaseCost = target.PurchaseCost
		update.Taxable = target.Taxable
		update.SubItem = target.SubItem
		update.ParentRef = target.ParentRef
		update.Active = true

		updated, err := e.store.UpdateItem(ctx, &update)
		if err != nil {
			return nil, err
		}
		e.logger.Info("Updated item", zap.String("name", target.Name), zap.String("sku", target.Sku))
		result.Outcome = OutcomeUpdated
		result.Item = updated
		return result, nil
	}

	// Nothing matched by name or SKU: create a fresh item wired to the
	// three fixed ledger accounts, tracking quantity from today.
	income, err := e.accountRef(ctx, books.IncomeAccountName)
	if err != nil {
		return nil, err
	}
	expense, err := e.accountRef(ctx, books.ExpenseAccountName)
	if err != nil {
		return nil, err
	}
	asset, err := e.accountRef(ctx, books.AssetAccountName)
	if err != nil {
		return nil, err
	}

	create := target
	create.Active = true
	create.TrackQtyOnHand = true
	create.QtyOnHand = decimal.Zero
	create.InvStartDate = dateOnly(e.now())
	create.IncomeAccountRef = income
	create.ExpenseAccountRef = expense
	create.AssetAccountRef = asset

	created, err := e.store.CreateItem(ctx, &create)
	if err != nil {
		return nil, err
	}
	e.logger.Info("Created item", zap.String("name", target.Name), zap.String("sku", target.Sku))
	result.Outcome = OutcomeCreated
	result.Item = created
	return result, nil
}

// accountRef resolves a ledger account by name. A missing account yields an
// unresolved reference (name only); callers treat that as a soft warning.
func (e *Engine) accountRef(ctx context.Context, name string) (books.Ref, error) {
	account, err := e.store.FindAccountByName(ctx, name)
	if err != nil {
		return books.Ref{}, err
	}
	if account == nil {
		e.logger.Warn("Ledger account not found", zap.String("account", name))
		return books.Ref{Name: name}, nil
	}
	return account.Ref(), nil
}

// contentChanged compares the fields the sync owns. Parent reference,
// name, SKU, description, unit price, and purchase cost all equal means
// the stored item already reflects the product.
func contentChanged(existing, target *books.Item) bool {
	if existing.ParentRef.Value != target.ParentRef.Value {
		return true
	}
	if existing.Name != target.Name || existing.Sku != target.Sku {
		return true
	}
	if existing.Description != target.Description {
		return true
	}
	if !decimalEqual(existing.UnitPrice, target.UnitPrice) {
		return true
	}
	if !decimalEqual(existing.PurchaseCost, target.PurchaseCost) {
		return true
	}
	return false
}

func decimalEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// dateOnly truncates to the calendar date, no time component.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
