package gormstore_test

import (
	"context"
	"testing"

	"catalog-sync/core/database"
	"catalog-sync/feature/books"
	"catalog-sync/feature/books/gormstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newStore(t *testing.T) *gormstore.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	store, err := gormstore.New(db)
	assert.NoError(t, err)
	return store
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCategories(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	found, err := store.FindCategoryByName(ctx, "Food")
	assert.NoError(t, err)
	assert.Nil(t, found)

	created, err := store.CreateCategory(ctx, "Food")
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Food", created.Name)

	found, err = store.FindCategoryByName(ctx, "Food")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestItems_CreateFindUpdate(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	item := &books.Item{
		Name:         "Acme Salsa Hot",
		Sku:          "SKU-1",
		Description:  "Acme Salsa Hot, barcode: 111",
		PurchaseDesc: "Acme Salsa Hot, barcode: 111",
		UnitPrice:    decPtr("12.50"),
		PurchaseCost: decPtr("4.00"),
		Taxable:      true,
		Active:       true,
	}

	created, err := store.CreateItem(ctx, item)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byName, err := store.FindItemByName(ctx, "Acme Salsa Hot")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.True(t, byName.UnitPrice.Equal(decimal.RequireFromString("12.50")))

	bySku, err := store.FindItemBySku(ctx, "SKU-1")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, bySku.ID)

	missing, err := store.FindItemBySku(ctx, "SKU-404")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	// Deactivating rename: zero values must be written through
	created.Name = "_SKU-1"
	created.Active = false
	updated, err := store.UpdateItem(ctx, created)
	assert.NoError(t, err)
	assert.False(t, updated.Active)

	gone, err := store.FindItemByName(ctx, "Acme Salsa Hot")
	assert.NoError(t, err)
	assert.Nil(t, gone)

	renamed, err := store.FindItemByName(ctx, "_SKU-1")
	assert.NoError(t, err)
	assert.False(t, renamed.Active)
	assert.Equal(t, "SKU-1", renamed.Sku)
}

func TestUpdateItem_RequiresID(t *testing.T) {
	store := newStore(t)

	_, err := store.UpdateItem(context.Background(), &books.Item{Name: "x"})
	assert.Error(t, err)
}

func TestEnsureDefaultAccounts(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	assert.NoError(t, store.EnsureDefaultAccounts(ctx))
	// Idempotent
	assert.NoError(t, store.EnsureDefaultAccounts(ctx))

	for _, name := range []string{books.IncomeAccountName, books.ExpenseAccountName, books.AssetAccountName} {
		account, err := store.FindAccountByName(ctx, name)
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.True(t, account.Ref().Resolved())
	}
}

func TestCheckSchema(t *testing.T) {
	store := newStore(t)

	missing, err := store.CheckSchema()
	assert.NoError(t, err)
	assert.Empty(t, missing)
}
