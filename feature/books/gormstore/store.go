package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"catalog-sync/core/database"
	"catalog-sync/feature/books"

	"gorm.io/gorm"
)

// Store implements books.Store against the company database.
type Store struct {
	db *gorm.DB
}

// New creates a store and migrates its tables.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Category{}, &Account{}, &Item{}); err != nil {
		return nil, fmt.Errorf("failed to migrate books schema: %w", err)
	}
	return &Store{db: db}, nil
}

// FindCategoryByName implements books.Store.
func (s *Store) FindCategoryByName(ctx context.Context, name string) (*books.Category, error) {
	var row Category
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return categoryToDomain(&row), nil
}

// CreateCategory implements books.Store.
func (s *Store) CreateCategory(ctx context.Context, name string) (*books.Category, error) {
	row := Category{Name: name}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return categoryToDomain(&row), nil
}

// FindItemByName implements books.Store.
func (s *Store) FindItemByName(ctx context.Context, name string) (*books.Item, error) {
	var row Item
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return itemToDomain(&row), nil
}

// FindItemBySku implements books.Store.
func (s *Store) FindItemBySku(ctx context.Context, sku string) (*books.Item, error) {
	var row Item
	err := s.db.WithContext(ctx).Where("sku = ?", sku).Order("id").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return itemToDomain(&row), nil
}

// CreateItem implements books.Store.
func (s *Store) CreateItem(ctx context.Context, item *books.Item) (*books.Item, error) {
	row, err := itemFromDomain(item)
	if err != nil {
		return nil, err
	}
	row.ID = 0
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return itemToDomain(row), nil
}

// UpdateItem implements books.Store. All fields are written, including
// zero values, so deactivation and cleared references stick.
func (s *Store) UpdateItem(ctx context.Context, item *books.Item) (*books.Item, error) {
	if item.ID == "" {
		return nil, fmt.Errorf("update requires an item id")
	}
	row, err := itemFromDomain(item)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return itemToDomain(row), nil
}

// FindAccountByName implements books.Store.
func (s *Store) FindAccountByName(ctx context.Context, name string) (*books.Account, error) {
	var row Account
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return accountToDomain(&row), nil
}

// EnsureDefaultAccounts creates the three fixed ledger accounts when absent.
// Fresh local databases need them before the first sync can create items.
func (s *Store) EnsureDefaultAccounts(ctx context.Context) error {
	for _, name := range []string{books.IncomeAccountName, books.ExpenseAccountName, books.AssetAccountName} {
		_, err := books.FindOrCreate(ctx, name, s.FindAccountByName,
			func(ctx context.Context, name string) (*books.Account, error) {
				row := Account{Name: name}
				if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
					return nil, err
				}
				return accountToDomain(&row), nil
			})
		if err != nil {
			return fmt.Errorf("failed to ensure account %q: %w", name, err)
		}
	}
	return nil
}

// CheckSchema verifies the item table carries every column the engine
// writes and returns the missing ones.
func (s *Store) CheckSchema() ([]string, error) {
	return database.HasColumns(s.db, Item{}.TableName(), RequiredItemColumns)
}

func categoryToDomain(row *Category) *books.Category {
	return &books.Category{
		ID:   strconv.FormatUint(uint64(row.ID), 10),
		Name: row.Name,
	}
}

func accountToDomain(row *Account) *books.Account {
	return &books.Account{
		ID:   strconv.FormatUint(uint64(row.ID), 10),
		Name: row.Name,
	}
}

func itemToDomain(row *Item) *books.Item {
	item := &books.Item{
		ID:             strconv.FormatUint(uint64(row.ID), 10),
		Name:           row.Name,
		Sku:            row.Sku,
		Description:    row.Description,
		PurchaseDesc:   row.PurchaseDesc,
		UnitPrice:      row.UnitPrice,
		PurchaseCost:   row.PurchaseCost,
		Taxable:        row.Taxable,
		Active:         row.Active,
		SubItem:        row.SubItem,
		ParentRef:      books.Ref{Value: row.ParentValue, Name: row.ParentName},
		TrackQtyOnHand: row.TrackQtyOnHand,
		QtyOnHand:      row.QtyOnHand,

		IncomeAccountRef:  books.Ref{Value: row.IncomeValue, Name: row.IncomeName},
		ExpenseAccountRef: books.Ref{Value: row.ExpenseValue, Name: row.ExpenseName},
		AssetAccountRef:   books.Ref{Value: row.AssetValue, Name: row.AssetName},
	}
	if row.InvStartDate != nil {
		item.InvStartDate = *row.InvStartDate
	}
	return item
}

func itemFromDomain(item *books.Item) (*Item, error) {
	row := &Item{
		Name:           item.Name,
		Sku:            item.Sku,
		Description:    item.Description,
		PurchaseDesc:   item.PurchaseDesc,
		UnitPrice:      item.UnitPrice,
		PurchaseCost:   item.PurchaseCost,
		Taxable:        item.Taxable,
		Active:         item.Active,
		SubItem:        item.SubItem,
		ParentValue:    item.ParentRef.Value,
		ParentName:     item.ParentRef.Name,
		TrackQtyOnHand: item.TrackQtyOnHand,
		QtyOnHand:      item.QtyOnHand,
		IncomeValue:    item.IncomeAccountRef.Value,
		IncomeName:     item.IncomeAccountRef.Name,
		ExpenseValue:   item.ExpenseAccountRef.Value,
		ExpenseName:    item.ExpenseAccountRef.Name,
		AssetValue:     item.AssetAccountRef.Value,
		AssetName:      item.AssetAccountRef.Name,
	}
	if item.ID != "" {
		id, err := strconv.ParseUint(item.ID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q: %w", item.ID, err)
		}
		row.ID = uint(id)
	}
	if !item.InvStartDate.IsZero() {
		date := item.InvStartDate
		row.InvStartDate = &date
	}
	return row, nil
}
