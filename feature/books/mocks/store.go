package mocks

import (
	"context"

	"catalog-sync/feature/books"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of books.Store
type Store struct {
	mock.Mock
}

func (m *Store) FindCategoryByName(ctx context.Context, name string) (*books.Category, error) {
	args := m.Called(ctx, name)
	if category, ok := args.Get(0).(*books.Category); ok {
		return category, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) CreateCategory(ctx context.Context, name string) (*books.Category, error) {
	args := m.Called(ctx, name)
	if category, ok := args.Get(0).(*books.Category); ok {
		return category, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FindItemByName(ctx context.Context, name string) (*books.Item, error) {
	args := m.Called(ctx, name)
	if item, ok := args.Get(0).(*books.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FindItemBySku(ctx context.Context, sku string) (*books.Item, error) {
	args := m.Called(ctx, sku)
	if item, ok := args.Get(0).(*books.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) CreateItem(ctx context.Context, item *books.Item) (*books.Item, error) {
	args := m.Called(ctx, item)
	if created, ok := args.Get(0).(*books.Item); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) UpdateItem(ctx context.Context, item *books.Item) (*books.Item, error) {
	args := m.Called(ctx, item)
	if updated, ok := args.Get(0).(*books.Item); ok {
		return updated, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FindAccountByName(ctx context.Context, name string) (*books.Account, error) {
	args := m.Called(ctx, name)
	if account, ok := args.Get(0).(*books.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}
