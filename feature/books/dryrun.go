package books

import "context"

// DryRunStore wraps a Store so a sync pass can be planned without writing.
// Reads hit the inner store; writes are counted and synthesized. Because a
// dry run never renames stale records or creates categories, later products
// in the same pass may plan against state a real run would have changed.
type DryRunStore struct {
	inner Store

	// ItemsCreated, ItemsUpdated and CategoriesCreated count the writes the
	// pass would have performed.
	ItemsCreated      int
	ItemsUpdated      int
	CategoriesCreated int
}

// NewDryRunStore wraps the store.
func NewDryRunStore(inner Store) *DryRunStore {
	return &DryRunStore{inner: inner}
}

func (s *DryRunStore) FindCategoryByName(ctx context.Context, name string) (*Category, error) {
	return s.inner.FindCategoryByName(ctx, name)
}

func (s *DryRunStore) CreateCategory(ctx context.Context, name string) (*Category, error) {
	s.CategoriesCreated++
	return &Category{Name: name}, nil
}

func (s *DryRunStore) FindItemByName(ctx context.Context, name string) (*Item, error) {
	return s.inner.FindItemByName(ctx, name)
}

func (s *DryRunStore) FindItemBySku(ctx context.Context, sku string) (*Item, error) {
	return s.inner.FindItemBySku(ctx, sku)
}

func (s *DryRunStore) CreateItem(ctx context.Context, item *Item) (*Item, error) {
	s.ItemsCreated++
	return item, nil
}

func (s *DryRunStore) UpdateItem(ctx context.Context, item *Item) (*Item, error) {
	s.ItemsUpdated++
	return item, nil
}

func (s *DryRunStore) FindAccountByName(ctx context.Context, name string) (*Account, error) {
	return s.inner.FindAccountByName(ctx, name)
}
