package books

import "context"

// Store is the capability surface the reconciliation engine needs over the
// accounting platform. Find methods return (nil, nil) when nothing matches;
// any other failure propagates unmodified to the caller.
type Store interface {
	// FindCategoryByName looks up a category by exact name.
	FindCategoryByName(ctx context.Context, name string) (*Category, error)

	// CreateCategory creates a category with the given name.
	CreateCategory(ctx context.Context, name string) (*Category, error)

	// FindItemByName looks up an inventory item by exact name.
	FindItemByName(ctx context.Context, name string) (*Item, error)

	// FindItemBySku looks up an inventory item by SKU.
	FindItemBySku(ctx context.Context, sku string) (*Item, error)

	// CreateItem creates a new inventory item and returns it with its
	// assigned identity.
	CreateItem(ctx context.Context, item *Item) (*Item, error)

	// UpdateItem writes the item's fields over the stored record with the
	// same ID.
	UpdateItem(ctx context.Context, item *Item) (*Item, error)

	// FindAccountByName looks up a ledger account by exact name.
	FindAccountByName(ctx context.Context, name string) (*Account, error)
}

// FindOrCreate resolves an entity by name, creating it when absent. The
// category resolution in the engine and cache priming both go through this
// helper so the find/create ordering stays in one place.
func FindOrCreate[T any](
	ctx context.Context,
	name string,
	find func(context.Context, string) (*T, error),
	create func(context.Context, string) (*T, error),
) (*T, error) {
	existing, err := find(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return create(ctx, name)
}
