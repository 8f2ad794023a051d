package storefront

import "context"

// FetchAll drains the variant listing by following cursors until the source
// reports no further page. Items are accumulated in page order with no
// deduplication and no page cap; a failing page call aborts the whole
// collection.
func FetchAll(ctx context.Context, src Source) ([]Variant, error) {
	var all []Variant
	var cursor *string

	for {
		page, err := src.FetchVariantPage(ctx, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Items...)

		if page.NextCursor == nil {
			return all, nil
		}
		cursor = page.NextCursor
	}
}
