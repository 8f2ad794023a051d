package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(Config{Domain: "example.myshopify.com", AccessToken: "token", PageSize: 2})
	c.baseURL = srv.URL
	c.httpClient = srv.Client()
	return c
}

func TestFetchVariantPage(t *testing.T) {
	var gotToken string
	var gotVars map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Access-Token")

		var req graphqlRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotVars = req.Variables

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"productVariants": map[string]any{
					"pageInfo": map[string]any{"hasNextPage": true, "endCursor": "cursor-1"},
					"edges": []map[string]any{
						{"node": map[string]any{
							"id":      "gid://shopify/ProductVariant/1",
							"title":   "Hot",
							"sku":     "SKU-1",
							"barcode": "111",
							"price":   "12.50",
							"taxable": true,
							"selectedOptions": []map[string]any{
								{"name": "Heat", "value": "Hot"},
							},
							"inventoryItem": map[string]any{
								"unitCost": map[string]any{"amount": "4.00"},
							},
							"product": map[string]any{
								"id":          "gid://shopify/Product/9",
								"title":       "Salsa",
								"vendor":      "Acme",
								"productType": "Food",
							},
						}},
					},
				},
			},
		})
	})

	page, err := c.FetchVariantPage(context.Background(), nil)
	assert.NoError(t, err)

	assert.Equal(t, "token", gotToken)
	assert.Equal(t, float64(2), gotVars["pageSize"])
	assert.NotContains(t, gotVars, "cursor")

	assert.Len(t, page.Items, 1)
	v := page.Items[0]
	assert.Equal(t, "SKU-1", v.Sku)
	assert.Equal(t, "Acme", v.Product.Vendor)
	assert.Equal(t, "4.00", v.InventoryItem.UnitCost.Amount)
	assert.NotNil(t, page.NextCursor)
	assert.Equal(t, "cursor-1", *page.NextCursor)
}

func TestFetchVariantPage_CursorForwarded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cursor-1", req.Variables["cursor"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"productVariants": map[string]any{
					"pageInfo": map[string]any{"hasNextPage": false, "endCursor": nil},
					"edges":    []map[string]any{},
				},
			},
		})
	})

	cursor := "cursor-1"
	page, err := c.FetchVariantPage(context.Background(), &cursor)
	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.NextCursor)
}

func TestFetchVariantPage_GraphQLError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "Throttled"}},
		})
	})

	_, err := c.FetchVariantPage(context.Background(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Throttled")
}

func TestFetchVariantPage_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, err := c.FetchVariantPage(context.Background(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
