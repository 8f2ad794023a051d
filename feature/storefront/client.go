package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// variantQuery pages through product variants, newest cursor first.
const variantQuery = `
query Variants($pageSize: Int!, $cursor: String) {
  productVariants(first: $pageSize, after: $cursor) {
    pageInfo {
      hasNextPage
      endCursor
    }
    edges {
      node {
        id
        title
        sku
        barcode
        price
        taxable
        selectedOptions {
          name
          value
        }
        inventoryItem {
          unitCost {
            amount
          }
        }
        product {
          id
          title
          vendor
          productType
        }
      }
    }
  }
}`

// Source provides pages of product variants.
// Implementations cross the network; the pagination driver and the sync
// pipeline depend only on this interface.
type Source interface {
	// FetchVariantPage returns one page of variants. A nil cursor requests
	// the first page; the returned page carries the cursor for the next.
	FetchVariantPage(ctx context.Context, cursor *string) (*Page, error)
}

// Client is a GraphQL client for the storefront admin API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a storefront client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Strict transport timeouts so a dead endpoint cannot hang a run
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		baseURL: fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.Domain, cfg.ApiVersion),
	}
}

// graphqlRequest is the wire format of a GraphQL POST body.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlError is a single error entry from a GraphQL response.
type graphqlError struct {
	Message string `json:"message"`
}

// variantResponse matches the shape of the variant listing response.
type variantResponse struct {
	Data struct {
		ProductVariants struct {
			PageInfo struct {
				HasNextPage bool    `json:"hasNextPage"`
				EndCursor   *string `json:"endCursor"`
			} `json:"pageInfo"`
			Edges []struct {
				Node Variant `json:"node"`
			} `json:"edges"`
		} `json:"productVariants"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// FetchVariantPage implements Source.
func (c *Client) FetchVariantPage(ctx context.Context, cursor *string) (*Page, error) {
	variables := map[string]any{
		"pageSize": c.cfg.PageSize,
	}
	if cursor != nil {
		variables["cursor"] = *cursor
	}

	body, err := json.Marshal(graphqlRequest{Query: variantQuery, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode variant query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build variant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("variant page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("variant page request returned %d: %s", resp.StatusCode, string(payload))
	}

	var decoded variantResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode variant page: %w", err)
	}

	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("variant query rejected: %s", decoded.Errors[0].Message)
	}

	listing := decoded.Data.ProductVariants
	page := &Page{Items: make([]Variant, 0, len(listing.Edges))}
	for _, edge := range listing.Edges {
		page.Items = append(page.Items, edge.Node)
	}
	if listing.PageInfo.HasNextPage {
		page.NextCursor = listing.PageInfo.EndCursor
	}

	return page, nil
}
