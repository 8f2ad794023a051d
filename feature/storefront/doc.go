// Package storefront talks to the storefront platform's product-variant API.
//
// It exposes the Source interface ("fetch next page of variants given a
// cursor") so the rest of the application never touches the transport, a
// GraphQL-over-HTTP Client implementing it, and the FetchAll pagination
// driver that drains a listing into memory.
//
// Pagination is sequential by construction: each page's cursor depends on
// the previous page's response.
package storefront
