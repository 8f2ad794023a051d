package catalog_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	storagemocks "catalog-sync/core/storage/mocks"
	"catalog-sync/feature/books"
	bookmocks "catalog-sync/feature/books/mocks"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/storefront"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testApp(source storefront.Source, store books.Store, client *storagemocks.Client) *fiber.App {
	svc := catalog.NewService(source, store, client, "catalog-sync", zap.NewNop())
	h := catalog.NewHandler(svc)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

func TestHandleGetValidation(t *testing.T) {
	source := &fakeSource{variants: []storefront.Variant{rawVariant("1", "SKU-1")}}
	app := testApp(source, &bookmocks.Store{}, &storagemocks.Client{})

	req := httptest.NewRequest("GET", "/catalog/validation", nil)
	resp, err := app.Test(req, 2000) // 2s timeout
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report struct {
		OK bool `json:"ok"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.OK)
}

func TestHandlePostSync(t *testing.T) {
	source := &fakeSource{variants: []storefront.Variant{rawVariant("1", "SKU-1")}}

	store := &bookmocks.Store{}
	expectCreatePath(store)
	store.On("CreateItem", mock.Anything, mock.Anything).Return(&books.Item{ID: "100"}, nil)

	app := testApp(source, store, &storagemocks.Client{})

	req := httptest.NewRequest("POST", "/catalog/sync", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary catalog.SyncSummary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 1, summary.Created)
	assert.False(t, summary.DryRun)
}

func TestHandlePostSync_DryRunQuery(t *testing.T) {
	source := &fakeSource{variants: []storefront.Variant{rawVariant("1", "SKU-1")}}

	store := &bookmocks.Store{}
	expectCreatePath(store)

	app := testApp(source, store, &storagemocks.Client{})

	req := httptest.NewRequest("POST", "/catalog/sync?dry_run=true", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary catalog.SyncSummary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.True(t, summary.DryRun)
	store.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestHandlePostSync_ValidationFailure(t *testing.T) {
	broken := rawVariant("1", "SKU-1")
	broken.Price = ""
	source := &fakeSource{variants: []storefront.Variant{broken}}

	app := testApp(source, &bookmocks.Store{}, &storagemocks.Client{})

	req := httptest.NewRequest("POST", "/catalog/sync", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var summary catalog.SyncSummary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.False(t, summary.ValidationOK)
	assert.NotNil(t, summary.Report)
}

func TestHandleGetRuns(t *testing.T) {
	client := &storagemocks.Client{}
	client.On("BucketExists", mock.Anything, "catalog-sync").Return(true, nil)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "runs/run-a/"}
	close(ch)
	var stream <-chan minio.ObjectInfo = ch
	client.On("ListObjects", mock.Anything, "catalog-sync", mock.Anything).Return(stream)

	app := testApp(&fakeSource{}, &bookmocks.Store{}, client)

	req := httptest.NewRequest("GET", "/catalog/runs", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Runs []string `json:"runs"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"run-a"}, body.Runs)
}

func TestHandleGetValidation_FetchFailure(t *testing.T) {
	source := &fakeSource{err: assert.AnError}
	app := testApp(source, &bookmocks.Store{}, &storagemocks.Client{})

	req := httptest.NewRequest("GET", "/catalog/validation", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
