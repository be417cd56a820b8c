package portal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upgradeats/upgradeats/internal/domain"
	"github.com/upgradeats/upgradeats/internal/gateway"
	"github.com/upgradeats/upgradeats/internal/whatsapp"
)

type fakeGW struct {
	gateway.Gateway
	products []domain.Product
	inserted []domain.Order
}

func (f *fakeGW) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, gateway.ErrNotFound
}

func (f *fakeGW) Insert(ctx context.Context, table string, row interface{}) error {
	if o, ok := row.(*domain.Order); ok {
		o.ID = int64(len(f.inserted) + 1)
		f.inserted = append(f.inserted, *o)
	}
	return nil
}

type testValidator struct{ v *validator.Validate }

func (t *testValidator) Validate(i interface{}) error {
	if err := t.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func newCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCheckoutForcesPendingAndBuildsHandoff(t *testing.T) {
	fgw := &fakeGW{products: []domain.Product{
		{ID: 5, Name: "Salad Wrap", Price: "Rp 15.000", Category: "Segar Alami"},
	}}
	gw = fgw
	handoff = whatsapp.NewHandoff("6285832841485")

	c, rec := newCtx(t, http.MethodPost, "/api/checkout",
		`{"product_id":5,"customer_name":"Budi","qty":2,"status":"Selesai"}`)

	require.NoError(t, checkout(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp checkoutResponse
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, domain.OrderPending, resp.Order.Status, "checkout always persists Pending")
	assert.Equal(t, "Rp 30.000", resp.Order.TotalPrice)
	assert.Equal(t, "Salad Wrap", resp.Order.ProductName)
	assert.Contains(t, resp.WhatsappLink, "wa.me/6285832841485")

	require.Len(t, fgw.inserted, 1)
	assert.Equal(t, domain.OrderPending, fgw.inserted[0].Status)
}

func TestCheckoutUnknownProduct(t *testing.T) {
	gw = &fakeGW{}
	handoff = whatsapp.NewHandoff("6285832841485")

	c, _ := newCtx(t, http.MethodPost, "/api/checkout",
		`{"product_id":99,"customer_name":"Budi","qty":1}`)

	err := checkout(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestCheckoutRejectsZeroQty(t *testing.T) {
	gw = &fakeGW{products: []domain.Product{{ID: 5, Name: "Salad Wrap", Price: "Rp 15.000"}}}
	handoff = whatsapp.NewHandoff("6285832841485")

	c, _ := newCtx(t, http.MethodPost, "/api/checkout",
		`{"product_id":5,"customer_name":"Budi","qty":0}`)

	err := checkout(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestGetProductNotFound(t *testing.T) {
	gw = &fakeGW{}

	c, _ := newCtx(t, http.MethodGet, "/api/products/123", "")
	c.SetParamNames("id")
	c.SetParamValues("123")

	err := getProduct(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
