package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-orders-api/handlers"
	"restaurant-orders-api/idgen"
	"restaurant-orders-api/models"
	"restaurant-orders-api/routes"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router *gin.Engine
	dishes *store.Collection[models.Dish]
	orders *store.Collection[models.Order]
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dishes := store.NewCollection(func(d models.Dish) string { return d.ID })
	orders := store.NewCollection(func(o models.Order) string { return o.ID })
	ids := idgen.New()

	r := gin.New()
	routes.SetupRoutes(r,
		handlers.NewDishHandler(dishes, ids),
		handlers.NewOrderHandler(orders, ids),
	)
	return &testAPI{router: r, dishes: dishes, orders: orders}
}

func (a *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// envelope wraps a payload fragment in the {"data": ...} request body.
func envelope(t *testing.T, data map[string]any) string {
	t.Helper()
	b, err := json.Marshal(map[string]any{"data": data})
	require.NoError(t, err)
	return string(b)
}

// message extracts the error message from a failure response.
func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

// data decodes the "data" member of a success response into out.
func data(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NoError(t, json.Unmarshal(body.Data, out))
}

func validDishPayload() map[string]any {
	return map[string]any{
		"name":        "Pad Thai",
		"description": "Rice noodles with tamarind and peanuts",
		"price":       11,
		"image_url":   "https://images.example.com/padthai.jpg",
	}
}

func validOrderPayload() map[string]any {
	return map[string]any{
		"deliverTo":    "42 Wallaby Way",
		"mobileNumber": "(555) 010-2000",
		"status":       "pending",
		"dishes": []map[string]any{
			{"dishId": "1", "quantity": 2},
		},
	}
}
