package handlers_test

import (
	"net/http"
	"testing"

	"restaurant-orders-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(id string) models.Order {
	return models.Order{
		ID:           id,
		DeliverTo:    "12 Grimmauld Place",
		MobileNumber: "(555) 123-4567",
		Status:       models.StatusPending,
		Dishes:       []models.OrderDish{{DishID: "1", Quantity: 1}},
	}
}

func TestCreateOrder(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/orders", envelope(t, validOrderPayload()))
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	data(t, w, &order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	require.Len(t, order.Dishes, 1)
	assert.Equal(t, 2, order.Dishes[0].Quantity)

	w = api.do(t, http.MethodGet, "/orders", "")
	var listed []models.Order
	data(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, order.ID, listed[0].ID)
}

func TestCreateOrderMissingField(t *testing.T) {
	for _, field := range []string{"deliverTo", "mobileNumber", "dishes"} {
		t.Run(field, func(t *testing.T) {
			api := newTestAPI(t)
			payload := validOrderPayload()
			delete(payload, field)

			w := api.do(t, http.MethodPost, "/orders", envelope(t, payload))
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Order must include a "+field, message(t, w))
			assert.Equal(t, 0, api.orders.Len())
		})
	}
}

func TestCreateOrderWithoutStatus(t *testing.T) {
	api := newTestAPI(t)
	payload := validOrderPayload()
	delete(payload, "status")

	// The create chain does not require a status.
	w := api.do(t, http.MethodPost, "/orders", envelope(t, payload))
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateOrderEmptyDishes(t *testing.T) {
	api := newTestAPI(t)
	payload := validOrderPayload()
	payload["dishes"] = []map[string]any{}

	w := api.do(t, http.MethodPost, "/orders", envelope(t, payload))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order must include at least one dish", message(t, w))
}

func TestCreateOrderBadQuantity(t *testing.T) {
	cases := []struct {
		name   string
		dishes []map[string]any
		index  string
	}{
		{"zero", []map[string]any{{"dishId": "1", "quantity": 0}}, "0"},
		{"missing", []map[string]any{{"dishId": "1"}}, "0"},
		{"negative", []map[string]any{{"dishId": "1", "quantity": -2}}, "0"},
		{"fractional", []map[string]any{{"dishId": "1", "quantity": 1.5}}, "0"},
		// Integral and positive, but too large to store as an int.
		{"huge", []map[string]any{{"dishId": "1", "quantity": 1e300}}, "0"},
		{
			"second item",
			[]map[string]any{
				{"dishId": "1", "quantity": 1},
				{"dishId": "2", "quantity": 0},
			},
			"1",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestAPI(t)
			payload := validOrderPayload()
			payload["dishes"] = tc.dishes

			w := api.do(t, http.MethodPost, "/orders", envelope(t, payload))
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Dish "+tc.index+" must have a quantity that is an integer greater than 0", message(t, w))
			assert.Equal(t, 0, api.orders.Len())
		})
	}
}

func TestReadOrder(t *testing.T) {
	api := newTestAPI(t)
	api.orders.Insert(pendingOrder("5"))

	w := api.do(t, http.MethodGet, "/orders/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	data(t, w, &order)
	assert.Equal(t, "12 Grimmauld Place", order.DeliverTo)
}

func TestReadOrderNotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/orders/777", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order id not found: 777", message(t, w))
}

func TestUpdateOrder(t *testing.T) {
	api := newTestAPI(t)
	api.orders.Insert(pendingOrder("5"))

	payload := validOrderPayload()
	payload["status"] = "preparing"
	w := api.do(t, http.MethodPut, "/orders/5", envelope(t, payload))
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	data(t, w, &order)
	assert.Equal(t, "5", order.ID, "id must not change")
	assert.Equal(t, models.StatusPreparing, order.Status)
	assert.Equal(t, "42 Wallaby Way", order.DeliverTo)

	stored, ok := api.orders.Find("5")
	require.True(t, ok)
	assert.Equal(t, order, stored)
}

func TestUpdateOrderIDMismatch(t *testing.T) {
	api := newTestAPI(t)
	original := pendingOrder("5")
	api.orders.Insert(original)

	payload := validOrderPayload()
	payload["id"] = "9"
	w := api.do(t, http.MethodPut, "/orders/5", envelope(t, payload))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order id does not match route id. Order: 9, Route: 5", message(t, w))

	stored, _ := api.orders.Find("5")
	assert.Equal(t, original, stored)
}

func TestUpdateOrderSubmittedDelivered(t *testing.T) {
	api := newTestAPI(t)
	original := pendingOrder("5")
	api.orders.Insert(original)

	// The guard fires on the submitted status, regardless of the
	// stored record's current status.
	payload := validOrderPayload()
	payload["status"] = "delivered"
	w := api.do(t, http.MethodPut, "/orders/5", envelope(t, payload))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A delivered order cannot be changed", message(t, w))

	stored, _ := api.orders.Find("5")
	assert.Equal(t, original, stored, "record must be unchanged")
}

func TestUpdateOrderInvalidStatus(t *testing.T) {
	api := newTestAPI(t)
	api.orders.Insert(pendingOrder("5"))

	payload := validOrderPayload()
	payload["status"] = "invalid"
	w := api.do(t, http.MethodPut, "/orders/5", envelope(t, payload))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order must have a status of pending, preparing, out-for-delivery, delivered", message(t, w))
}

func TestUpdateOrderMissingStatus(t *testing.T) {
	api := newTestAPI(t)
	api.orders.Insert(pendingOrder("5"))

	payload := validOrderPayload()
	delete(payload, "status")
	w := api.do(t, http.MethodPut, "/orders/5", envelope(t, payload))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order must include a status", message(t, w))
}

func TestUpdateOrderNotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPut, "/orders/404", envelope(t, validOrderPayload()))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order id not found: 404", message(t, w))
}

func TestDeleteOrderPending(t *testing.T) {
	api := newTestAPI(t)
	api.orders.Insert(pendingOrder("5"))

	w := api.do(t, http.MethodDelete, "/orders/5", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	_, ok := api.orders.Find("5")
	assert.False(t, ok, "record must be gone")

	w = api.do(t, http.MethodDelete, "/orders/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrderNotPending(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	} {
		t.Run(string(status), func(t *testing.T) {
			api := newTestAPI(t)
			order := pendingOrder("5")
			order.Status = status
			api.orders.Insert(order)

			w := api.do(t, http.MethodDelete, "/orders/5", "")
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "An order cannot be deleted unless it is pending", message(t, w))
			assert.Equal(t, 1, api.orders.Len())
		})
	}
}

func TestDeleteOrderNotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodDelete, "/orders/123", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order id not found: 123", message(t, w))
}
