package handlers

import (
	"errors"
	"io"
	"math"
	"net/http"

	"restaurant-orders-api/errs"
	"restaurant-orders-api/idgen"
	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the /orders resource.
type OrderHandler struct {
	store *store.Collection[models.Order]
	ids   *idgen.Generator
}

func NewOrderHandler(s *store.Collection[models.Order], ids *idgen.Generator) *OrderHandler {
	return &OrderHandler{store: s, ids: ids}
}

// orderDishData is one submitted line item. Quantity is a pointer so a
// missing quantity is distinguishable from zero; both are invalid.
type orderDishData struct {
	DishID   string   `json:"dishId"`
	Quantity *float64 `json:"quantity"`
}

type orderData struct {
	ID           string          `json:"id"`
	DeliverTo    string          `json:"deliverTo"`
	MobileNumber string          `json:"mobileNumber"`
	Status       string          `json:"status"`
	Dishes       []orderDishData `json:"dishes"`
}

type orderEnvelope struct {
	Data orderData `json:"data"`
}

const (
	orderPayloadKey = "orderPayload"
	orderRecordKey  = "order"
)

// BindPayload decodes the request body once for the later stages.
func (h *OrderHandler) BindPayload(c *gin.Context) {
	var env orderEnvelope
	if err := c.ShouldBindJSON(&env); err != nil && !errors.Is(err, io.EOF) {
		abort(c, errs.BadRequest("invalid request body: %v", err))
		return
	}
	c.Set(orderPayloadKey, env.Data)
}

func orderPayload(c *gin.Context) orderData {
	d, _ := c.Get(orderPayloadKey)
	data, _ := d.(orderData)
	return data
}

// has reports whether the named field was submitted with a usable
// value. An empty dishes array still counts as present; the validity
// stage rejects it with its own message.
func (d orderData) has(field string) bool {
	switch field {
	case "deliverTo":
		return d.DeliverTo != ""
	case "mobileNumber":
		return d.MobileNumber != ""
	case "status":
		return d.Status != ""
	case "dishes":
		return d.Dishes != nil
	}
	return false
}

// RequireField is the presence stage, parameterized by field name.
func (h *OrderHandler) RequireField(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !orderPayload(c).has(field) {
			abort(c, errs.BadRequest("Order must include a %s", field))
		}
	}
}

// DeliverToValid checks that the delivery address is non-empty.
func (h *OrderHandler) DeliverToValid(c *gin.Context) {
	if orderPayload(c).DeliverTo == "" {
		abort(c, errs.BadRequest("Order must include a deliverTo"))
	}
}

// MobileNumberValid checks that the contact number is non-empty.
func (h *OrderHandler) MobileNumberValid(c *gin.Context) {
	if orderPayload(c).MobileNumber == "" {
		abort(c, errs.BadRequest("Order must include a mobileNumber"))
	}
}

// DishesValid checks that the order carries at least one line item and
// that every line item has an integer quantity above zero. The failure
// message names the first offending index.
func (h *OrderHandler) DishesValid(c *gin.Context) {
	dishes := orderPayload(c).Dishes
	if len(dishes) == 0 {
		abort(c, errs.BadRequest("Order must include at least one dish"))
		return
	}
	for i, dish := range dishes {
		q := dish.Quantity
		if q == nil || *q <= 0 || *q > maxAmount || *q != math.Trunc(*q) {
			abort(c, errs.BadRequest("Dish %d must have a quantity that is an integer greater than 0", i))
			return
		}
	}
}

// StatusValid checks that the submitted status is one of the four
// known values.
func (h *OrderHandler) StatusValid(c *gin.Context) {
	if !statemachine.Valid(models.OrderStatus(orderPayload(c).Status)) {
		abort(c, errs.BadRequest("Order must have a status of pending, preparing, out-for-delivery, delivered"))
	}
}

// OrderExists is the existence stage: it looks up the :orderId route
// parameter and attaches the found order for the terminal stage.
func (h *OrderHandler) OrderExists(c *gin.Context) {
	id := c.Param("orderId")
	order, ok := h.store.Find(id)
	if !ok {
		abort(c, errs.NotFound("Order id not found: %s", id))
		return
	}
	c.Set(orderRecordKey, order)
}

func foundOrder(c *gin.Context) models.Order {
	o, _ := c.Get(orderRecordKey)
	order, _ := o.(models.Order)
	return order
}

func lineItems(dishes []orderDishData) []models.OrderDish {
	items := make([]models.OrderDish, len(dishes))
	for i, d := range dishes {
		items[i] = models.OrderDish{DishID: d.DishID, Quantity: int(*d.Quantity)}
	}
	return items
}

// List returns every order in insertion order.
func (h *OrderHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.store.List())
}

// Create appends a new order with a fresh id. The status is stored as
// submitted; the create chain does not require one.
func (h *OrderHandler) Create(c *gin.Context) {
	d := orderPayload(c)
	order := models.Order{
		ID:           h.ids.Next(),
		DeliverTo:    d.DeliverTo,
		MobileNumber: d.MobileNumber,
		Status:       models.OrderStatus(d.Status),
		Dishes:       lineItems(d.Dishes),
	}
	h.store.Insert(order)
	respond(c, http.StatusCreated, order)
}

// Read returns the order attached by the existence stage.
func (h *OrderHandler) Read(c *gin.Context) {
	respond(c, http.StatusOK, foundOrder(c))
}

// Update overwrites the order's fields in place. The id is immutable,
// and an update submitting status "delivered" is rejected outright:
// the guard fires on the incoming value, not the stored one.
func (h *OrderHandler) Update(c *gin.Context) {
	d := orderPayload(c)
	routeID := c.Param("orderId")
	if d.ID != "" && d.ID != routeID {
		abort(c, errs.BadRequest("Order id does not match route id. Order: %s, Route: %s", d.ID, routeID))
		return
	}
	if models.OrderStatus(d.Status) == models.StatusDelivered {
		abort(c, errs.BadRequest("A delivered order cannot be changed"))
		return
	}

	order := foundOrder(c)
	order.DeliverTo = d.DeliverTo
	order.MobileNumber = d.MobileNumber
	order.Status = models.OrderStatus(d.Status)
	order.Dishes = lineItems(d.Dishes)
	h.store.Update(routeID, order)
	respond(c, http.StatusOK, order)
}

// Destroy removes the order if it is still pending. The status check
// and the removal happen atomically in the store, so a concurrent
// update cannot slip between them.
func (h *OrderHandler) Destroy(c *gin.Context) {
	id := c.Param("orderId")
	_, found, removed := h.store.RemoveIf(id, func(o models.Order) bool {
		return statemachine.Deletable(o.Status)
	})
	switch {
	case !found:
		abort(c, errs.NotFound("Order id not found: %s", id))
	case !removed:
		abort(c, errs.BadRequest("An order cannot be deleted unless it is pending"))
	default:
		noContent(c)
	}
}
