package handlers

import (
	"errors"
	"io"
	"math"
	"net/http"

	"restaurant-orders-api/errs"
	"restaurant-orders-api/idgen"
	"restaurant-orders-api/models"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
)

// DishHandler serves the /dishes resource. Every route is an ordered
// chain of stages; a failing stage aborts the rest.
type DishHandler struct {
	store *store.Collection[models.Dish]
	ids   *idgen.Generator
}

func NewDishHandler(s *store.Collection[models.Dish], ids *idgen.Generator) *DishHandler {
	return &DishHandler{store: s, ids: ids}
}

// dishData is the submitted dish inside the {"data": ...} envelope.
// Price is a pointer so the stages can tell absent from zero: both fail
// the presence stage, but only a present price reaches the validity
// stage with a value to inspect.
type dishData struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"image_url"`
}

type dishEnvelope struct {
	Data dishData `json:"data"`
}

const (
	dishPayloadKey = "dishPayload"
	dishRecordKey  = "dish"
)

// BindPayload decodes the request body once and stores the submitted
// dish for the later stages. An empty body is not an error here: the
// presence stages report which field is missing.
func (h *DishHandler) BindPayload(c *gin.Context) {
	var env dishEnvelope
	if err := c.ShouldBindJSON(&env); err != nil && !errors.Is(err, io.EOF) {
		abort(c, errs.BadRequest("invalid request body: %v", err))
		return
	}
	c.Set(dishPayloadKey, env.Data)
}

func dishPayload(c *gin.Context) dishData {
	d, _ := c.Get(dishPayloadKey)
	data, _ := d.(dishData)
	return data
}

// has reports whether the named field carries a usable value. A zero
// price counts as missing, matching the presence contract.
func (d dishData) has(field string) bool {
	switch field {
	case "name":
		return d.Name != ""
	case "description":
		return d.Description != ""
	case "price":
		return d.Price != nil && *d.Price != 0
	case "image_url":
		return d.ImageURL != ""
	}
	return false
}

// RequireField is the presence stage, parameterized by field name.
func (h *DishHandler) RequireField(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !dishPayload(c).has(field) {
			abort(c, errs.BadRequest("Dish must include a %s", field))
		}
	}
}

// NameValid checks that the submitted name is a non-empty string.
func (h *DishHandler) NameValid(c *gin.Context) {
	if dishPayload(c).Name == "" {
		abort(c, errs.BadRequest("Dish must include a name"))
	}
}

// DescriptionValid checks that the submitted description is non-empty.
func (h *DishHandler) DescriptionValid(c *gin.Context) {
	if dishPayload(c).Description == "" {
		abort(c, errs.BadRequest("Dish must include a description"))
	}
}

// maxAmount caps prices and quantities. JSON numbers arrive as
// float64, so anything larger would overflow the stored int.
const maxAmount = math.MaxInt32

// PriceValid checks that the submitted price is an integer above zero.
func (h *DishHandler) PriceValid(c *gin.Context) {
	p := dishPayload(c).Price
	if p == nil || *p <= 0 || *p > maxAmount || *p != math.Trunc(*p) {
		abort(c, errs.BadRequest("Dish must have a price that is an integer greater than 0"))
	}
}

// ImageURLValid checks that the submitted image_url is non-empty.
func (h *DishHandler) ImageURLValid(c *gin.Context) {
	if dishPayload(c).ImageURL == "" {
		abort(c, errs.BadRequest("Dish must include a image_url"))
	}
}

// DishExists is the existence stage: it looks up the :dishId route
// parameter and attaches the found dish for the terminal stage.
func (h *DishHandler) DishExists(c *gin.Context) {
	id := c.Param("dishId")
	dish, ok := h.store.Find(id)
	if !ok {
		abort(c, errs.NotFound("Dish id not found: %s", id))
		return
	}
	c.Set(dishRecordKey, dish)
}

func foundDish(c *gin.Context) models.Dish {
	d, _ := c.Get(dishRecordKey)
	dish, _ := d.(models.Dish)
	return dish
}

// List returns every dish in insertion order.
func (h *DishHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.store.List())
}

// Create appends a new dish with a fresh id.
func (h *DishHandler) Create(c *gin.Context) {
	d := dishPayload(c)
	dish := models.Dish{
		ID:          h.ids.Next(),
		Name:        d.Name,
		Description: d.Description,
		Price:       int(*d.Price),
		ImageURL:    d.ImageURL,
	}
	h.store.Insert(dish)
	respond(c, http.StatusCreated, dish)
}

// Read returns the dish attached by the existence stage.
func (h *DishHandler) Read(c *gin.Context) {
	respond(c, http.StatusOK, foundDish(c))
}

// Update overwrites the dish's fields in place. The id is immutable: a
// payload id that disagrees with the route is rejected.
func (h *DishHandler) Update(c *gin.Context) {
	d := dishPayload(c)
	routeID := c.Param("dishId")
	if d.ID != "" && d.ID != routeID {
		abort(c, errs.BadRequest("Dish id does not match route id. Dish: %s, Route: %s", d.ID, routeID))
		return
	}

	dish := foundDish(c)
	dish.Name = d.Name
	dish.Description = d.Description
	dish.Price = int(*d.Price)
	dish.ImageURL = d.ImageURL
	h.store.Update(routeID, dish)
	respond(c, http.StatusOK, dish)
}
