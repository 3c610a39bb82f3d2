package models

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       OrderStatus `json:"status,omitempty"`
	Dishes       []OrderDish `json:"dishes"`
}

// OrderDish is a single line item: which dish and how many.
type OrderDish struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}
