package store

import (
	"restaurant-orders-api/idgen"
	"restaurant-orders-api/models"
)

// Seed loads a handful of starter records so a fresh process has
// something to serve. Ids come from the shared generator, so seeded and
// created records never collide.
func Seed(dishes *Collection[models.Dish], orders *Collection[models.Order], ids *idgen.Generator) {
	margherita := models.Dish{
		ID:          ids.Next(),
		Name:        "Margherita Pizza",
		Description: "Tomato, mozzarella, and fresh basil",
		Price:       12,
		ImageURL:    "https://images.example.com/margherita.jpg",
	}
	ramen := models.Dish{
		ID:          ids.Next(),
		Name:        "Shoyu Ramen",
		Description: "Soy broth with noodles, egg, and chashu pork",
		Price:       14,
		ImageURL:    "https://images.example.com/ramen.jpg",
	}
	falafel := models.Dish{
		ID:          ids.Next(),
		Name:        "Falafel Wrap",
		Description: "Crispy falafel with tahini and pickled vegetables",
		Price:       9,
		ImageURL:    "https://images.example.com/falafel.jpg",
	}
	dishes.Insert(margherita)
	dishes.Insert(ramen)
	dishes.Insert(falafel)

	orders.Insert(models.Order{
		ID:           ids.Next(),
		DeliverTo:    "1600 Pennsylvania Avenue NW",
		MobileNumber: "(202) 456-1111",
		Status:       models.StatusPending,
		Dishes: []models.OrderDish{
			{DishID: margherita.ID, Quantity: 1},
			{DishID: falafel.ID, Quantity: 2},
		},
	})
}
