package routes

import (
	"restaurant-orders-api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint. Each route lists its full
// validation chain in order: the first failing stage answers the
// request and nothing after it runs.
func SetupRoutes(r *gin.Engine, dishes *handlers.DishHandler, orders *handlers.OrderHandler) {
	r.GET("/", handlers.Welcome)
	r.GET("/health", handlers.Health)
	r.GET("/state-machine", handlers.StateMachineInfo)

	d := r.Group("/dishes")
	{
		d.GET("", dishes.List)
		d.POST("",
			dishes.BindPayload,
			dishes.RequireField("name"),
			dishes.RequireField("description"),
			dishes.RequireField("price"),
			dishes.RequireField("image_url"),
			dishes.NameValid,
			dishes.DescriptionValid,
			dishes.PriceValid,
			dishes.ImageURLValid,
			dishes.Create,
		)
		d.GET("/:dishId", dishes.DishExists, dishes.Read)
		d.PUT("/:dishId",
			dishes.DishExists,
			dishes.BindPayload,
			dishes.RequireField("name"),
			dishes.RequireField("description"),
			dishes.RequireField("price"),
			dishes.RequireField("image_url"),
			dishes.NameValid,
			dishes.DescriptionValid,
			dishes.PriceValid,
			dishes.ImageURLValid,
			dishes.Update,
		)
	}

	o := r.Group("/orders")
	{
		o.GET("", orders.List)
		o.POST("",
			orders.BindPayload,
			orders.RequireField("deliverTo"),
			orders.RequireField("mobileNumber"),
			orders.RequireField("dishes"),
			orders.DeliverToValid,
			orders.MobileNumberValid,
			orders.DishesValid,
			orders.Create,
		)
		o.GET("/:orderId", orders.OrderExists, orders.Read)
		o.PUT("/:orderId",
			orders.OrderExists,
			orders.BindPayload,
			orders.RequireField("deliverTo"),
			orders.RequireField("mobileNumber"),
			orders.RequireField("status"),
			orders.RequireField("dishes"),
			orders.DeliverToValid,
			orders.MobileNumberValid,
			orders.DishesValid,
			orders.StatusValid,
			orders.Update,
		)
		o.DELETE("/:orderId", orders.OrderExists, orders.Destroy)
	}
}
