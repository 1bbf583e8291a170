package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yunus-I/Hotel-App/controllers"
	"github.com/yunus-I/Hotel-App/middlewares"
	"github.com/yunus-I/Hotel-App/services"
	"github.com/yunus-I/Hotel-App/ws"
)

type Deps struct {
	Hotel      *services.HotelService
	Menu       *services.MenuService
	Carts      *services.CartService
	Checkout   *services.CheckoutService
	ServiceReq *services.ServiceRequestService
	Hub        *ws.CartHub
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	hotelCtrl := controllers.NewHotelController(d.Hotel)
	menuCtrl := controllers.NewMenuController(d.Menu)
	cartCtrl := controllers.NewCartController(d.Carts)
	checkoutCtrl := controllers.NewCheckoutController(d.Checkout)
	serviceCtrl := controllers.NewServiceController(d.ServiceReq)

	// Everything guest-facing is scoped to the resolved hotel.
	api := r.Group("/api", middlewares.TenantMiddleware())
	{
		api.GET("/hotel", hotelCtrl.Get)
		api.GET("/menu", menuCtrl.List)

		api.GET("/cart", cartCtrl.Get)
		api.POST("/cart/items", cartCtrl.Add)
		api.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		api.DELETE("/cart/items", cartCtrl.RemoveItem)
		api.DELETE("/cart", cartCtrl.Clear)

		api.POST("/checkout", checkoutCtrl.Begin)
		api.POST("/checkout/confirm", checkoutCtrl.Confirm)
		api.GET("/checkout/state", checkoutCtrl.State)

		api.POST("/services/request", serviceCtrl.Request)
	}

	r.GET("/ws/cart", middlewares.TenantMiddleware(), d.Hub.HandleWebSocket)
}
