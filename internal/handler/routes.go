package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes.
// Unhandled methods on /api/wishes get a 405 from the router.
func RegisterRoutes(e *echo.Echo, wishHandler *WishHandler, wsHandler *WebSocketHandler) {
	api := e.Group("/api")

	wishes := api.Group("/wishes")
	wishes.GET("", wishHandler.ListWishes)
	wishes.POST("", wishHandler.CreateWish)
	wishes.PUT("", wishHandler.ClaimWish)
	wishes.DELETE("", wishHandler.DeleteWish)
	wishes.GET("/grouped", wishHandler.ListGrouped)

	e.GET("/ws", wsHandler.HandleWS)
}
