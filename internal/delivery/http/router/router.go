// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mart/internal/delivery/http/middleware"
	"mart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler        *handler.CartHandler
	CouponHandler      *handler.CouponHandler
	AddressHandler     *handler.AddressHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler        *handler.CartHandler
	couponHandler      *handler.CouponHandler
	addressHandler     *handler.AddressHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:        params.CartHandler,
		couponHandler:      params.CouponHandler,
		addressHandler:     params.AddressHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cart routes, scoped to the calling user
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.identityMiddleware.RequireUser)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items", r.cartHandler.RemoveItem)

		// Coupon selection binds to the caller's cart
		cartGroup.GET("/coupon", r.couponHandler.GetSelectedCoupon)
		cartGroup.POST("/coupon", r.couponHandler.SelectCoupon)
		cartGroup.DELETE("/coupon", r.couponHandler.UnselectCoupon)
	}

	// Coupon catalog administration
	couponGroup := e.Group("/coupons")
	{
		couponGroup.POST("", r.couponHandler.CreateCoupon)
		couponGroup.GET("", r.couponHandler.ListCoupons)
		couponGroup.GET("/:id", r.couponHandler.GetCoupon)
		couponGroup.PUT("/:id", r.couponHandler.UpdateCoupon)
		couponGroup.DELETE("/:id", r.couponHandler.DeleteCoupon)
	}

	// Address book routes, scoped to the calling user
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.identityMiddleware.RequireUser)
	{
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressGroup.POST("/:id/flags/:flag", r.addressHandler.SetAddressFlag)
		addressGroup.DELETE("/:id/flags/:flag", r.addressHandler.UnsetAddressFlag)
	}
}
