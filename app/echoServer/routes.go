package echoServer

import (
	"github.com/aurasakura/LightningMcQueen/app/echoServer/controller/car"
	"github.com/aurasakura/LightningMcQueen/app/echoServer/controller/favorite"
	"github.com/aurasakura/LightningMcQueen/app/echoServer/controller/rental"

	"github.com/labstack/echo/v4"
)

type C struct {
	Car      *car.Controller
	Rental   *rental.Controller
	Favorite *favorite.Controller
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// Cars
	v1.GET("/cars", c.Car.List)
	v1.POST("/cars/filter", c.Car.Filter)
	v1.GET("/cars/:id", c.Car.Detail)

	// Rent Now + history
	v1.POST("/rentals", c.Rental.RentNow)
	v1.GET("/rentals/history", c.Rental.History)

	// Favorites
	v1.POST("/favorites", c.Favorite.Add)
	v1.GET("/favorites", c.Favorite.List)
	v1.DELETE("/favorites/:id", c.Favorite.Remove)
}
