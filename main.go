// Package main car rental API.
//
// @title           LightningMcQueen API
// @version         1.0
// @description     car rental browsing service (cars, filters, reservations, favorites).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aurasakura/LightningMcQueen/app/echoServer"
	carctrl "github.com/aurasakura/LightningMcQueen/app/echoServer/controller/car"
	favctrl "github.com/aurasakura/LightningMcQueen/app/echoServer/controller/favorite"
	rentalctrl "github.com/aurasakura/LightningMcQueen/app/echoServer/controller/rental"
	"github.com/aurasakura/LightningMcQueen/app/echoServer/validation"
	"github.com/aurasakura/LightningMcQueen/config"
	carsrepo "github.com/aurasakura/LightningMcQueen/repository/cars"
	favrepo "github.com/aurasakura/LightningMcQueen/repository/favorites"
	kvrepo "github.com/aurasakura/LightningMcQueen/repository/kv"
	"github.com/aurasakura/LightningMcQueen/service/catalog"
	"github.com/aurasakura/LightningMcQueen/service/favorites"
	"github.com/aurasakura/LightningMcQueen/service/history"
	"github.com/aurasakura/LightningMcQueen/util/database"
	"github.com/aurasakura/LightningMcQueen/util/httpx"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := kvrepo.EnsureSchema(ctx, db.Pool); err != nil {
		log.Error("kv schema", "err", err)
		os.Exit(1)
	}
	if err := favrepo.EnsureSchema(ctx, db.Pool); err != nil {
		log.Error("favorites schema", "err", err)
		os.Exit(1)
	}

	// repos
	store := kvrepo.New(db.Pool)
	cr := carsrepo.NewHTTP(cfg.CarsAPIURL, httpx.Client())
	fr := favrepo.New(db.Pool)

	// services
	cat := catalog.New(cr, store, catalog.CacheKey)
	his := history.New(store, history.DefaultKey, nil)
	fav := favorites.New(fr, cat)

	// controllers
	v := validator.New()
	carC := &carctrl.Controller{Svc: cat, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Cat: cat, His: his, V: v, Log: log}
	favC := &favctrl.Controller{Svc: fav, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Car:      carC,
		Rental:   rentalC,
		Favorite: favC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
