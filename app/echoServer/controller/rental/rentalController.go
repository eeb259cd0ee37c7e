package rental

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/aurasakura/LightningMcQueen/service/catalog"
	"github.com/aurasakura/LightningMcQueen/service/history"
)

type Controller struct {
	Cat catalog.Service
	His history.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/rentals
func (h *Controller) RentNow(c echo.Context) error {
	var req RentNowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	car, err := h.Cat.Detail(c.Request().Context(), req.CarID)
	if err != nil {
		h.Log.Error("rent now lookup", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if car == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Car not found"})
	}

	entry, err := h.His.RecordReservation(c.Request().Context(), *car)
	if err != nil {
		h.Log.Error("rent now record", "err", err)
		switch history.Code(err) {
		case history.ErrInvalidCar:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid car"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "You have reserved this car for 5 minutes. Head there now and scan the QR Code on the car!",
		"status":     entry.Status,
		"date":       entry.Date,
		"directions": car.Coords.DirectionsURL(),
	})
}

// GET /v1/rentals/history
func (h *Controller) History(c echo.Context) error {
	rows, err := h.His.History(c.Request().Context())
	if err != nil {
		h.Log.Error("history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
