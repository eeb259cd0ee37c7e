package favorite

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/aurasakura/LightningMcQueen/service/favorites"
)

type Controller struct {
	Svc favorites.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/favorites
func (h *Controller) Add(c echo.Context) error {
	var req AddFavoriteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	if err := h.Svc.Add(c.Request().Context(), req.CarID); err != nil {
		switch favorites.Code(err) {
		case favorites.ErrAlreadyFavorite:
			return c.JSON(http.StatusConflict, echo.Map{"message": "already a favorite"})
		case favorites.ErrInvalidCar:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid car"})
		default:
			h.Log.Error("favorite add", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"car_id": req.CarID})
}

// GET /v1/favorites
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("favorite list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// DELETE /v1/favorites/:id
func (h *Controller) Remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Remove(c.Request().Context(), id); err != nil {
		switch favorites.Code(err) {
		case favorites.ErrNotFavorite:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not a favorite"})
		default:
			h.Log.Error("favorite remove", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "removed"})
}
