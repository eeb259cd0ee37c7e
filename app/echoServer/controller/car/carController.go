package car

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/aurasakura/LightningMcQueen/service/catalog"
	"github.com/aurasakura/LightningMcQueen/service/filter"
)

type Controller struct {
	Svc catalog.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/cars?q=&rank=
func (h *Controller) List(c echo.Context) error {
	cars, err := h.Svc.List(c.Request().Context())
	if err != nil {
		// degraded, not fatal: the list is still served
		h.Log.Error("car list degraded", "err", err)
	}

	if q := c.QueryParam("q"); q != "" {
		cars = filter.Search(cars, q)
	}
	if mode := c.QueryParam("rank"); mode != "" {
		cars = filter.Rank(cars, filter.RankMode(mode))
	}

	return c.JSON(http.StatusOK, echo.Map{"data": cars})
}

// POST /v1/cars/filter
func (h *Controller) Filter(c echo.Context) error {
	var req FilterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	crit := filter.DefaultCriteria()
	if req.MinPrice != nil {
		crit.MinPrice = *req.MinPrice
	}
	if req.MaxPrice != nil {
		crit.MaxPrice = *req.MaxPrice
	}
	if req.MinSeats != nil {
		crit.MinSeats = *req.MinSeats
	}
	if req.MinRatings != nil {
		crit.MinRatings = *req.MinRatings
	}

	cars, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("car list degraded", "err", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": filter.Apply(cars, crit)})
}

// GET /v1/cars/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("car detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Car not found"})
	}
	return c.JSON(http.StatusOK, row)
}
