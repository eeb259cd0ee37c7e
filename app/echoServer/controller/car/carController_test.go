package car_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	carctrl "github.com/aurasakura/LightningMcQueen/app/echoServer/controller/car"
	"github.com/aurasakura/LightningMcQueen/model"
)

type catalogStub struct{ cars []model.Car }

func (s *catalogStub) List(ctx context.Context) ([]model.Car, error) { return s.cars, nil }
func (s *catalogStub) Detail(ctx context.Context, id int64) (*model.Car, error) {
	for i := range s.cars {
		if s.cars[i].ID == id {
			return &s.cars[i], nil
		}
	}
	return nil, nil
}
func (s *catalogStub) Snapshot(ctx context.Context) []model.Car { return s.cars }

func newController(cars []model.Car) *carctrl.Controller {
	return &carctrl.Controller{
		Svc: &catalogStub{cars: cars},
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestDetail_RendersCarNotFound(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/cars/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	h := newController(nil)
	require.NoError(t, h.Detail(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Car not found")
}

func TestFilter_TwoCarScenario(t *testing.T) {
	cars := []model.Car{
		{ID: 1, Price: "850 DKK/day", Seats: 5, Ratings: 4.5},
		{ID: 2, Price: "700 DKK/day", Seats: 4, Ratings: 4.2},
	}

	e := echo.New()
	body := `{"min_price":0,"max_price":800,"min_seats":1,"min_ratings":1}`
	req := httptest.NewRequest(http.MethodPost, "/v1/cars/filter", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newController(cars)
	require.NoError(t, h.Filter(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"id":2`)
	require.NotContains(t, rec.Body.String(), `"id":1`)
}
