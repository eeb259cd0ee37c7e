package carsrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aurasakura/LightningMcQueen/model"
)

// Repo fetches the current car list from the upstream endpoint (the
// json-server fixture in development, a real backend later).
type Repo interface {
	FetchCars(ctx context.Context) ([]model.Car, error)
}

type httpRepo struct {
	url    string
	client *http.Client
}

func NewHTTP(url string, client *http.Client) Repo {
	if client == nil {
		client = &http.Client{}
	}
	return &httpRepo{url: url, client: client}
}

func (r *httpRepo) FetchCars(ctx context.Context) ([]model.Car, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch cars: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	cars, err := decodeCars(body)
	if err != nil {
		return nil, err
	}
	for i := range cars {
		cars[i].Normalize()
	}
	return cars, nil
}

// decodeCars accepts both a bare JSON array and the db.json wrapper
// {"cars": [...]} so the client works against either fixture shape.
func decodeCars(body []byte) ([]model.Car, error) {
	var cars []model.Car
	if err := json.Unmarshal(body, &cars); err == nil {
		return cars, nil
	}
	var wrapped struct {
		Cars []model.Car `json:"cars"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Cars, nil
}
