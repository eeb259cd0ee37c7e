package car

type FilterReq struct {
	MinPrice   *int64   `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice   *int64   `json:"max_price" validate:"omitempty,gte=0"`
	MinSeats   *int     `json:"min_seats" validate:"omitempty,gte=0"`
	MinRatings *float64 `json:"min_ratings" validate:"omitempty,gte=0,lte=5"`
}
