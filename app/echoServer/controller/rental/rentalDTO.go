package rental

type RentNowReq struct {
	CarID int64 `json:"car_id" validate:"required,gt=0"`
}
