package favorite

type AddFavoriteReq struct {
	CarID int64 `json:"car_id" validate:"required,gt=0"`
}
