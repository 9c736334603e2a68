package request_models

type AddPackingItemRequest struct {
	ItemName string `json:"item_name" binding:"required,max=120"`
}
