package handler

import "github.com/fruitmart/shop-api/internal/core/domain"

// quantityUpdateRequest is one submitted quantity field. The quantity stays
// a raw string here: parsing and validation belong to the cart service,
// which skips entries that are not non-negative integers.
type quantityUpdateRequest struct {
	ProductID int    `json:"product_id" validate:"required"`
	Quantity  string `json:"quantity"`
}

type updateCartRequest struct {
	Items []quantityUpdateRequest `json:"items" validate:"dive"`
}

type cartResponse struct {
	Items []domain.LineItem `json:"items"`
	Total int               `json:"total"`
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
}
