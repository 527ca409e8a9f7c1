package request

import (
	"strings"

	"tiembanh_mousse/internal/usecase"
)

// PreOrderRequest is the create/update payload for pre-orders. Pre-orders
// have no delivery slot and track a lowercase status instead of the order
// state text.
type PreOrderRequest struct {
	Customer CustomerRequest   `json:"customer" binding:"required"`
	Items    []LineItemRequest `json:"items" binding:"required,dive"`
	Date     string            `json:"date" binding:"required"`
	ShipFee  float64           `json:"ship_fee"`
	OtherFee float64           `json:"other_fee"`
	Discount float64           `json:"discount"`
	Status   string            `json:"status"`
}

type PreOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r PreOrderRequest) ToInput(id string) usecase.PreOrderInput {
	return usecase.PreOrderInput{
		ID:       id,
		Customer: r.Customer.toRawCustomer(),
		Items:    toLineItems(r.Items),
		Date:     strings.TrimSpace(r.Date),
		ShipFee:  r.ShipFee,
		OtherFee: r.OtherFee,
		Discount: r.Discount,
		Status:   strings.TrimSpace(r.Status),
	}
}
