package request

import (
	"strings"

	"tiembanh_mousse/internal/domain/entities"
	"tiembanh_mousse/internal/usecase"
)

type CustomerRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	SocialLink string `json:"social_link"`
}

type LineItemRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Price  float64 `json:"price"`
}

// OrderRequest is the create/update payload for the order screen. Date is a
// local calendar day; the use case converts it to the persisted epoch.
type OrderRequest struct {
	Customer CustomerRequest   `json:"customer" binding:"required"`
	Items    []LineItemRequest `json:"items" binding:"required,dive"`
	Date     string            `json:"date" binding:"required"`
	TimeSlot string            `json:"time_slot"`
	ShipFee  float64           `json:"ship_fee"`
	OtherFee float64           `json:"other_fee"`
	Discount float64           `json:"discount"`
	State    string            `json:"state"`
	Priority string            `json:"priority"`
}

// OrderStateRequest patches only the free-text lifecycle state.
type OrderStateRequest struct {
	State string `json:"state" binding:"required"`
}

func (r OrderRequest) ToInput(id string) usecase.OrderInput {
	return usecase.OrderInput{
		ID:       id,
		Customer: r.Customer.toRawCustomer(),
		Items:    toLineItems(r.Items),
		Date:     strings.TrimSpace(r.Date),
		TimeSlot: strings.TrimSpace(r.TimeSlot),
		ShipFee:  r.ShipFee,
		OtherFee: r.OtherFee,
		Discount: r.Discount,
		State:    strings.TrimSpace(r.State),
		Priority: strings.TrimSpace(r.Priority),
	}
}

func (r CustomerRequest) toRawCustomer() entities.RawCustomer {
	return entities.RawCustomer{
		ID:         strings.TrimSpace(r.ID),
		Name:       strings.TrimSpace(r.Name),
		Phone:      strings.TrimSpace(r.Phone),
		Address:    strings.TrimSpace(r.Address),
		SocialLink: strings.TrimSpace(r.SocialLink),
	}
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			Name:   strings.TrimSpace(it.Name),
			Amount: it.Amount,
			Price:  it.Price,
		})
	}
	return out
}
