package response

import (
	"tiembanh_mousse/internal/domain/entities"
)

type CustomerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	SocialLink string `json:"social_link,omitempty"`
}

type LineItemResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
}

// OrderResponse is the derived order as the dashboard renders it: formatted
// timestamps, the VND price string and the classified status.
type OrderResponse struct {
	ID       string             `json:"id"`
	Customer CustomerResponse   `json:"customer"`
	Items    []LineItemResponse `json:"items"`
	Ordered  string             `json:"ordered"`
	Received string             `json:"received"`
	Date     string             `json:"date"`
	RawPrice float64            `json:"raw_price"`
	Price    string             `json:"price"`
	Status   string             `json:"status"`
	Priority string             `json:"priority,omitempty"`
	TimeSlot string             `json:"time_slot,omitempty"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

func FromDerivedOrder(o entities.DerivedOrder) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemResponse{Name: it.Name, Amount: it.Amount, Price: it.Price})
	}
	return OrderResponse{
		ID: o.ID,
		Customer: CustomerResponse{
			ID:         o.Customer.ID,
			Name:       o.Customer.Name,
			Phone:      o.Customer.Phone,
			Address:    o.Customer.Address,
			SocialLink: o.Customer.SocialLink,
		},
		Items:    items,
		Ordered:  o.Timeline.Ordered,
		Received: o.Timeline.Received,
		Date:     o.Date,
		RawPrice: o.RawPrice,
		Price:    o.Price,
		Status:   string(o.Status),
		Priority: o.Priority,
		TimeSlot: o.TimeSlot,
	}
}

func FromDerivedOrders(orders []entities.DerivedOrder) OrderListResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromDerivedOrder(o))
	}
	return OrderListResponse{Orders: out, Total: len(out)}
}
