package entities

// RawPreOrder is a pre-order record as persisted. Pre-orders are looser than
// orders: items may live under either key (array or keyed map, see ItemList),
// the total may be precomputed or absent, and the status is a lowercase token
// rather than free text.
type RawPreOrder struct {
	DeliveryDate *float64    `json:"deliveryDate,omitempty"`
	CreateDate   *float64    `json:"createDate,omitempty"`
	Items        ItemList    `json:"items,omitempty"`
	Cakes        ItemList    `json:"cakes,omitempty"`
	Customer     RawCustomer `json:"customer,omitempty"`
	Total        *float64    `json:"total,omitempty"`
	ShipFee      float64     `json:"shipFee,omitempty"`
	OtherFee     float64     `json:"otherFee,omitempty"`
	Discount     float64     `json:"discount,omitempty"`
	Status       string      `json:"status,omitempty"`
	State        string      `json:"state,omitempty"`
}

func (r RawPreOrder) LineItems() ItemList {
	if len(r.Items) > 0 {
		return r.Items
	}
	return r.Cakes
}

// StateText returns whichever status key the record was written with.
func (r RawPreOrder) StateText() string {
	if r.Status != "" {
		return r.Status
	}
	return r.State
}

// AsOrder reshapes the pre-order into the common raw-order form so one
// normalizer serves both collections. A missing total is simply derived; a
// precomputed one is ignored in favor of recomputation from the lines.
func (r RawPreOrder) AsOrder() RawOrder {
	return RawOrder{
		OrderDate:  r.DeliveryDate,
		CreateDate: r.CreateDate,
		Cakes:      r.LineItems(),
		Customer:   r.Customer,
		ShipFee:    r.ShipFee,
		OtherFee:   r.OtherFee,
		Discount:   r.Discount,
		State:      r.StateText(),
	}
}
