package usecase

import (
	"encoding/json"

	"tiembanh_mousse/internal/domain/entities"
	"tiembanh_mousse/pkg/timecodec"
)

const (
	unknownName    = "Unknown"
	missingField   = "N/A"
	timelineLayout = "15:04 02/01/2006"
)

// NormalizeOrder turns a persisted record plus its store key into the view
// model. It never fails: missing optional fields fall back to safe defaults
// so one malformed record cannot break the rest of the list.
func NormalizeOrder(id string, raw entities.RawOrder) entities.DerivedOrder {
	d := entities.DerivedOrder{
		ID:       id,
		Priority: raw.Priority,
		TimeSlot: raw.DeliveryTimeSlot,
		Original: raw,
	}

	d.Customer = entities.CustomerInfo{
		ID:         raw.Customer.ID,
		Name:       defaultString(raw.Customer.Name, unknownName),
		Phone:      defaultString(raw.Customer.Phone, missingField),
		Address:    defaultString(raw.Customer.Address, missingField),
		SocialLink: raw.Customer.SocialLink,
	}

	items := raw.LineItems()
	d.Items = make([]entities.LineItem, len(items))
	copy(d.Items, items)

	if raw.CreateDate != nil {
		d.Timeline.Ordered = timecodec.FromCocoaSeconds(*raw.CreateDate).Format(timelineLayout)
	}
	if raw.OrderDate != nil {
		received := timecodec.FromCocoaSeconds(*raw.OrderDate)
		d.Timeline.Received = received.Format(timelineLayout)
		d.Timeline.ReceivedAt = received
		// The partition key follows the promised delivery date, not the
		// creation date.
		d.Date = timecodec.LocalDateKey(received)
	}

	d.RawPrice = raw.TotalPrice()
	d.Price = entities.FormatVND(d.RawPrice)
	d.Status = entities.ClassifyState(raw.State)
	return d
}

// NormalizePreOrder normalizes the looser pre-order shape through the same
// pipeline, deriving the total from the lines whether or not one was stored.
func NormalizePreOrder(id string, raw entities.RawPreOrder) entities.DerivedOrder {
	return NormalizeOrder(id, raw.AsOrder())
}

// decodeOrderDoc decodes a raw store document. Undecodable bodies still yield
// a defaulted record under their key rather than an error.
func decodeOrderDoc(id string, doc json.RawMessage) entities.DerivedOrder {
	var raw entities.RawOrder
	_ = json.Unmarshal(doc, &raw)
	return NormalizeOrder(id, raw)
}

func decodePreOrderDoc(id string, doc json.RawMessage) entities.DerivedOrder {
	var raw entities.RawPreOrder
	_ = json.Unmarshal(doc, &raw)
	return NormalizePreOrder(id, raw)
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
