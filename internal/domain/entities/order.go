package entities

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// OrderStatus is the coarse lifecycle bucket shown on the dashboard.
//
// Persisted records carry a free-text state ("Đặt trước", "Hoàn thành",
// "Hủy", ...). ClassifyState is the single place that free text is turned
// into a tagged status; nothing outside this package matches state strings.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

var (
	completedKeywords = []string{"hoàn thành", "hoan thanh", "done", "complete", "xong"}
	cancelledKeywords = []string{"hủy", "huy", "cancel"}
)

// ClassifyState maps a free-text state string to an OrderStatus. Matching is
// case-insensitive substring search; anything unrecognized stays Pending.
func ClassifyState(state string) OrderStatus {
	s := strings.ToLower(state)
	for _, kw := range completedKeywords {
		if strings.Contains(s, kw) {
			return OrderStatusCompleted
		}
	}
	for _, kw := range cancelledKeywords {
		if strings.Contains(s, kw) {
			return OrderStatusCancelled
		}
	}
	return OrderStatusPending
}

// pickupMarkers flag an address as self-collect rather than delivery.
var pickupMarkers = []string{"tại tiệm", "tai tiem", "tự đến", "tu den", "qua lấy", "pickup"}

func IsPickupAddress(address string) bool {
	a := strings.ToLower(address)
	for _, m := range pickupMarkers {
		if strings.Contains(a, m) {
			return true
		}
	}
	return false
}

// LineItem is one cake line on an order.
type LineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
}

// ItemList tolerates both persisted shapes for order items: a JSON array and
// a keyed object ({"0": {...}, "1": {...}}). The object form is flattened to
// its values, ordered by key so decoding is deterministic. The ambiguity
// stops here; everything downstream sees a plain list.
type ItemList []LineItem

func (l *ItemList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var arr []LineItem
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		*l = arr
		return nil
	}

	var keyed map[string]LineItem
	if err := json.Unmarshal(data, &keyed); err != nil {
		return err
	}
	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})
	out := make(ItemList, 0, len(keys))
	for _, k := range keys {
		out = append(out, keyed[k])
	}
	*l = out
	return nil
}

// RawCustomer is the customer block embedded in a persisted order.
type RawCustomer struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	SocialLink string `json:"socialLink,omitempty"`
}

// RawOrder is an order record exactly as persisted in the store.
//
// Timestamps are Cocoa-epoch seconds (see pkg/timecodec). OrderDate is the
// promised delivery time, CreateDate when the order was placed. Pointer
// fields distinguish "absent" from zero.
type RawOrder struct {
	OrderDate        *float64    `json:"orderDate,omitempty"`
	CreateDate       *float64    `json:"createDate,omitempty"`
	Cakes            ItemList    `json:"cakes,omitempty"`
	Items            ItemList    `json:"items,omitempty"`
	Customer         RawCustomer `json:"customer,omitempty"`
	ShipFee          float64     `json:"shipFee,omitempty"`
	OtherFee         float64     `json:"otherFee,omitempty"`
	Discount         float64     `json:"discount,omitempty"`
	State            string      `json:"state,omitempty"`
	DeliveryTimeSlot string      `json:"deliveryTimeSlot,omitempty"`
	Priority         string      `json:"priority,omitempty"`
}

// LineItems returns whichever item key the record was written with.
func (r RawOrder) LineItems() ItemList {
	if len(r.Cakes) > 0 {
		return r.Cakes
	}
	return r.Items
}

// Subtotal is the item total before fees and discount.
func (r RawOrder) Subtotal() float64 {
	var sum float64
	for _, it := range r.LineItems() {
		sum += it.Price * it.Amount
	}
	return sum
}

// DiscountAmount resolves the persisted discount field, which is ambiguous:
// values up to and including 100 are a percentage of the subtotal, anything
// larger is an absolute amount. A 100000-dong discount on a 50000 subtotal is
// indistinguishable from "100%" under this rule; the heuristic is preserved
// as-is rather than silently changed (known design debt).
func (r RawOrder) DiscountAmount() float64 {
	if r.Discount <= 100 {
		return r.Subtotal() * r.Discount / 100
	}
	return r.Discount
}

// TotalPrice is subtotal + fees - discount. Deliberately unclamped: an order
// with no items and a discount can go negative and is passed through as-is.
func (r RawOrder) TotalPrice() float64 {
	return r.Subtotal() + r.ShipFee + r.OtherFee - r.DiscountAmount()
}

// CustomerInfo is the normalized customer block on the view model.
type CustomerInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	SocialLink string `json:"social_link,omitempty"`
}

// Timeline carries the formatted create/delivery times plus the raw delivery
// instant used for sorting and shift bucketing. ReceivedAt is the zero time
// when the record had no parseable delivery timestamp.
type Timeline struct {
	Ordered    string    `json:"ordered"`
	Received   string    `json:"received"`
	ReceivedAt time.Time `json:"-"`
}

// DerivedOrder is the immutable view model the dashboard works with. It is
// rebuilt from scratch on every store snapshot and holds no identity beyond
// the store key; edits go back through Original.
type DerivedOrder struct {
	ID       string       `json:"id"`
	Customer CustomerInfo `json:"customer"`
	Items    []LineItem   `json:"items"`
	Timeline Timeline     `json:"timeline"`
	Date     string       `json:"date"`
	RawPrice float64      `json:"raw_price"`
	Price    string       `json:"price"`
	Status   OrderStatus  `json:"status"`
	Priority string       `json:"priority,omitempty"`
	TimeSlot string       `json:"time_slot,omitempty"`
	Original RawOrder     `json:"-"`
}

// DeliveryTimeSlots are the five ranges an order can be promised into.
var DeliveryTimeSlots = []string{
	"08:00 - 10:00",
	"10:00 - 12:00",
	"12:00 - 15:00",
	"15:00 - 18:00",
	"18:00 - 21:00",
}

// SlotStartHour parses the opening hour of a delivery slot string.
func SlotStartHour(slot string) (int, bool) {
	idx := strings.Index(slot, ":")
	if idx <= 0 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(slot[:idx]))
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

var vndPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND renders an amount as Vietnamese dong with grouping and no
// decimal places, e.g. 110000 -> "110.000 ₫".
func FormatVND(amount float64) string {
	return vndPrinter.Sprintf("%d ₫", int64(math.Round(amount)))
}
