package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tiembanh_mousse/internal/domain/entities"
)

type SortKey string

const (
	SortKeyReceiveDate  SortKey = "receiveDate"
	SortKeyCustomerName SortKey = "customerName"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortSpec struct {
	Key       SortKey
	Direction SortDirection
}

// Criteria is a conjunction of independently optional predicates. A zero
// Criteria matches everything.
type Criteria struct {
	// Date restricts to records whose derived date key equals it ("" = off).
	Date string
	// SearchText matches case-insensitively against customer name, phone,
	// address or record id; any hit passes.
	SearchText string
	// Statuses restricts to the given set; empty = no restriction.
	Statuses []entities.OrderStatus
	// ItemTypes passes records having at least one item whose name is in the
	// set; empty = no restriction.
	ItemTypes []string
	// PriceMin/PriceMax bound RawPrice inclusively; nil = unbounded.
	PriceMin *float64
	PriceMax *float64
	// PickupOnly keeps only records whose address carries a pickup marker.
	PickupOnly bool
}

// Matches reports whether every active predicate accepts the record.
func (c Criteria) Matches(o entities.DerivedOrder) bool {
	if c.Date != "" && o.Date != c.Date {
		return false
	}

	if s := strings.ToLower(strings.TrimSpace(c.SearchText)); s != "" {
		hit := strings.Contains(strings.ToLower(o.Customer.Name), s) ||
			strings.Contains(strings.ToLower(o.Customer.Phone), s) ||
			strings.Contains(strings.ToLower(o.Customer.Address), s) ||
			strings.Contains(strings.ToLower(o.ID), s)
		if !hit {
			return false
		}
	}

	if len(c.Statuses) > 0 {
		ok := false
		for _, st := range c.Statuses {
			if o.Status == st {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(c.ItemTypes) > 0 {
		ok := false
	itemLoop:
		for _, it := range o.Items {
			for _, name := range c.ItemTypes {
				if it.Name == name {
					ok = true
					break itemLoop
				}
			}
		}
		if !ok {
			return false
		}
	}

	if c.PriceMin != nil && o.RawPrice < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && o.RawPrice > *c.PriceMax {
		return false
	}

	if c.PickupOnly && !entities.IsPickupAddress(o.Customer.Address) {
		return false
	}

	return true
}

// ApplyFilter filters and sorts a derived list. Pure: the input slice is
// never mutated and the same inputs always give the same output. The sort is
// stable, so ties keep their relative input order.
func ApplyFilter(records []entities.DerivedOrder, c Criteria, s SortSpec) []entities.DerivedOrder {
	out := make([]entities.DerivedOrder, 0, len(records))
	for _, o := range records {
		if c.Matches(o) {
			out = append(out, o)
		}
	}

	desc := s.Direction == SortDesc
	switch s.Key {
	case SortKeyCustomerName:
		col := collate.New(language.Vietnamese)
		sort.SliceStable(out, func(i, j int) bool {
			cmp := col.CompareString(out[i].Customer.Name, out[j].Customer.Name)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortKeyReceiveDate, "":
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Timeline.ReceivedAt.After(out[j].Timeline.ReceivedAt)
			}
			return out[i].Timeline.ReceivedAt.Before(out[j].Timeline.ReceivedAt)
		})
	}
	return out
}
