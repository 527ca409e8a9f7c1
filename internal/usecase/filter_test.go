package usecase

import (
	"testing"
	"time"

	"tiembanh_mousse/internal/domain/entities"
)

func mkOrder(id, name, phone, address, date string, status entities.OrderStatus, price float64, items ...string) entities.DerivedOrder {
	lines := make([]entities.LineItem, 0, len(items))
	for _, n := range items {
		lines = append(lines, entities.LineItem{Name: n, Amount: 1, Price: price})
	}
	return entities.DerivedOrder{
		ID:       id,
		Customer: entities.CustomerInfo{Name: name, Phone: phone, Address: address},
		Items:    lines,
		Date:     date,
		RawPrice: price,
		Status:   status,
	}
}

func TestCriteriaConjunction(t *testing.T) {
	min, max := 50000.0, 200000.0
	criteria := Criteria{
		Date:       "2024-05-01",
		SearchText: "lan",
		Statuses:   []entities.OrderStatus{entities.OrderStatusPending},
		ItemTypes:  []string{"Mousse"},
		PriceMin:   &min,
		PriceMax:   &max,
		PickupOnly: true,
	}

	passing := mkOrder("ok", "Chị Lan", "0901", "khách tự đến lấy", "2024-05-01", entities.OrderStatusPending, 100000, "Mousse")
	if !criteria.Matches(passing) {
		t.Fatalf("baseline record should pass every predicate")
	}

	// Each case violates exactly one predicate and must be excluded.
	violations := map[string]entities.DerivedOrder{
		"date":    mkOrder("ok", "Chị Lan", "0901", "tự đến lấy", "2024-05-02", entities.OrderStatusPending, 100000, "Mousse"),
		"search":  mkOrder("x1", "Anh Minh", "0902", "tự đến", "2024-05-01", entities.OrderStatusPending, 100000, "Mousse"),
		"status":  mkOrder("ok", "Chị Lan", "0901", "tự đến", "2024-05-01", entities.OrderStatusCancelled, 100000, "Mousse"),
		"items":   mkOrder("ok", "Chị Lan", "0901", "tự đến", "2024-05-01", entities.OrderStatusPending, 100000, "Tiramisu"),
		"price<":  mkOrder("ok", "Chị Lan", "0901", "tự đến", "2024-05-01", entities.OrderStatusPending, 40000, "Mousse"),
		"price>":  mkOrder("ok", "Chị Lan", "0901", "tự đến", "2024-05-01", entities.OrderStatusPending, 250000, "Mousse"),
		"pickup":  mkOrder("ok", "Chị Lan", "0901", "12 Nguyễn Trãi", "2024-05-01", entities.OrderStatusPending, 100000, "Mousse"),
	}
	for name, rec := range violations {
		if criteria.Matches(rec) {
			t.Fatalf("record violating %s predicate must not match", name)
		}
	}

	got := ApplyFilter([]entities.DerivedOrder{
		passing,
		violations["date"],
		violations["status"],
	}, criteria, SortSpec{})
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("expected only the passing record, got %+v", got)
	}
}

func TestCriteriaSearchMatchesAddressOnly(t *testing.T) {
	rec := mkOrder("abc123", "Chị Hoa", "0903", "45 Trần Hưng Đạo", "", entities.OrderStatusPending, 0)
	c := Criteria{SearchText: "hưng đạo"}
	if !c.Matches(rec) {
		t.Fatalf("address-only hit must pass the search predicate")
	}
	if !(Criteria{SearchText: "abc123"}).Matches(rec) {
		t.Fatalf("id hit must pass the search predicate")
	}
	if (Criteria{SearchText: "nothing"}).Matches(rec) {
		t.Fatalf("no field matches, record must be excluded")
	}
}

func TestCriteriaEmptySetsMeanNoRestriction(t *testing.T) {
	rec := mkOrder("r", "A", "1", "x", "2024-01-01", entities.OrderStatusCancelled, 99)
	if !(Criteria{}).Matches(rec) {
		t.Fatalf("zero criteria must match everything")
	}
	if !(Criteria{Statuses: nil, ItemTypes: nil}).Matches(rec) {
		t.Fatalf("empty sets must not restrict")
	}
}

func TestCriteriaPriceBoundsInclusive(t *testing.T) {
	bound := 100000.0
	rec := mkOrder("r", "A", "1", "x", "", entities.OrderStatusPending, 100000)
	if !(Criteria{PriceMin: &bound}).Matches(rec) {
		t.Fatalf("min bound is inclusive")
	}
	if !(Criteria{PriceMax: &bound}).Matches(rec) {
		t.Fatalf("max bound is inclusive")
	}
}

func TestApplyFilterSorting(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 5, 1, h, 0, 0, 0, time.Local) }
	a := mkOrder("a", "Bích", "", "", "", entities.OrderStatusPending, 0)
	a.Timeline.ReceivedAt = at(15)
	b := mkOrder("b", "An", "", "", "", entities.OrderStatusPending, 0)
	b.Timeline.ReceivedAt = at(9)
	c := mkOrder("c", "Cường", "", "", "", entities.OrderStatusPending, 0)
	c.Timeline.ReceivedAt = at(12)

	in := []entities.DerivedOrder{a, b, c}

	t.Run("receive date asc", func(t *testing.T) {
		got := ApplyFilter(in, Criteria{}, SortSpec{Key: SortKeyReceiveDate, Direction: SortAsc})
		if got[0].ID != "b" || got[1].ID != "c" || got[2].ID != "a" {
			t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("receive date desc", func(t *testing.T) {
		got := ApplyFilter(in, Criteria{}, SortSpec{Key: SortKeyReceiveDate, Direction: SortDesc})
		if got[0].ID != "a" || got[2].ID != "b" {
			t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("customer name asc", func(t *testing.T) {
		got := ApplyFilter(in, Criteria{}, SortSpec{Key: SortKeyCustomerName, Direction: SortAsc})
		if got[0].Customer.Name != "An" || got[2].Customer.Name != "Cường" {
			t.Fatalf("unexpected order: %s %s %s", got[0].Customer.Name, got[1].Customer.Name, got[2].Customer.Name)
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = ApplyFilter(in, Criteria{}, SortSpec{Key: SortKeyReceiveDate})
		if in[0].ID != "a" || in[1].ID != "b" || in[2].ID != "c" {
			t.Fatalf("ApplyFilter mutated its input")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := ApplyFilter(in, Criteria{SearchText: ""}, SortSpec{Key: SortKeyCustomerName})
		second := ApplyFilter(in, Criteria{SearchText: ""}, SortSpec{Key: SortKeyCustomerName})
		for i := range first {
			if first[i].ID != second[i].ID {
				t.Fatalf("same inputs gave different outputs")
			}
		}
	})
}
