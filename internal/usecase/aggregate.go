package usecase

import "tiembanh_mousse/internal/domain/entities"

// OrderCountsByDate groups the given slice by its derived date key. The
// caller decides what slice to aggregate (usually the filtered list);
// records with no parseable delivery date group under "".
func OrderCountsByDate(records []entities.DerivedOrder) map[string]int {
	counts := make(map[string]int, len(records))
	for _, o := range records {
		counts[o.Date]++
	}
	return counts
}

// ShiftBucket is one production shift's workload.
type ShiftBucket struct {
	Count          int                `json:"count"`
	CakeQuantities map[string]float64 `json:"cake_quantities"`
}

// ShiftReport splits orders into morning (<12h), afternoon (12-17h) and
// evening (>=18h) by promised delivery hour.
type ShiftReport struct {
	Morning   ShiftBucket `json:"morning"`
	Afternoon ShiftBucket `json:"afternoon"`
	Evening   ShiftBucket `json:"evening"`
}

// ShiftBreakdown buckets the given slice by received hour. Records without a
// parseable delivery time are excluded entirely, never defaulted into a
// shift, so the three counts sum to the parseable-record count.
func ShiftBreakdown(records []entities.DerivedOrder) ShiftReport {
	report := ShiftReport{
		Morning:   ShiftBucket{CakeQuantities: map[string]float64{}},
		Afternoon: ShiftBucket{CakeQuantities: map[string]float64{}},
		Evening:   ShiftBucket{CakeQuantities: map[string]float64{}},
	}

	for _, o := range records {
		if o.Timeline.ReceivedAt.IsZero() {
			continue
		}
		var bucket *ShiftBucket
		switch h := o.Timeline.ReceivedAt.Hour(); {
		case h < 12:
			bucket = &report.Morning
		case h < 18:
			bucket = &report.Afternoon
		default:
			bucket = &report.Evening
		}
		bucket.Count++
		for _, it := range o.Items {
			bucket.CakeQuantities[it.Name] += it.Amount
		}
	}
	return report
}
