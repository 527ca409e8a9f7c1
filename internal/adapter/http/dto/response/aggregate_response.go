package response

import (
	"tiembanh_mousse/internal/usecase"
)

type DailyCountsResponse struct {
	Counts map[string]int `json:"counts"`
}

type ShiftBucketResponse struct {
	Count          int                `json:"count"`
	CakeQuantities map[string]float64 `json:"cake_quantities"`
}

// ShiftReportResponse partitions a day's orders into the three kitchen
// shifts with per-cake totals.
type ShiftReportResponse struct {
	Morning   ShiftBucketResponse `json:"morning"`
	Afternoon ShiftBucketResponse `json:"afternoon"`
	Evening   ShiftBucketResponse `json:"evening"`
}

func FromShiftReport(r usecase.ShiftReport) ShiftReportResponse {
	return ShiftReportResponse{
		Morning:   fromShiftBucket(r.Morning),
		Afternoon: fromShiftBucket(r.Afternoon),
		Evening:   fromShiftBucket(r.Evening),
	}
}

func fromShiftBucket(b usecase.ShiftBucket) ShiftBucketResponse {
	q := b.CakeQuantities
	if q == nil {
		q = map[string]float64{}
	}
	return ShiftBucketResponse{Count: b.Count, CakeQuantities: q}
}
