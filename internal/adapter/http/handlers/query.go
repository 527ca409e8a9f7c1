package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tiembanh_mousse/internal/domain/entities"
	"tiembanh_mousse/internal/usecase"
	"tiembanh_mousse/pkg"
)

var errInvalidListQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid list query", http.StatusBadRequest)

// criteriaFromQuery assembles the compound filter from query params:
// date, q, status (comma separated), item (comma separated), price_min,
// price_max and pickup. Every predicate is optional.
func criteriaFromQuery(c *gin.Context) (usecase.Criteria, error) {
	crit := usecase.Criteria{
		Date:       strings.TrimSpace(c.Query("date")),
		SearchText: c.Query("q"),
	}

	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			st, ok := parseStatus(part)
			if !ok {
				return usecase.Criteria{}, errInvalidListQuery
			}
			crit.Statuses = append(crit.Statuses, st)
		}
	}

	if raw := c.Query("item"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				crit.ItemTypes = append(crit.ItemTypes, p)
			}
		}
	}

	var err error
	if crit.PriceMin, err = parsePriceParam(c.Query("price_min")); err != nil {
		return usecase.Criteria{}, errInvalidListQuery
	}
	if crit.PriceMax, err = parsePriceParam(c.Query("price_max")); err != nil {
		return usecase.Criteria{}, errInvalidListQuery
	}

	if raw := c.Query("pickup"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return usecase.Criteria{}, errInvalidListQuery
		}
		crit.PickupOnly = v
	}

	return crit, nil
}

func parseStatus(s string) (entities.OrderStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return entities.OrderStatusPending, true
	case "completed":
		return entities.OrderStatusCompleted, true
	case "cancelled":
		return entities.OrderStatusCancelled, true
	}
	return "", false
}

func parsePriceParam(raw string) (*float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func sortSpecFromQuery(c *gin.Context) usecase.SortSpec {
	spec := usecase.SortSpec{Key: usecase.SortKeyReceiveDate, Direction: usecase.SortAsc}
	if c.Query("sort") == string(usecase.SortKeyCustomerName) {
		spec.Key = usecase.SortKeyCustomerName
	}
	if c.Query("dir") == string(usecase.SortDesc) {
		spec.Direction = usecase.SortDesc
	}
	return spec
}

// deleteConfirmed reads the confirm flag destructive endpoints require.
func deleteConfirmed(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && v
}
