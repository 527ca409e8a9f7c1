package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tiembanh_mousse/internal/domain/entities"
	"tiembanh_mousse/internal/usecase"
	"tiembanh_mousse/pkg"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_RECORD_INPUT", "Invalid record payload", http.StatusBadRequest)

// CatalogHandler serves the flat customer/product/employee collections. The
// three share one CRUD shape, so the handler is generic over the entity and
// only the route wiring differs.
type CatalogHandler[T any] struct {
	usecase *usecase.CatalogUseCase[T]
	setID   func(*T, string)
}

func NewCustomerHandler(uc *usecase.CatalogUseCase[entities.Customer]) *CatalogHandler[entities.Customer] {
	return &CatalogHandler[entities.Customer]{
		usecase: uc,
		setID:   func(c *entities.Customer, id string) { c.ID = id },
	}
}

func NewProductHandler(uc *usecase.CatalogUseCase[entities.Product]) *CatalogHandler[entities.Product] {
	return &CatalogHandler[entities.Product]{
		usecase: uc,
		setID:   func(p *entities.Product, id string) { p.ID = id },
	}
}

func NewEmployeeHandler(uc *usecase.CatalogUseCase[entities.Employee]) *CatalogHandler[entities.Employee] {
	return &CatalogHandler[entities.Employee]{
		usecase: uc,
		setID:   func(e *entities.Employee, id string) { e.ID = id },
	}
}

func (h *CatalogHandler[T]) ListRecords(c *gin.Context) {
	items, err := h.usecase.List()
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *CatalogHandler[T]) GetRecord(c *gin.Context) {
	item, err := h.usecase.Get(c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler[T]) CreateRecord(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), item)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// UpdateRecord fully replaces the record at the path id; a conflicting id in
// the payload is overridden.
func (h *CatalogHandler[T]) UpdateRecord(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	h.setID(&item, c.Param("id"))

	saved, err := h.usecase.Save(c.Request.Context(), item)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *CatalogHandler[T]) DeleteRecord(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), deleteConfirmed(c)); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_CONFIRMED", "Delete requires confirm=true", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreLoadTimeout):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Snapshot not loaded yet", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
