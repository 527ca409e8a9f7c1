package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "tiembanh_mousse/internal/adapter/http/dto/request"
	response "tiembanh_mousse/internal/adapter/http/dto/response"
	"tiembanh_mousse/internal/usecase"
	"tiembanh_mousse/pkg"
)

var errInvalidPreOrderPayload = pkg.NewDomainErrorSimple("INVALID_PREORDER_INPUT", "Invalid pre-order payload", http.StatusBadRequest)

// PreOrderHandler mirrors OrderHandler over the pre-order collection.
// Pre-orders reuse the derived order view model, so list responses share the
// same shape.

type PreOrderHandler struct {
	usecase usecase.IPreOrderUseCase
}

func NewPreOrderHandler(uc usecase.IPreOrderUseCase) *PreOrderHandler {
	return &PreOrderHandler{usecase: uc}
}

func (h *PreOrderHandler) ListPreOrders(c *gin.Context) {
	crit, err := criteriaFromQuery(c)
	if err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	preOrders, err := h.usecase.List(crit, sortSpecFromQuery(c))
	if err != nil {
		appErr := mapPreOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDerivedOrders(preOrders))
}

func (h *PreOrderHandler) GetPreOrder(c *gin.Context) {
	preOrder, err := h.usecase.Get(c.Param("id"))
	if err != nil {
		appErr := mapPreOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDerivedOrder(preOrder))
}

func (h *PreOrderHandler) CreatePreOrder(c *gin.Context) {
	var payload request.PreOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreOrderPayload.HTTPStatus, errInvalidPreOrderPayload.ToHTTPError())
		return
	}

	preOrder, err := h.usecase.Create(c.Request.Context(), payload.ToInput(""))
	if err != nil {
		appErr := mapPreOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDerivedOrder(preOrder))
}

func (h *PreOrderHandler) UpdatePreOrder(c *gin.Context) {
	id := c.Param("id")

	var payload request.PreOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreOrderPayload.HTTPStatus, errInvalidPreOrderPayload.ToHTTPError())
		return
	}

	preOrder, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput(id))
	if err != nil {
		appErr := mapPreOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDerivedOrder(preOrder))
}

func (h *PreOrderHandler) UpdatePreOrderStatus(c *gin.Context) {
	var payload request.PreOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreOrderPayload.HTTPStatus, errInvalidPreOrderPayload.ToHTTPError())
		return
	}

	preOrder, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapPreOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDerivedOrder(preOrder))
}

func (h *PreOrderHandler) DeletePreOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), deleteConfirmed(c)); err != nil {
		appErr := mapPreOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPreOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_CONFIRMED", "Delete requires confirm=true", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPreOrderNotFound):
		return pkg.NewDomainErrorSimple("PREORDER_NOT_FOUND", "Pre-order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreLoadTimeout):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Pre-order snapshot not loaded yet", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
