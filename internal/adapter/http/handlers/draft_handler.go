package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tiembanh_mousse/internal/usecase"
	"tiembanh_mousse/pkg"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Draft payload must be a JSON document", http.StatusBadRequest)
	errDraftNotFound       = pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "No draft saved for this namespace", http.StatusNotFound)
)

// DraftHandler persists in-progress edits keyed by namespace ("new" or an
// order id) so a half-filled form survives a page reload.

type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

// GetDraft returns the saved payload verbatim; a missing or corrupt draft is
// a 404, never an error page.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	payload, err := h.usecase.Load(c.Request.Context(), c.Param("namespace"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if payload == nil {
		c.JSON(errDraftNotFound.HTTPStatus, errDraftNotFound.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

func (h *DraftHandler) SaveDraft(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Save(c.Request.Context(), c.Param("namespace"), body); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("namespace")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftNamespace):
		return pkg.NewDomainErrorSimple("INVALID_DRAFT_NAMESPACE", "Invalid draft namespace", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDraftPayload):
		return errInvalidDraftPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
