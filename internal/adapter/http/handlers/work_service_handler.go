package handlers

import (
	"errors"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkServicePayload = pkg.NewDomainErrorSimple("INVALID_WORK_SERVICE_INPUT", "Invalid work service payload", http.StatusBadRequest)

// WorkServiceHandler handles HTTP requests for the labor catalog.
type WorkServiceHandler struct {
	usecase usecase.IWorkServiceUseCase
}

func NewWorkServiceHandler(uc usecase.IWorkServiceUseCase) *WorkServiceHandler {
	return &WorkServiceHandler{usecase: uc}
}

func (h *WorkServiceHandler) Create(c *gin.Context) {
	var payload request.WorkServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkServicePayload.HTTPStatus, errInvalidWorkServicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapWorkServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkService(created))
}

func (h *WorkServiceHandler) GetByID(c *gin.Context) {
	ws, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkService(ws))
}

func (h *WorkServiceHandler) List(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapWorkServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkServices(services))
}

func (h *WorkServiceHandler) Update(c *gin.Context) {
	var payload request.WorkServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkServicePayload.HTTPStatus, errInvalidWorkServicePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapWorkServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkService(updated))
}

func (h *WorkServiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWorkServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkServiceID), errors.Is(err, usecase.ErrInvalidWorkServiceReq):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkServiceNotFound):
		return pkg.NewDomainErrorSimple("WORK_SERVICE_NOT_FOUND", "Work service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
