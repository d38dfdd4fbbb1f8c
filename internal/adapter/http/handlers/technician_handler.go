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

var errInvalidTechnicianPayload = pkg.NewDomainErrorSimple("INVALID_TECHNICIAN_INPUT", "Invalid technician payload", http.StatusBadRequest)

type TechnicianHandler struct {
	usecase usecase.ITechnicianUseCase
}

func NewTechnicianHandler(uc usecase.ITechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{usecase: uc}
}

func (h *TechnicianHandler) Create(c *gin.Context) {
	var payload request.TechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTechnician(created))
}

func (h *TechnicianHandler) GetByID(c *gin.Context) {
	technician, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(technician))
}

func (h *TechnicianHandler) List(c *gin.Context) {
	technicians, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTechnicians(technicians))
}

func (h *TechnicianHandler) Update(c *gin.Context) {
	var payload request.TechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(updated))
}

func (h *TechnicianHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapTechnicianError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID), errors.Is(err, usecase.ErrInvalidTechnicianReq):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
