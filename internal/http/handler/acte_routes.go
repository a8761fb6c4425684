package handler

import (
	"net/http"
	"strconv"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type ActeService interface {
	GetActesByClient(clientId int) ([]*contract.ActeResponse, apierror.ErrorResponse)
	GetActeByID(acteId int) (*contract.ActeResponse, apierror.ErrorResponse)
	CreateActe(actor *entity.User, clientId int, req *contract.ActeRequest) (*contract.ActeResponse, apierror.ErrorResponse)
	UpdateActe(actor *entity.User, acteId int, req *contract.UpdateActeRequest) (*contract.ActeResponse, apierror.ErrorResponse)
	DeleteActe(actor *entity.User, acteId int) apierror.ErrorResponse
}

type DefaultActeRoute struct {
	ActeService ActeService
}

func NewActeDefault(acteService ActeService) *DefaultActeRoute {
	return &DefaultActeRoute{ActeService: acteService}
}

func (h *DefaultActeRoute) GetActes(c echo.Context) error {
	clientId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	actes, apierr := h.ActeService.GetActesByClient(clientId)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"actes": actes}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultActeRoute) GetActe(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	acte, apierr := h.ActeService.GetActeByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, acte)
}

func (h *DefaultActeRoute) CreateActe(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	clientId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.ActeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	acte, apierr := h.ActeService.CreateActe(user, clientId, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, acte)
}

func (h *DefaultActeRoute) UpdateActe(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateActeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	acte, apierr := h.ActeService.UpdateActe(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, acte)
}

func (h *DefaultActeRoute) DeleteActe(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := h.ActeService.DeleteActe(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
