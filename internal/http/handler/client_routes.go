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

// ClientService accepts *entity.User so permissions are checked without
// hitting the DB again.
type ClientService interface {
	GetAllClients() ([]*contract.ClientResponse, apierror.ErrorResponse)
	GetClientByID(clientId int) (*contract.ClientResponse, apierror.ErrorResponse)
	CreateClient(actor *entity.User, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	UpdateClient(actor *entity.User, clientId int, req *contract.UpdateClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	DeleteClient(actor *entity.User, clientId int) apierror.ErrorResponse
	GetAssocies(clientId int) ([]*contract.AssocieResponse, apierror.ErrorResponse)
	AddAssocie(actor *entity.User, clientId int, req *contract.AssocieRequest) (*contract.AssocieResponse, apierror.ErrorResponse)
	UpdateAssocie(actor *entity.User, clientId, associeId int, req *contract.AssocieRequest) (*contract.AssocieResponse, apierror.ErrorResponse)
	DeleteAssocie(actor *entity.User, clientId, associeId int) apierror.ErrorResponse
}

type DefaultClientRoute struct {
	ClientService ClientService
}

func NewClientDefault(clientService ClientService) *DefaultClientRoute {
	return &DefaultClientRoute{ClientService: clientService}
}

func (h *DefaultClientRoute) GetClients(c echo.Context) error {
	clients, apierr := h.ClientService.GetAllClients()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"clients": clients}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultClientRoute) GetClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	client, apierr := h.ClientService.GetClientByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, client)
}

func (h *DefaultClientRoute) CreateClient(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	client, apierr := h.ClientService.CreateClient(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, client)
}

func (h *DefaultClientRoute) UpdateClient(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	client, apierr := h.ClientService.UpdateClient(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, client)
}

func (h *DefaultClientRoute) DeleteClient(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := h.ClientService.DeleteClient(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultClientRoute) GetAssocies(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	associes, apierr := h.ClientService.GetAssocies(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"associes": associes}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultClientRoute) AddAssocie(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.AssocieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	associe, apierr := h.ClientService.AddAssocie(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, associe)
}

func (h *DefaultClientRoute) UpdateAssocie(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	clientId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	associeId, err := strconv.Atoi(c.Param("associeId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("associeId", "int"))
	}

	var req contract.AssocieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	associe, apierr := h.ClientService.UpdateAssocie(user, clientId, associeId, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, associe)
}

func (h *DefaultClientRoute) DeleteAssocie(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	clientId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	associeId, err := strconv.Atoi(c.Param("associeId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("associeId", "int"))
	}

	if apierr := h.ClientService.DeleteAssocie(user, clientId, associeId); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
