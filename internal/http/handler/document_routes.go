package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type DocumentService interface {
	GetDocumentsByClient(clientId int) ([]*contract.DocumentResponse, apierror.ErrorResponse)
	DeleteDocument(actor *entity.User, docId int64) apierror.ErrorResponse
	GeneratePVAGOrdinaire(ctx context.Context, actor *entity.User, acteId int) (*contract.GenerationResult, apierror.ErrorResponse)
}

type DefaultDocumentRoute struct {
	DocService DocumentService
}

func NewDocumentDefault(docService DocumentService) *DefaultDocumentRoute {
	return &DefaultDocumentRoute{DocService: docService}
}

func (h *DefaultDocumentRoute) GetDocuments(c echo.Context) error {
	clientId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	docs, apierr := h.DocService.GetDocumentsByClient(clientId)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"documents": docs}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultDocumentRoute) DeleteDocument(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	if apierr := h.DocService.DeleteDocument(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

// GenerateDocument runs the whole pipeline for an acte. The happy path
// answers JSON with the stored document; if the upload failed the rendered
// file is streamed directly so the operator still gets their PV.
func (h *DefaultDocumentRoute) GenerateDocument(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	acteId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	result, apierr := h.DocService.GeneratePVAGOrdinaire(c.Request().Context(), user, acteId)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if result.Uploaded() {
		return c.JSON(http.StatusCreated, result)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+result.FileName+`"`)
	return c.Blob(http.StatusOK, contract.DocxMIME, result.Data)
}
