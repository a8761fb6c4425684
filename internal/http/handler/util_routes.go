package handler

import (
	"net/http"
	"strings"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type UtilService interface {
	GetEntrepriseBySiret(actor *entity.User, siret string) (*contract.EntrepriseResponse, apierror.ErrorResponse)
}

type DefaultUtilRoute struct {
	UtilService UtilService
}

func NewUtilRoute(utilService UtilService) *DefaultUtilRoute {
	return &DefaultUtilRoute{UtilService: utilService}
}

func (u *DefaultUtilRoute) GetEntreprise(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	siret := strings.TrimSpace(c.Param("siret"))
	if !utils.IsSiretValid(siret) {
		apierr := apierror.InvalidSiretError
		return c.JSON(apierr.Code(), apierr)
	}

	entreprise, apierr := u.UtilService.GetEntrepriseBySiret(user, siret)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, entreprise)
}
