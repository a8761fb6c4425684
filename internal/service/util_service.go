package service

import (
	"context"
	"errors"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/infrastructure/pappers"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

type EntrepriseRepository interface {
	Save(entreprise *entity.Entreprise) error
	FindBySiret(siret string) (*entity.Entreprise, error)
}

type MiscService struct {
	PappersClient  *pappers.Client
	EntrepriseRepo EntrepriseRepository
}

func NewMiscService(client *pappers.Client, entrepriseRepo EntrepriseRepository) *MiscService {
	return &MiscService{
		PappersClient:  client,
		EntrepriseRepo: entrepriseRepo,
	}
}

func (u *MiscService) GetEntrepriseBySiret(actor *entity.User, siret string) (*contract.EntrepriseResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionPerformLookup) {
		return nil, apierror.UserMissingPermsError
	}

	// Luhn check first: malformed SIRETs never hit the registry.
	if !utils.IsSiretValid(siret) {
		return nil, apierror.InvalidSiretError
	}

	entreprise, fromCache, err := u.findEntreprise(siret)
	if err != nil {
		return nil, err
	}
	return toEntrepriseResp(entreprise, fromCache), nil
}

// findEntreprise is a utility function that will try to resolve the SIRET into a company.
// It returns the company, a boolean (true = cached, false = API fetch) and a possible error response.
func (u *MiscService) findEntreprise(siret string) (*entity.Entreprise, bool, apierror.ErrorResponse) {
	cached, err := u.EntrepriseRepo.FindBySiret(siret)
	if err != nil {
		log.Errorf("failed to find entreprise by siret %s: %v", siret, err)
		return nil, false, apierror.InternalServerError
	}

	// If we have some kind of cache
	if cached != nil {
		if cached.Found {
			return cached, true, nil
		} else {
			return nil, false, apierror.NotFoundError
		}
	}

	// Cache miss
	apiEntreprise, apierr := u.fetchFromAPI(siret)
	if apierr != nil {
		return nil, false, apierr
	}

	err = u.EntrepriseRepo.Save(apiEntreprise)
	if err != nil {
		// We don't return a 500 here, since we have the data we need
		// and only the cache has failed. We can just log it and proceed.
		log.Errorf("failed to save entreprise cache for SIRET %s: %v", siret, err)
	}

	return apiEntreprise, false, nil
}

func (u *MiscService) fetchFromAPI(siret string) (*entity.Entreprise, apierror.ErrorResponse) {
	entreprise, err := u.PappersClient.GetBySiret(context.Background(), siret)
	if err != nil {
		if errors.Is(err, pappers.ErrNotFound) {
			u.cacheNegativeResult(siret)
			return nil, apierror.NotFoundError
		}
		log.Errorf("failed to fetch entreprise by siret %s: %v", siret, err)
		return nil, apierror.InternalServerError
	}

	entreprise.Found = true
	entreprise.CachedAt = utils.NowUTC()
	return entreprise, nil
}

func (u *MiscService) cacheNegativeResult(siret string) {
	empty := &entity.Entreprise{
		Siret:    siret,
		Found:    false,
		CachedAt: utils.NowUTC(),
	}
	_ = u.EntrepriseRepo.Save(empty)
}

func toEntrepriseResp(e *entity.Entreprise, cached bool) *contract.EntrepriseResponse {
	resp := &contract.EntrepriseResponse{
		Siret:              e.Siret,
		NomEntreprise:      e.NomEntreprise,
		FormeJuridique:     e.FormeJuridique,
		CategorieJuridique: e.CategorieJuridique,
		CodeNaf:            e.CodeNaf,
		DateCreation:       e.DateCreation,
		CapitalSocial:      e.CapitalSocial,
		ObjetSocial:        e.ObjetSocial,
		Statut:             e.Statut,
		Cached:             cached,
	}

	if e.AdresseLigne != "" || e.Ville != "" {
		resp.Adresse = &contract.EntrepriseAdresse{
			Ligne:      e.AdresseLigne,
			CodePostal: e.CodePostal,
			Ville:      e.Ville,
			Pays:       e.Pays,
		}
	}
	return resp
}
