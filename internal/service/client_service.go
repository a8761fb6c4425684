package service

import (
	"context"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/events"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/policy"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ClientRepository interface {
	FindAll() ([]*entity.Client, error)
	FindByID(id int) (*entity.Client, error)
	Save(client *entity.Client) error
	Delete(client *entity.Client) error
}

type AssocieRepository interface {
	FindByClientID(clientID int) ([]*entity.Associe, error)
	FindByID(id int) (*entity.Associe, error)
	Save(associe *entity.Associe) error
	Delete(associe *entity.Associe) error
}

type DefaultClientService struct {
	ClientRepo  ClientRepository
	AssocieRepo AssocieRepository
	WSService   *WebSocketService
	Policy      *policy.ClientPolicy
	Validate    *validator.Validate
}

func NewClientService(
	clientRepo ClientRepository,
	associeRepo AssocieRepository,
	wsService *WebSocketService,
	clientPolicy *policy.ClientPolicy,
	validate *validator.Validate,
) *DefaultClientService {
	return &DefaultClientService{
		ClientRepo:  clientRepo,
		AssocieRepo: associeRepo,
		WSService:   wsService,
		Policy:      clientPolicy,
		Validate:    validate,
	}
}

func (s *DefaultClientService) GetAllClients() ([]*contract.ClientResponse, apierror.ErrorResponse) {
	clients, err := s.ClientRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch clients: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ClientResponse, len(clients))
	for i, client := range clients {
		resp[i] = toClientResponse(client)
	}
	return resp, nil
}

func (s *DefaultClientService) GetClientByID(clientId int) (*contract.ClientResponse, apierror.ErrorResponse) {
	client, apierr := s.fetchClient(clientId)
	if apierr != nil {
		return nil, apierr
	}
	return toClientResponse(client), nil
}

func (s *DefaultClientService) CreateClient(actor *entity.User, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanManage(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	client := &entity.Client{
		CreatedByID:     actor.ID,
		NomEntreprise:   req.NomEntreprise,
		FormeJuridique:  entity.FormeJuridique(req.FormeJuridique),
		CapitalSocial:   req.CapitalSocial,
		NbActions:       req.NbActions,
		Siret:           req.Siret,
		VilleRCS:        req.VilleRCS,
		Adresse:         req.Adresse,
		Email:           req.Email,
		Telephone:       req.Telephone,
		PresidentNom:    req.PresidentNom,
		PresidentPrenom: req.PresidentPrenom,
		ObjetSocial:     req.ObjetSocial,
		DureeSociete:    req.DureeSociete,
		TypeDossier:     entity.DossierType(req.TypeDossier),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if client.TypeDossier == "" {
		client.TypeDossier = entity.DossierCreation
	}

	if err := s.ClientRepo.Save(client); err != nil {
		log.Errorf("failed to save client: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toClientResponse(client)
	go s.WSService.Broadcast(context.Background(), &events.ClientCreated{ClientResponse: resp})
	return resp, nil
}

func (s *DefaultClientService) UpdateClient(actor *entity.User, clientId int, req *contract.UpdateClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanManage(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	client, apierr := s.fetchClient(clientId)
	if apierr != nil {
		return nil, apierr
	}

	if req.NomEntreprise != nil {
		client.NomEntreprise = *req.NomEntreprise
	}
	if req.FormeJuridique != nil {
		client.FormeJuridique = entity.FormeJuridique(*req.FormeJuridique)
	}
	if req.CapitalSocial != nil {
		client.CapitalSocial = *req.CapitalSocial
	}
	if req.NbActions != nil {
		client.NbActions = *req.NbActions
	}
	if req.Siret != nil {
		client.Siret = *req.Siret
	}
	if req.VilleRCS != nil {
		client.VilleRCS = *req.VilleRCS
	}
	if req.Adresse != nil {
		client.Adresse = *req.Adresse
	}
	if req.PresidentNom != nil {
		client.PresidentNom = *req.PresidentNom
	}
	if req.PresidentPrenom != nil {
		client.PresidentPrenom = *req.PresidentPrenom
	}
	if req.Statut != nil {
		client.Statut = *req.Statut
	}

	client.UpdatedAt = utils.NowUTC()
	if err := s.ClientRepo.Save(client); err != nil {
		log.Errorf("failed to update client %d: %v", clientId, err)
		return nil, apierror.InternalServerError
	}

	resp := toClientResponse(client)
	go s.WSService.Broadcast(context.Background(), &events.ClientUpdated{ClientResponse: resp})
	return resp, nil
}

func (s *DefaultClientService) DeleteClient(actor *entity.User, clientId int) apierror.ErrorResponse {
	if perr := s.Policy.CanDelete(actor); perr != nil {
		return perr
	}

	client, apierr := s.fetchClient(clientId)
	if apierr != nil {
		return apierr
	}

	if err := s.ClientRepo.Delete(client); err != nil {
		log.Errorf("failed to delete client %d: %v", clientId, err)
		return apierror.InternalServerError
	}

	go s.WSService.Broadcast(context.Background(), &events.ClientDeleted{ClientID: int64(client.ID)})
	return nil
}

func (s *DefaultClientService) GetAssocies(clientId int) ([]*contract.AssocieResponse, apierror.ErrorResponse) {
	if _, apierr := s.fetchClient(clientId); apierr != nil {
		return nil, apierr
	}

	associes, err := s.AssocieRepo.FindByClientID(clientId)
	if err != nil {
		log.Errorf("failed to fetch associes for client %d: %v", clientId, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.AssocieResponse, len(associes))
	for i, a := range associes {
		resp[i] = toAssocieResponse(a)
	}
	return resp, nil
}

func (s *DefaultClientService) AddAssocie(actor *entity.User, clientId int, req *contract.AssocieRequest) (*contract.AssocieResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanManage(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if _, apierr := s.fetchClient(clientId); apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	associe := &entity.Associe{
		ClientID:         clientId,
		Civilite:         req.Civilite,
		Nom:              req.Nom,
		Prenom:           req.Prenom,
		NombreActions:    req.NombreActions,
		MontantApport:    req.MontantApport,
		TypeApport:       req.TypeApport,
		Present:          true,
		President:        req.President,
		DirecteurGeneral: req.DirecteurGeneral,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if req.Present != nil {
		associe.Present = *req.Present
	}

	if err := s.AssocieRepo.Save(associe); err != nil {
		log.Errorf("failed to save associe: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAssocieResponse(associe), nil
}

func (s *DefaultClientService) UpdateAssocie(actor *entity.User, clientId, associeId int, req *contract.AssocieRequest) (*contract.AssocieResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanManage(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	associe, apierr := s.fetchAssocie(clientId, associeId)
	if apierr != nil {
		return nil, apierr
	}

	associe.Civilite = req.Civilite
	associe.Nom = req.Nom
	associe.Prenom = req.Prenom
	associe.NombreActions = req.NombreActions
	associe.MontantApport = req.MontantApport
	associe.TypeApport = req.TypeApport
	associe.President = req.President
	associe.DirecteurGeneral = req.DirecteurGeneral
	if req.Present != nil {
		associe.Present = *req.Present
	}

	associe.UpdatedAt = utils.NowUTC()
	if err := s.AssocieRepo.Save(associe); err != nil {
		log.Errorf("failed to update associe %d: %v", associeId, err)
		return nil, apierror.InternalServerError
	}
	return toAssocieResponse(associe), nil
}

func (s *DefaultClientService) DeleteAssocie(actor *entity.User, clientId, associeId int) apierror.ErrorResponse {
	if perr := s.Policy.CanManage(actor); perr != nil {
		return perr
	}

	associe, apierr := s.fetchAssocie(clientId, associeId)
	if apierr != nil {
		return apierr
	}

	if err := s.AssocieRepo.Delete(associe); err != nil {
		log.Errorf("failed to delete associe %d: %v", associeId, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultClientService) fetchClient(clientId int) (*entity.Client, apierror.ErrorResponse) {
	client, err := s.ClientRepo.FindByID(clientId)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", clientId, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.NotFoundError
	}
	return client, nil
}

func (s *DefaultClientService) fetchAssocie(clientId, associeId int) (*entity.Associe, apierror.ErrorResponse) {
	associe, err := s.AssocieRepo.FindByID(associeId)
	if err != nil {
		log.Errorf("failed to fetch associe %d: %v", associeId, err)
		return nil, apierror.InternalServerError
	}

	// An associé only exists inside its client's file.
	if associe == nil || associe.ClientID != clientId {
		return nil, apierror.NotFoundError
	}
	return associe, nil
}

func toClientResponse(client *entity.Client) *contract.ClientResponse {
	associes := make([]*contract.AssocieResponse, len(client.Associes))
	for i, a := range client.Associes {
		associes[i] = toAssocieResponse(a)
	}

	return &contract.ClientResponse{
		ID:              client.ID,
		NomEntreprise:   client.NomEntreprise,
		FormeJuridique:  string(client.FormeJuridique),
		CapitalSocial:   client.CapitalSocial,
		NbActions:       client.NbActions,
		Siret:           client.Siret,
		VilleRCS:        client.VilleRCS,
		Adresse:         client.Adresse,
		Ville:           client.Ville,
		Email:           client.Email,
		Telephone:       client.Telephone,
		PresidentNom:    client.PresidentNom,
		PresidentPrenom: client.PresidentPrenom,
		TypeDossier:     string(client.TypeDossier),
		Statut:          client.Statut,
		Associes:        associes,
		CreatedAt:       utils.FormatEpoch(client.CreatedAt),
		UpdatedAt:       utils.FormatEpoch(client.UpdatedAt),
	}
}

func toAssocieResponse(a *entity.Associe) *contract.AssocieResponse {
	return &contract.AssocieResponse{
		ID:               a.ID,
		Civilite:         a.Civilite,
		Nom:              a.Nom,
		Prenom:           a.Prenom,
		NombreActions:    a.NombreActions,
		MontantApport:    a.MontantApport,
		TypeApport:       a.TypeApport,
		Present:          a.Present,
		President:        a.President,
		DirecteurGeneral: a.DirecteurGeneral,
	}
}
