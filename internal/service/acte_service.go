package service

import (
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/policy"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ActeRepository interface {
	FindByClientID(clientID int) ([]*entity.ActeJuridique, error)
	FindByID(id int) (*entity.ActeJuridique, error)
	Save(acte *entity.ActeJuridique) error
	Delete(acte *entity.ActeJuridique) error
}

type DefaultActeService struct {
	ActeRepo   ActeRepository
	ClientRepo ClientRepository
	Policy     *policy.ClientPolicy
	Validate   *validator.Validate
}

func NewActeService(
	acteRepo ActeRepository,
	clientRepo ClientRepository,
	clientPolicy *policy.ClientPolicy,
	validate *validator.Validate,
) *DefaultActeService {
	return &DefaultActeService{
		ActeRepo:   acteRepo,
		ClientRepo: clientRepo,
		Policy:     clientPolicy,
		Validate:   validate,
	}
}

func (s *DefaultActeService) GetActesByClient(clientId int) ([]*contract.ActeResponse, apierror.ErrorResponse) {
	client, err := s.ClientRepo.FindByID(clientId)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", clientId, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.NotFoundError
	}

	actes, err := s.ActeRepo.FindByClientID(clientId)
	if err != nil {
		log.Errorf("failed to fetch actes for client %d: %v", clientId, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ActeResponse, len(actes))
	for i, acte := range actes {
		resp[i] = toActeResponse(acte)
	}
	return resp, nil
}

func (s *DefaultActeService) GetActeByID(acteId int) (*contract.ActeResponse, apierror.ErrorResponse) {
	acte, apierr := s.fetchActe(acteId)
	if apierr != nil {
		return nil, apierr
	}
	return toActeResponse(acte), nil
}

func (s *DefaultActeService) CreateActe(actor *entity.User, clientId int, req *contract.ActeRequest) (*contract.ActeResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanManage(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	client, err := s.ClientRepo.FindByID(clientId)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", clientId, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.NotFoundError
	}

	now := utils.NowUTC()
	acte := &entity.ActeJuridique{
		ClientID:               clientId,
		Type:                   entity.ActeType(req.Type),
		Statut:                 "brouillon",
		DateAG:                 req.DateAG,
		HeureAG:                req.HeureAG,
		LieuAG:                 req.LieuAG,
		ExerciceClos:           req.ExerciceClos,
		ResultatExercice:       req.ResultatExercice,
		AffectationResultat:    entity.AffectationResultat(req.AffectationResultat),
		MontantDividendes:      req.MontantDividendes,
		MontantReserves:        req.MontantReserves,
		MontantReport:          req.MontantReport,
		QuitusPresident:        true,
		VotesPourComptes:       req.VotesPourComptes,
		VotesContreComptes:     req.VotesContreComptes,
		VotesAbstentionComptes: req.VotesAbstentionComptes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if req.QuitusPresident != nil {
		acte.QuitusPresident = *req.QuitusPresident
	}

	if err := s.ActeRepo.Save(acte); err != nil {
		log.Errorf("failed to save acte: %v", err)
		return nil, apierror.InternalServerError
	}
	return toActeResponse(acte), nil
}

func (s *DefaultActeService) UpdateActe(actor *entity.User, acteId int, req *contract.UpdateActeRequest) (*contract.ActeResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanManage(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	acte, apierr := s.fetchActe(acteId)
	if apierr != nil {
		return nil, apierr
	}

	if req.Statut != nil {
		acte.Statut = *req.Statut
	}
	if req.DateAG != nil {
		acte.DateAG = *req.DateAG
	}
	if req.HeureAG != nil {
		acte.HeureAG = *req.HeureAG
	}
	if req.LieuAG != nil {
		acte.LieuAG = *req.LieuAG
	}
	if req.ExerciceClos != nil {
		acte.ExerciceClos = *req.ExerciceClos
	}
	if req.ResultatExercice != nil {
		acte.ResultatExercice = req.ResultatExercice
	}
	if req.AffectationResultat != nil {
		acte.AffectationResultat = entity.AffectationResultat(*req.AffectationResultat)
	}
	if req.MontantDividendes != nil {
		acte.MontantDividendes = req.MontantDividendes
	}
	if req.MontantReserves != nil {
		acte.MontantReserves = req.MontantReserves
	}
	if req.MontantReport != nil {
		acte.MontantReport = req.MontantReport
	}
	if req.QuitusPresident != nil {
		acte.QuitusPresident = *req.QuitusPresident
	}
	if req.VotesPourComptes != nil {
		acte.VotesPourComptes = req.VotesPourComptes
	}
	if req.VotesContreComptes != nil {
		acte.VotesContreComptes = *req.VotesContreComptes
	}
	if req.VotesAbstentionComptes != nil {
		acte.VotesAbstentionComptes = *req.VotesAbstentionComptes
	}

	acte.UpdatedAt = utils.NowUTC()
	if err := s.ActeRepo.Save(acte); err != nil {
		log.Errorf("failed to update acte %d: %v", acteId, err)
		return nil, apierror.InternalServerError
	}
	return toActeResponse(acte), nil
}

func (s *DefaultActeService) DeleteActe(actor *entity.User, acteId int) apierror.ErrorResponse {
	if perr := s.Policy.CanManage(actor); perr != nil {
		return perr
	}

	acte, apierr := s.fetchActe(acteId)
	if apierr != nil {
		return apierr
	}

	if err := s.ActeRepo.Delete(acte); err != nil {
		log.Errorf("failed to delete acte %d: %v", acteId, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultActeService) fetchActe(acteId int) (*entity.ActeJuridique, apierror.ErrorResponse) {
	acte, err := s.ActeRepo.FindByID(acteId)
	if err != nil {
		log.Errorf("failed to fetch acte %d: %v", acteId, err)
		return nil, apierror.InternalServerError
	}

	if acte == nil {
		return nil, apierror.NotFoundError
	}
	return acte, nil
}

func toActeResponse(acte *entity.ActeJuridique) *contract.ActeResponse {
	return &contract.ActeResponse{
		ID:                     acte.ID,
		ClientID:               acte.ClientID,
		Type:                   string(acte.Type),
		Statut:                 acte.Statut,
		DateAG:                 acte.DateAG,
		HeureAG:                acte.HeureAG,
		LieuAG:                 acte.LieuAG,
		ExerciceClos:           acte.ExerciceClos,
		ResultatExercice:       acte.ResultatExercice,
		AffectationResultat:    string(acte.AffectationResultat),
		MontantDividendes:      acte.MontantDividendes,
		MontantReserves:        acte.MontantReserves,
		MontantReport:          acte.MontantReport,
		QuitusPresident:        acte.QuitusPresident,
		VotesPourComptes:       acte.VotesPourComptes,
		VotesContreComptes:     acte.VotesContreComptes,
		VotesAbstentionComptes: acte.VotesAbstentionComptes,
		CreatedAt:              utils.FormatEpoch(acte.CreatedAt),
		UpdatedAt:              utils.FormatEpoch(acte.UpdatedAt),
	}
}
