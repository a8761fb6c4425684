package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/docgen"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/events"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/policy"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/infrastructure/aws/storage"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/uid"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type DocumentRepository interface {
	FindByClientID(clientID int) ([]*entity.DocumentGenere, error)
	FindByID(id int64) (*entity.DocumentGenere, error)
	Save(doc *entity.DocumentGenere) error
	Delete(doc *entity.DocumentGenere) error
}

type DefaultDocumentService struct {
	DocRepo    DocumentRepository
	ActeRepo   ActeRepository
	ClientRepo ClientRepository
	WSService  *WebSocketService
	S3         storage.S3Client
	Policy     *policy.ClientPolicy

	publicBaseURL string
}

func NewDocumentService(
	docRepo DocumentRepository,
	acteRepo ActeRepository,
	clientRepo ClientRepository,
	wsService *WebSocketService,
	s3 storage.S3Client,
	clientPolicy *policy.ClientPolicy,
) *DefaultDocumentService {
	return &DefaultDocumentService{
		DocRepo:       docRepo,
		ActeRepo:      acteRepo,
		ClientRepo:    clientRepo,
		WSService:     wsService,
		S3:            s3,
		Policy:        clientPolicy,
		publicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	}
}

func (s *DefaultDocumentService) GetDocumentsByClient(clientId int) ([]*contract.DocumentResponse, apierror.ErrorResponse) {
	client, err := s.ClientRepo.FindByID(clientId)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", clientId, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.NotFoundError
	}

	docs, err := s.DocRepo.FindByClientID(clientId)
	if err != nil {
		log.Errorf("failed to fetch documents for client %d: %v", clientId, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.DocumentResponse, len(docs))
	for i, doc := range docs {
		resp[i] = toDocumentResponse(doc)
	}
	return resp, nil
}

func (s *DefaultDocumentService) DeleteDocument(actor *entity.User, docId int64) apierror.ErrorResponse {
	if perr := s.Policy.CanDeleteDocuments(actor); perr != nil {
		return perr
	}

	doc, err := s.DocRepo.FindByID(docId)
	if err != nil {
		log.Errorf("failed to fetch document %d: %v", docId, err)
		return apierror.InternalServerError
	}

	if doc == nil {
		return apierror.NotFoundError
	}

	if doc.S3Key != "" {
		if err := s.S3.DeleteFile(doc.S3Key); err != nil {
			// The row is the source of truth; a dangling object is swept later.
			log.Errorf("failed to delete document object %s: %v", doc.S3Key, err)
		}
	}

	if err := s.DocRepo.Delete(doc); err != nil {
		log.Errorf("failed to delete document %d: %v", docId, err)
		return apierror.InternalServerError
	}
	return nil
}

// GeneratePVAGOrdinaire runs the full pipeline for an acte: snapshot the
// client file, validate, assemble, render, then upload and record. A failed
// upload degrades to returning the bytes directly so the operator still gets
// their document.
func (s *DefaultDocumentService) GeneratePVAGOrdinaire(ctx context.Context, actor *entity.User, acteId int) (*contract.GenerationResult, apierror.ErrorResponse) {
	if perr := s.Policy.CanGenerateDocuments(actor); perr != nil {
		return nil, perr
	}

	acte, err := s.ActeRepo.FindByID(acteId)
	if err != nil {
		log.Errorf("failed to fetch acte %d: %v", acteId, err)
		return nil, apierror.InternalServerError
	}

	if acte == nil {
		return nil, apierror.NotFoundError
	}

	if acte.Type != entity.ActeAGOrdinaire {
		return nil, apierror.WrongActeTypeError
	}

	client, err := s.ClientRepo.FindByID(acte.ClientID)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", acte.ClientID, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.NotFoundError
	}

	data := toAGOrdinaireData(acte, client)

	if outcome := docgen.ValidateAGOrdinaire(data); !outcome.Valid() {
		return nil, toValidationError(outcome)
	}

	blocks, err := docgen.BuildPVAGOrdinaire(data)
	if err != nil {
		var integrity *docgen.IntegrityError
		if errors.As(err, &integrity) {
			return nil, apierror.NewDataIntegrityError(integrity.Reason)
		}
		log.Errorf("failed to assemble PV for acte %d: %v", acteId, err)
		return nil, apierror.InternalServerError
	}

	docBytes, err := docgen.Render(blocks)
	if err != nil {
		log.Errorf("failed to render PV for acte %d: %v", acteId, err)
		return nil, apierror.TechnicalGenerationError
	}

	fileName := pvFileName(client.NomEntreprise, acte.DateAG)
	result := &contract.GenerationResult{
		FileName: fileName,
		Data:     docBytes,
	}

	key, uploadErr := s.S3.UploadFile(docBytes, uuid.NewString()+"_"+fileName)
	if uploadErr != nil {
		// Degraded mode: the handler streams the bytes instead.
		log.Errorf("failed to upload PV for acte %d, falling back to direct download: %v", acteId, uploadErr)
		return result, nil
	}

	doc := &entity.DocumentGenere{
		ID:           uid.Generate(),
		ClientID:     client.ID,
		ActeID:       acte.ID,
		TypeDocument: string(entity.ActeAGOrdinaire),
		NomFichier:   fileName,
		S3Key:        key,
		URL:          s.publicBaseURL + "/" + key,
		TailleBytes:  len(docBytes),
		GeneratedBy:  actor.ID,
		CreatedAt:    utils.NowUTC(),
	}

	if err := s.DocRepo.Save(doc); err != nil {
		// The document exists in storage, history is best-effort.
		log.Errorf("failed to record generated document for acte %d: %v", acteId, err)
	}

	resp := toDocumentResponse(doc)
	result.Document = resp
	result.URL = doc.URL

	go s.WSService.Broadcast(context.Background(), &events.DocumentGenerated{DocumentResponse: resp})
	return result, nil
}

// toAGOrdinaireData snapshots the persisted records into the shape the
// assembler consumes. Formatting (French date, "HHhMM" time) happens here,
// once, so docgen never sees storage conventions.
func toAGOrdinaireData(acte *entity.ActeJuridique, client *entity.Client) *docgen.AGOrdinaireData {
	associes := make([]docgen.Participant, len(client.Associes))
	totalActions := 0
	for i, a := range client.Associes {
		associes[i] = docgen.Participant{
			Nom:       a.Nom,
			Prenom:    a.Prenom,
			NbActions: a.NombreActions,
			Present:   a.Present,
		}
		totalActions += a.NombreActions
	}

	lieu := acte.LieuAG
	if lieu == "" {
		lieu = "au siège social"
	}

	// A missing tally means a unanimous show of hands, the common case for
	// closely held companies.
	votesPour := totalActions - acte.VotesContreComptes - acte.VotesAbstentionComptes
	if acte.VotesPourComptes != nil {
		votesPour = *acte.VotesPourComptes
	}

	return &docgen.AGOrdinaireData{
		Denomination:   client.NomEntreprise,
		FormeJuridique: string(client.FormeJuridique),
		CapitalSocial:  client.CapitalSocial,
		SiegeSocial:    client.Adresse,
		RCS:            rcsLabel(client),

		DateAG:       formatDateAG(acte.DateAG),
		HeureAG:      docgen.FormatHeureFR(acte.HeureAG),
		LieuAG:       lieu,
		ExerciceClos: acte.ExerciceClos,

		ResultatExercice:  acte.ResultatExercice,
		Affectation:       docgen.AffectationResultat(acte.AffectationResultat),
		MontantDividendes: acte.MontantDividendes,
		MontantReserves:   acte.MontantReserves,
		MontantReport:     acte.MontantReport,

		PresidentNom:    client.PresidentNom,
		PresidentPrenom: client.PresidentPrenom,
		Associes:        associes,

		QuitusPresident: acte.QuitusPresident,
		VotesPour:       votesPour,
		VotesContre:     acte.VotesContreComptes,
		VotesAbstention: acte.VotesAbstentionComptes,
	}
}

func rcsLabel(client *entity.Client) string {
	switch {
	case client.VilleRCS != "" && client.Siret != "":
		return client.VilleRCS + " " + client.Siret
	case client.Siret != "":
		return client.Siret
	case client.VilleRCS != "":
		return client.VilleRCS
	default:
		return "en cours d'immatriculation"
	}
}

func formatDateAG(dateAG string) string {
	t, err := time.Parse("2006-01-02", dateAG)
	if err != nil {
		// Alternative storage format; contract validation normally keeps
		// dates ISO, so raw passthrough is the last resort.
		return dateAG
	}
	return docgen.FormatDateFR(t)
}

func pvFileName(denomination, dateAG string) string {
	date := dateAG
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("PV_AG_Ordinaire_%s_%s.docx", utils.SafeFileName(denomination), date)
}

func toValidationError(outcome docgen.Outcome) *apierror.StructuredError {
	verr := apierror.NewStructured(http.StatusBadRequest)
	for _, p := range outcome.Problems {
		verr.Add(p.Code, p.Message)
	}
	return verr
}

func toDocumentResponse(doc *entity.DocumentGenere) *contract.DocumentResponse {
	return &contract.DocumentResponse{
		ID:           doc.ID,
		ClientID:     doc.ClientID,
		ActeID:       doc.ActeID,
		TypeDocument: doc.TypeDocument,
		NomFichier:   doc.NomFichier,
		URL:          doc.URL,
		TailleBytes:  doc.TailleBytes,
		CreatedAt:    utils.FormatEpoch(doc.CreatedAt),
	}
}
