package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/policy"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/uid"
)

type fakeDocRepo struct {
	docs    map[int64]*entity.DocumentGenere
	saved   []*entity.DocumentGenere
	deleted []int64
	saveErr error
}

func (r *fakeDocRepo) FindByClientID(clientID int) ([]*entity.DocumentGenere, error) {
	var out []*entity.DocumentGenere
	for _, d := range r.docs {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocRepo) FindByID(id int64) (*entity.DocumentGenere, error) {
	return r.docs[id], nil
}

func (r *fakeDocRepo) Save(doc *entity.DocumentGenere) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, doc)
	return nil
}

func (r *fakeDocRepo) Delete(doc *entity.DocumentGenere) error {
	r.deleted = append(r.deleted, doc.ID)
	delete(r.docs, doc.ID)
	return nil
}

type fakeActeRepo struct {
	actes map[int]*entity.ActeJuridique
}

func (r *fakeActeRepo) FindByClientID(clientID int) ([]*entity.ActeJuridique, error) {
	return nil, nil
}

func (r *fakeActeRepo) FindByID(id int) (*entity.ActeJuridique, error) {
	return r.actes[id], nil
}

func (r *fakeActeRepo) Save(acte *entity.ActeJuridique) error   { return nil }
func (r *fakeActeRepo) Delete(acte *entity.ActeJuridique) error { return nil }

type fakeClientRepo struct {
	clients map[int]*entity.Client
}

func (r *fakeClientRepo) FindAll() ([]*entity.Client, error)    { return nil, nil }
func (r *fakeClientRepo) FindByID(id int) (*entity.Client, error) { return r.clients[id], nil }
func (r *fakeClientRepo) Save(client *entity.Client) error      { return nil }
func (r *fakeClientRepo) Delete(client *entity.Client) error    { return nil }

type fakeS3 struct {
	uploads   map[string][]byte
	deleted   []string
	uploadErr error
	deleteErr error
}

func (s *fakeS3) UploadFile(data []byte, filename string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	if s.uploads == nil {
		s.uploads = map[string][]byte{}
	}
	key := "documents/" + filename
	s.uploads[key] = data
	return key, nil
}

func (s *fakeS3) DeleteFile(key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

type fakeConnRepo struct{}

func (r *fakeConnRepo) Save(conn *entity.Connection) error                  { return nil }
func (r *fakeConnRepo) Delete(connID string) error                          { return nil }
func (r *fakeConnRepo) FindByUserID(userID int64) ([]string, error)         { return nil, nil }
func (r *fakeConnRepo) FindAll() ([]string, error)                          { return nil, nil }
func (r *fakeConnRepo) FindStale(now, hb int64) ([]*entity.Connection, error) { return nil, nil }
func (r *fakeConnRepo) UpdateHeartbeat(connID string, now int64) error      { return nil }

type fakeGateway struct{}

func (g *fakeGateway) PostToConnection(ctx context.Context, connID string, data interface{}) error {
	return nil
}
func (g *fakeGateway) DeleteConnection(ctx context.Context, connID string) error { return nil }

func ptrf(v float64) *float64 { return &v }

func validActe() *entity.ActeJuridique {
	return &entity.ActeJuridique{
		ID:                  10,
		ClientID:            1,
		Type:                entity.ActeAGOrdinaire,
		DateAG:              "2025-06-30",
		HeureAG:             "14:00",
		ExerciceClos:        "2024",
		ResultatExercice:    ptrf(50000),
		AffectationResultat: entity.AffectationReportNouveau,
		QuitusPresident:     true,
	}
}

func validClient() *entity.Client {
	return &entity.Client{
		ID:             1,
		NomEntreprise:  "Alma Conseil",
		FormeJuridique: entity.FormeSAS,
		CapitalSocial:  10000,
		Adresse:        "12 rue de la Paix, Paris",
		Siret:          "73282932000074",
		VilleRCS:       "Paris",
		PresidentNom:   "Durand",
		PresidentPrenom: "Claire",
		Associes: []*entity.Associe{
			{ID: 1, ClientID: 1, Nom: "Durand", Prenom: "Claire", NombreActions: 600, Present: true},
			{ID: 2, ClientID: 1, Nom: "Morel", Prenom: "Paul", NombreActions: 400, Present: true},
		},
	}
}

func newTestDocumentService(docRepo *fakeDocRepo, acteRepo *fakeActeRepo, clientRepo *fakeClientRepo, s3 *fakeS3) *DefaultDocumentService {
	uid.Init(1)
	ws := NewWebSocketService(&fakeConnRepo{}, &fakeGateway{})
	return NewDocumentService(docRepo, acteRepo, clientRepo, ws, s3, policy.NewClientPolicy())
}

func generator() *entity.User {
	return &entity.User{ID: 100, Permissions: entity.PermissionGenerateDocuments}
}

func TestGeneratePVAGOrdinaire(t *testing.T) {
	docRepo := &fakeDocRepo{docs: map[int64]*entity.DocumentGenere{}}
	acteRepo := &fakeActeRepo{actes: map[int]*entity.ActeJuridique{10: validActe()}}
	clientRepo := &fakeClientRepo{clients: map[int]*entity.Client{1: validClient()}}
	s3 := &fakeS3{}
	svc := newTestDocumentService(docRepo, acteRepo, clientRepo, s3)

	result, cerr := svc.GeneratePVAGOrdinaire(context.Background(), generator(), 10)
	if cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}

	if !result.Uploaded() {
		t.Fatal("expected an uploaded result")
	}
	if !strings.HasPrefix(result.FileName, "PV_AG_Ordinaire_Alma_Conseil_") {
		t.Errorf("unexpected file name %q", result.FileName)
	}
	if !strings.HasSuffix(result.FileName, ".docx") {
		t.Errorf("file name %q missing .docx extension", result.FileName)
	}
	if !bytes.HasPrefix(result.Data, []byte("PK")) {
		t.Error("rendered document is not a zip archive")
	}
	if len(docRepo.saved) != 1 {
		t.Fatalf("expected 1 saved document, got %d", len(docRepo.saved))
	}
	saved := docRepo.saved[0]
	if saved.GeneratedBy != 100 {
		t.Errorf("GeneratedBy = %d, want 100", saved.GeneratedBy)
	}
	if saved.TailleBytes != len(result.Data) {
		t.Errorf("TailleBytes = %d, want %d", saved.TailleBytes, len(result.Data))
	}
	if len(s3.uploads) != 1 {
		t.Errorf("expected 1 upload, got %d", len(s3.uploads))
	}
}

func TestGeneratePVAGOrdinaireMissingPermission(t *testing.T) {
	svc := newTestDocumentService(&fakeDocRepo{}, &fakeActeRepo{}, &fakeClientRepo{}, &fakeS3{})

	actor := &entity.User{ID: 100, Permissions: entity.PermissionManageClients}
	_, cerr := svc.GeneratePVAGOrdinaire(context.Background(), actor, 10)
	if cerr == nil || cerr.Code() != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", cerr)
	}
}

func TestGeneratePVAGOrdinaireUnknownActe(t *testing.T) {
	acteRepo := &fakeActeRepo{actes: map[int]*entity.ActeJuridique{}}
	svc := newTestDocumentService(&fakeDocRepo{}, acteRepo, &fakeClientRepo{}, &fakeS3{})

	_, cerr := svc.GeneratePVAGOrdinaire(context.Background(), generator(), 999)
	if cerr != apierror.NotFoundError {
		t.Fatalf("expected not-found, got %v", cerr)
	}
}

func TestGeneratePVAGOrdinaireWrongType(t *testing.T) {
	acte := validActe()
	acte.Type = entity.ActeCessionActions
	acteRepo := &fakeActeRepo{actes: map[int]*entity.ActeJuridique{10: acte}}
	svc := newTestDocumentService(&fakeDocRepo{}, acteRepo, &fakeClientRepo{}, &fakeS3{})

	_, cerr := svc.GeneratePVAGOrdinaire(context.Background(), generator(), 10)
	if cerr != apierror.WrongActeTypeError {
		t.Fatalf("expected wrong-acte-type, got %v", cerr)
	}
}

func TestGeneratePVAGOrdinaireValidationFailure(t *testing.T) {
	acte := validActe()
	acte.ResultatExercice = nil
	acteRepo := &fakeActeRepo{actes: map[int]*entity.ActeJuridique{10: acte}}
	clientRepo := &fakeClientRepo{clients: map[int]*entity.Client{1: validClient()}}
	svc := newTestDocumentService(&fakeDocRepo{}, acteRepo, clientRepo, &fakeS3{})

	_, cerr := svc.GeneratePVAGOrdinaire(context.Background(), generator(), 10)
	if cerr == nil || cerr.Code() != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", cerr)
	}

	structured, ok := cerr.(*apierror.StructuredError)
	if !ok {
		t.Fatalf("expected structured error, got %T", cerr)
	}
	if _, ok := structured.Errors["resultat_manquant"]; !ok {
		t.Errorf("expected resultat_manquant in %v", structured.Errors)
	}
}

func TestGeneratePVAGOrdinaireIntegrityFailure(t *testing.T) {
	// Dividend allocation over a cap table with zero shares cannot be
	// expressed as a per-share amount.
	acte := validActe()
	acte.AffectationResultat = entity.AffectationDividendes
	acte.MontantDividendes = ptrf(10000)

	client := validClient()
	for _, a := range client.Associes {
		a.NombreActions = 0
	}

	acteRepo := &fakeActeRepo{actes: map[int]*entity.ActeJuridique{10: acte}}
	clientRepo := &fakeClientRepo{clients: map[int]*entity.Client{1: client}}
	svc := newTestDocumentService(&fakeDocRepo{}, acteRepo, clientRepo, &fakeS3{})

	_, cerr := svc.GeneratePVAGOrdinaire(context.Background(), generator(), 10)
	if cerr == nil || cerr.Code() != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", cerr)
	}
}

func TestGeneratePVAGOrdinaireUploadFallback(t *testing.T) {
	docRepo := &fakeDocRepo{docs: map[int64]*entity.DocumentGenere{}}
	acteRepo := &fakeActeRepo{actes: map[int]*entity.ActeJuridique{10: validActe()}}
	clientRepo := &fakeClientRepo{clients: map[int]*entity.Client{1: validClient()}}
	s3 := &fakeS3{uploadErr: errors.New("bucket unavailable")}
	svc := newTestDocumentService(docRepo, acteRepo, clientRepo, s3)

	result, cerr := svc.GeneratePVAGOrdinaire(context.Background(), generator(), 10)
	if cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}

	if result.Uploaded() {
		t.Fatal("expected a degraded result without URL")
	}
	if len(result.Data) == 0 {
		t.Fatal("expected document bytes for direct download")
	}
	if result.FileName == "" {
		t.Fatal("expected a file name for the Content-Disposition header")
	}
	if len(docRepo.saved) != 0 {
		t.Errorf("no history row should be written on upload failure, got %d", len(docRepo.saved))
	}
}

func TestDeleteDocument(t *testing.T) {
	doc := &entity.DocumentGenere{ID: 55, ClientID: 1, S3Key: "documents/abc.docx"}
	docRepo := &fakeDocRepo{docs: map[int64]*entity.DocumentGenere{55: doc}}
	s3 := &fakeS3{}
	svc := newTestDocumentService(docRepo, &fakeActeRepo{}, &fakeClientRepo{}, s3)

	actor := &entity.User{ID: 100, Permissions: entity.PermissionDeleteDocuments}
	if cerr := svc.DeleteDocument(actor, 55); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}

	if len(docRepo.deleted) != 1 || docRepo.deleted[0] != 55 {
		t.Errorf("expected row 55 deleted, got %v", docRepo.deleted)
	}
	if len(s3.deleted) != 1 || s3.deleted[0] != "documents/abc.docx" {
		t.Errorf("expected object deleted, got %v", s3.deleted)
	}
}

func TestDeleteDocumentObjectFailureStillDeletesRow(t *testing.T) {
	doc := &entity.DocumentGenere{ID: 55, ClientID: 1, S3Key: "documents/abc.docx"}
	docRepo := &fakeDocRepo{docs: map[int64]*entity.DocumentGenere{55: doc}}
	s3 := &fakeS3{deleteErr: errors.New("access denied")}
	svc := newTestDocumentService(docRepo, &fakeActeRepo{}, &fakeClientRepo{}, s3)

	actor := &entity.User{ID: 100, Permissions: entity.PermissionAdministrator}
	if cerr := svc.DeleteDocument(actor, 55); cerr != nil {
		t.Fatalf("unexpected error: %v", cerr)
	}
	if len(docRepo.deleted) != 1 {
		t.Errorf("expected row deletion despite object failure, got %v", docRepo.deleted)
	}
}
