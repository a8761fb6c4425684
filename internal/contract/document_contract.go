package contract

// DocxMIME is the content type of every generated Word document.
const DocxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type DocumentResponse struct {
	ID           int64  `json:"id"`
	ClientID     int    `json:"client_id"`
	ActeID       int    `json:"acte_id,omitempty"`
	TypeDocument string `json:"type_document"`
	NomFichier   string `json:"nom_fichier"`
	URL          string `json:"url,omitempty"`
	TailleBytes  int    `json:"taille_bytes"`
	CreatedAt    string `json:"created_at"`
}

// GenerationResult is what the document service hands back to the HTTP
// layer after a successful generation.
//
// When the upload to object storage succeeded, URL is set and the handler
// answers with JSON. When the upload failed, the service still returns the
// rendered bytes so the handler can stream the file directly — losing the
// storage copy must not lose the user's document.
type GenerationResult struct {
	Document *DocumentResponse `json:"document,omitempty"`
	URL      string            `json:"document_url,omitempty"`

	FileName string `json:"-"`
	Data     []byte `json:"-"`
}

// Uploaded reports whether the document made it to object storage.
func (g *GenerationResult) Uploaded() bool {
	return g.URL != ""
}
