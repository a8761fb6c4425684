package entity

// FormeJuridique enumerates the legal forms supported by the document generators.
type FormeJuridique string

const (
	FormeSAS  FormeJuridique = "SAS"
	FormeSASU FormeJuridique = "SASU"
	FormeSARL FormeJuridique = "SARL"
	FormeEURL FormeJuridique = "EURL"
	FormeSA   FormeJuridique = "SA"
	FormeSCI  FormeJuridique = "SCI"
)

type DossierType string

const (
	DossierCreation DossierType = "creation"
	DossierReprise  DossierType = "reprise"
	DossierExistant DossierType = "existant"
)

// Client is one company file managed by the cabinet. It is the snapshot
// source for every generated document.
type Client struct {
	ID            int    `gorm:"primaryKey"`
	CreatedByID   int64  `gorm:"not null;index"` // References: users(id)
	NomEntreprise string `gorm:"not null"`
	FormeJuridique FormeJuridique
	CapitalSocial  float64
	NbActions      int

	Siret    string `gorm:"index"`
	VilleRCS string
	Adresse  string
	Ville    string
	Email    string
	Telephone string

	// The président lives on the client record, not in the associés table.
	PresidentNom    string
	PresidentPrenom string

	ObjetSocial  string
	DureeSociete int
	DateCloture  string
	TypeDossier  DossierType `gorm:"default:creation"`
	Statut       string

	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`

	// Relationships
	Associes []*Associe `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE;OnDelete:CASCADE;"`
}

// Associe is a shareholder attached to a client company.
type Associe struct {
	ID       int    `gorm:"primaryKey"`
	ClientID int    `gorm:"not null;index"`
	Civilite string
	Nom      string `gorm:"not null"`
	Prenom   string `gorm:"not null"`

	NombreActions int
	MontantApport float64
	TypeApport    string

	// Present distinguishes physical presence from representation by proxy
	// in meeting minutes. New associés default to present.
	Present          bool `gorm:"not null;default:true"`
	President        bool `gorm:"not null;default:false"`
	DirecteurGeneral bool `gorm:"not null;default:false"`

	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`
}
