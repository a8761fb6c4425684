package pappers

import (
	"strings"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
)

type entrepriseResponse struct {
	NomEntreprise      string  `json:"nom_entreprise"`
	FormeJuridique     string  `json:"forme_juridique"`
	CategorieJuridique string  `json:"categorie_juridique"`
	CodeNaf            string  `json:"code_naf"`
	DateCreation       string  `json:"date_creation"`
	CapitalSocial      float64 `json:"capital"`
	ObjetSocial        string  `json:"objet_social"`
	EntrepriseCessee   bool    `json:"entreprise_cessee"`

	Siege *siegeResponse `json:"siege"`
}

type siegeResponse struct {
	AdresseLigne1 string `json:"adresse_ligne_1"`
	CodePostal    string `json:"code_postal"`
	Ville         string `json:"ville"`
	Pays          string `json:"pays"`
}

func (e *entrepriseResponse) ToDomain(siret string) *entity.Entreprise {
	entreprise := &entity.Entreprise{
		Siret:              siret,
		NomEntreprise:      e.NomEntreprise,
		FormeJuridique:     normalizeForme(e.FormeJuridique),
		CategorieJuridique: e.CategorieJuridique,
		CodeNaf:            e.CodeNaf,
		DateCreation:       e.DateCreation,
		CapitalSocial:      e.CapitalSocial,
		ObjetSocial:        e.ObjetSocial,
		Statut:             "active",
		Found:              true,
	}

	if e.EntrepriseCessee {
		entreprise.Statut = "cessee"
	}

	if e.Siege != nil {
		entreprise.AdresseLigne = e.Siege.AdresseLigne1
		entreprise.CodePostal = e.Siege.CodePostal
		entreprise.Ville = e.Siege.Ville
		entreprise.Pays = e.Siege.Pays
	}
	return entreprise
}

// normalizeForme maps Pappers long labels ("Société par actions simplifiée")
// to the short forms used across the platform.
func normalizeForme(forme string) string {
	switch f := strings.ToLower(forme); {
	case strings.Contains(f, "simplifiée unipersonnelle"), strings.Contains(f, "associé unique"):
		return string(entity.FormeSASU)
	case strings.Contains(f, "actions simplifiée"):
		return string(entity.FormeSAS)
	case strings.Contains(f, "unipersonnelle à responsabilité limitée"):
		return string(entity.FormeEURL)
	case strings.Contains(f, "responsabilité limitée"):
		return string(entity.FormeSARL)
	case strings.Contains(f, "civile immobilière"):
		return string(entity.FormeSCI)
	case strings.Contains(f, "anonyme"):
		return string(entity.FormeSA)
	default:
		return forme
	}
}
