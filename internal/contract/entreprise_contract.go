package contract

type EntrepriseResponse struct {
	Siret              string  `json:"siret"`
	NomEntreprise      string  `json:"nom_entreprise"`
	FormeJuridique     string  `json:"forme_juridique"`
	CategorieJuridique string  `json:"categorie_juridique,omitempty"`
	CodeNaf            string  `json:"code_naf,omitempty"`
	DateCreation       string  `json:"date_creation,omitempty"`
	CapitalSocial      float64 `json:"capital_social"`
	ObjetSocial        string  `json:"objet_social,omitempty"`
	Adresse            *EntrepriseAdresse `json:"adresse,omitempty"`
	Statut             string  `json:"statut,omitempty"`
	Cached             bool    `json:"cached"`
}

type EntrepriseAdresse struct {
	Ligne      string `json:"ligne,omitempty"`
	CodePostal string `json:"code_postal,omitempty"`
	Ville      string `json:"ville,omitempty"`
	Pays       string `json:"pays,omitempty"`
}
