package contract

type ClientRequest struct {
	NomEntreprise  string  `json:"nom_entreprise" validate:"required,min=2,max=120"`
	FormeJuridique string  `json:"forme_juridique" validate:"required,oneof=SAS SASU SARL EURL SA SCI"`
	CapitalSocial  float64 `json:"capital_social" validate:"min=0"`
	NbActions      int     `json:"nb_actions" validate:"min=0"`

	Siret    string `json:"siret" validate:"omitempty,siret"`
	VilleRCS string `json:"ville_rcs" validate:"omitempty,max=80"`
	Adresse  string `json:"adresse" validate:"omitempty,max=250"`
	Email    string `json:"email" validate:"omitempty,email"`
	Telephone string `json:"telephone" validate:"omitempty,max=20"`

	PresidentNom    string `json:"president_nom" validate:"omitempty,max=80"`
	PresidentPrenom string `json:"president_prenom" validate:"omitempty,max=80"`

	ObjetSocial  string `json:"objet_social" validate:"omitempty,max=2000"`
	DureeSociete int    `json:"duree_societe" validate:"omitempty,min=1,max=99"`
	TypeDossier  string `json:"type_dossier" validate:"omitempty,oneof=creation reprise existant"`
}

type UpdateClientRequest struct {
	NomEntreprise  *string  `json:"nom_entreprise" validate:"omitempty,min=2,max=120"`
	FormeJuridique *string  `json:"forme_juridique" validate:"omitempty,oneof=SAS SASU SARL EURL SA SCI"`
	CapitalSocial  *float64 `json:"capital_social" validate:"omitempty,min=0"`
	NbActions      *int     `json:"nb_actions" validate:"omitempty,min=0"`

	Siret    *string `json:"siret" validate:"omitempty,siret"`
	VilleRCS *string `json:"ville_rcs" validate:"omitempty,max=80"`
	Adresse  *string `json:"adresse" validate:"omitempty,max=250"`

	PresidentNom    *string `json:"president_nom" validate:"omitempty,max=80"`
	PresidentPrenom *string `json:"president_prenom" validate:"omitempty,max=80"`
	Statut          *string `json:"statut" validate:"omitempty,max=40"`
}

type ClientResponse struct {
	ID             int     `json:"id"`
	NomEntreprise  string  `json:"nom_entreprise"`
	FormeJuridique string  `json:"forme_juridique"`
	CapitalSocial  float64 `json:"capital_social"`
	NbActions      int     `json:"nb_actions"`

	Siret     string `json:"siret,omitempty"`
	VilleRCS  string `json:"ville_rcs,omitempty"`
	Adresse   string `json:"adresse,omitempty"`
	Ville     string `json:"ville,omitempty"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`

	PresidentNom    string `json:"president_nom,omitempty"`
	PresidentPrenom string `json:"president_prenom,omitempty"`

	TypeDossier string `json:"type_dossier"`
	Statut      string `json:"statut,omitempty"`

	Associes []*AssocieResponse `json:"associes,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type AssocieRequest struct {
	Civilite string `json:"civilite" validate:"omitempty,oneof=M. Mme"`
	Nom      string `json:"nom" validate:"required,min=1,max=80"`
	Prenom   string `json:"prenom" validate:"required,min=1,max=80"`

	NombreActions int     `json:"nombre_actions" validate:"min=0"`
	MontantApport float64 `json:"montant_apport" validate:"min=0"`
	TypeApport    string  `json:"type_apport" validate:"omitempty,oneof=numeraire nature industrie"`

	Present          *bool `json:"present"`
	President        bool  `json:"president"`
	DirecteurGeneral bool  `json:"directeur_general"`
}

type AssocieResponse struct {
	ID               int     `json:"id"`
	Civilite         string  `json:"civilite,omitempty"`
	Nom              string  `json:"nom"`
	Prenom           string  `json:"prenom"`
	NombreActions    int     `json:"nombre_actions"`
	MontantApport    float64 `json:"montant_apport"`
	TypeApport       string  `json:"type_apport,omitempty"`
	Present          bool    `json:"present"`
	President        bool    `json:"president"`
	DirecteurGeneral bool    `json:"directeur_general"`
}
