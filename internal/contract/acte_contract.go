package contract

type ActeRequest struct {
	Type string `json:"type" validate:"required,oneof=ag_ordinaire augmentation_capital reduction_capital cession_actions attestation_depot_fonds"`

	DateAG       string `json:"date_ag" validate:"omitempty,datetime=2006-01-02"`
	HeureAG      string `json:"heure_ag" validate:"omitempty,frtime"`
	LieuAG       string `json:"lieu_ag" validate:"omitempty,max=250"`
	ExerciceClos string `json:"exercice_clos" validate:"omitempty,max=40"`

	ResultatExercice    *float64 `json:"resultat_exercice"`
	AffectationResultat string   `json:"affectation_resultat" validate:"omitempty,oneof=report_nouveau reserves dividendes mixte"`
	MontantDividendes   *float64 `json:"montant_dividendes" validate:"omitempty,min=0"`
	MontantReserves     *float64 `json:"montant_reserves" validate:"omitempty,min=0"`
	MontantReport       *float64 `json:"montant_report" validate:"omitempty,min=0"`

	QuitusPresident *bool `json:"quitus_president"`

	VotesPourComptes       *int `json:"votes_pour_comptes" validate:"omitempty,min=0"`
	VotesContreComptes     int  `json:"votes_contre_comptes" validate:"min=0"`
	VotesAbstentionComptes int  `json:"votes_abstention_comptes" validate:"min=0"`
}

type UpdateActeRequest struct {
	Statut *string `json:"statut" validate:"omitempty,max=40"`

	DateAG       *string `json:"date_ag" validate:"omitempty,datetime=2006-01-02"`
	HeureAG      *string `json:"heure_ag" validate:"omitempty,frtime"`
	LieuAG       *string `json:"lieu_ag" validate:"omitempty,max=250"`
	ExerciceClos *string `json:"exercice_clos" validate:"omitempty,max=40"`

	ResultatExercice    *float64 `json:"resultat_exercice"`
	AffectationResultat *string  `json:"affectation_resultat" validate:"omitempty,oneof=report_nouveau reserves dividendes mixte"`
	MontantDividendes   *float64 `json:"montant_dividendes" validate:"omitempty,min=0"`
	MontantReserves     *float64 `json:"montant_reserves" validate:"omitempty,min=0"`
	MontantReport       *float64 `json:"montant_report" validate:"omitempty,min=0"`

	QuitusPresident *bool `json:"quitus_president"`

	VotesPourComptes       *int `json:"votes_pour_comptes" validate:"omitempty,min=0"`
	VotesContreComptes     *int `json:"votes_contre_comptes" validate:"omitempty,min=0"`
	VotesAbstentionComptes *int `json:"votes_abstention_comptes" validate:"omitempty,min=0"`
}

type ActeResponse struct {
	ID       int    `json:"id"`
	ClientID int    `json:"client_id"`
	Type     string `json:"type"`
	Statut   string `json:"statut"`

	DateAG       string `json:"date_ag,omitempty"`
	HeureAG      string `json:"heure_ag,omitempty"`
	LieuAG       string `json:"lieu_ag,omitempty"`
	ExerciceClos string `json:"exercice_clos,omitempty"`

	ResultatExercice    *float64 `json:"resultat_exercice,omitempty"`
	AffectationResultat string   `json:"affectation_resultat,omitempty"`
	MontantDividendes   *float64 `json:"montant_dividendes,omitempty"`
	MontantReserves     *float64 `json:"montant_reserves,omitempty"`
	MontantReport       *float64 `json:"montant_report,omitempty"`

	QuitusPresident bool `json:"quitus_president"`

	VotesPourComptes       *int `json:"votes_pour_comptes,omitempty"`
	VotesContreComptes     int  `json:"votes_contre_comptes"`
	VotesAbstentionComptes int  `json:"votes_abstention_comptes"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
