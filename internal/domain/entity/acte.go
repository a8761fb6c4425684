package entity

// ActeType enumerates the legal acts the platform can draft.
type ActeType string

const (
	ActeAGOrdinaire         ActeType = "ag_ordinaire"
	ActeAugmentationCapital ActeType = "augmentation_capital"
	ActeReductionCapital    ActeType = "reduction_capital"
	ActeCessionActions      ActeType = "cession_actions"
	ActeDepotFonds          ActeType = "attestation_depot_fonds"
)

// AffectationResultat is the allocation policy voted for the fiscal-year result.
type AffectationResultat string

const (
	AffectationReportNouveau AffectationResultat = "report_nouveau"
	AffectationReserves      AffectationResultat = "reserves"
	AffectationDividendes    AffectationResultat = "dividendes"
	AffectationMixte         AffectationResultat = "mixte"
)

// ActeJuridique is one corporate decision event recorded for a client.
//
// Nullable numeric columns use pointers on purpose: a résultat of zero is a
// legally valid value and must be distinguishable from "not filled in yet".
type ActeJuridique struct {
	ID       int      `gorm:"primaryKey"`
	ClientID int      `gorm:"not null;index"`
	Type     ActeType `gorm:"not null"`
	Statut   string   `gorm:"default:brouillon"`

	// Assemblée générale
	DateAG       string // ISO date "2025-03-15"
	HeureAG      string // "14:00"
	LieuAG       string // free address, empty means "au siège social"
	ExerciceClos string // "2024" or "01/01/2024 au 31/12/2024"

	ResultatExercice    *float64
	AffectationResultat AffectationResultat
	MontantDividendes   *float64
	MontantReserves     *float64
	MontantReport       *float64

	QuitusPresident bool `gorm:"default:true"`

	VotesPourComptes       *int
	VotesContreComptes     int
	VotesAbstentionComptes int

	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Client Client `gorm:"foreignKey:ClientID;references:ID"`
}
