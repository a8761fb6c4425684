package docgen

import (
	"strings"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func validAGData() *AGOrdinaireData {
	return &AGOrdinaireData{
		Denomination:     "ACME SAS",
		FormeJuridique:   "SAS",
		CapitalSocial:    10000,
		SiegeSocial:      "10 rue des Lilas, 75011 Paris",
		RCS:              "RCS Paris 123 456 789",
		DateAG:           "15 mars 2025",
		HeureAG:          "14h00",
		LieuAG:           "au siège social",
		ExerciceClos:     "2024",
		ResultatExercice: fptr(5000),
		Affectation:      AffectationDividendes,
		MontantDividendes: fptr(3000),
		PresidentNom:     "Martin",
		PresidentPrenom:  "Claire",
		Associes: []Participant{
			{Nom: "Martin", Prenom: "Claire", NbActions: 700, Present: true},
			{Nom: "Durand", Prenom: "Paul", NbActions: 300, Present: true},
		},
		QuitusPresident: true,
		VotesPour:       1000,
	}
}

func hasProblem(o Outcome, code string) bool {
	for _, p := range o.Problems {
		if p.Code == code {
			return true
		}
	}
	return false
}

func TestValidateAGOrdinaireValid(t *testing.T) {
	o := ValidateAGOrdinaire(validAGData())
	if !o.Valid() {
		t.Fatalf("expected valid outcome, got %+v", o.Problems)
	}
}

func TestValidateAGOrdinaireReportsAllProblems(t *testing.T) {
	d := validAGData()
	d.Denomination = ""
	d.ExerciceClos = ""
	d.PresidentNom = ""

	o := ValidateAGOrdinaire(d)
	if o.Valid() {
		t.Fatal("expected invalid outcome")
	}
	for _, code := range []string{"societe_incomplete", "exercice_clos_manquant", "president_manquant"} {
		if !hasProblem(o, code) {
			t.Errorf("missing problem %q in %+v", code, o.Problems)
		}
	}
}

func TestValidateAGOrdinaireVoteTally(t *testing.T) {
	d := validAGData()
	d.VotesPour = 900 // 900 != 1000 represented shares

	o := ValidateAGOrdinaire(d)
	if !hasProblem(o, "votes_incoherents") {
		t.Fatalf("expected votes_incoherents, got %+v", o.Problems)
	}

	// Both totals must appear in the message for debuggability.
	var msg string
	for _, p := range o.Problems {
		if p.Code == "votes_incoherents" {
			msg = p.Message
		}
	}
	if !strings.Contains(msg, "900") || !strings.Contains(msg, "1000") {
		t.Errorf("message should carry both totals, got %q", msg)
	}
}

func TestValidateAGOrdinaireZeroResultIsValid(t *testing.T) {
	d := validAGData()
	d.ResultatExercice = fptr(0)
	d.Affectation = AffectationReportNouveau
	d.MontantDividendes = nil

	if o := ValidateAGOrdinaire(d); hasProblem(o, "resultat_manquant") {
		t.Fatal("zero résultat must not be reported as missing")
	}
}

func TestValidateAGOrdinaireNilResult(t *testing.T) {
	d := validAGData()
	d.ResultatExercice = nil

	if o := ValidateAGOrdinaire(d); !hasProblem(o, "resultat_manquant") {
		t.Fatal("nil résultat must be rejected")
	}
}

func TestValidateAGOrdinaireMissingChair(t *testing.T) {
	d := validAGData()
	d.PresidentNom = ""
	d.PresidentPrenom = ""

	if o := ValidateAGOrdinaire(d); !hasProblem(o, "president_manquant") {
		t.Fatal("missing président must be a hard validation error")
	}
}

func TestValidateAGOrdinaireNoParticipants(t *testing.T) {
	d := validAGData()
	d.Associes = nil

	if o := ValidateAGOrdinaire(d); !hasProblem(o, "aucun_associe") {
		t.Fatal("empty associé list must be rejected")
	}
}

func TestValidateAGOrdinaireDividendPolicyRequiresAmount(t *testing.T) {
	d := validAGData()
	d.MontantDividendes = nil

	if o := ValidateAGOrdinaire(d); !hasProblem(o, "montant_dividendes_manquant") {
		t.Fatal("dividendes policy without amount must be rejected")
	}
}

func TestValidateAGOrdinaireMixteRequiresOneAmount(t *testing.T) {
	d := validAGData()
	d.Affectation = AffectationMixte
	d.MontantDividendes = nil

	if o := ValidateAGOrdinaire(d); !hasProblem(o, "affectation_mixte_vide") {
		t.Fatal("empty mixte allocation must be rejected")
	}

	d.MontantReserves = fptr(1000)
	if o := ValidateAGOrdinaire(d); hasProblem(o, "affectation_mixte_vide") {
		t.Fatal("mixte with one positive sub-amount must pass")
	}
}

func TestValidateAGOrdinaireBadTimeFormat(t *testing.T) {
	d := validAGData()
	d.HeureAG = "quatorze heures"

	if o := ValidateAGOrdinaire(d); !hasProblem(o, "heure_invalide") {
		t.Fatal("unparseable meeting time must be rejected")
	}
}
