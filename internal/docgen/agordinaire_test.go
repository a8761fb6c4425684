package docgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func docText(blocks []Block) string {
	var sb strings.Builder
	for _, blk := range blocks {
		for _, r := range blk.Runs {
			sb.WriteString(r.Text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestBuildPVAGOrdinaireEndToEnd(t *testing.T) {
	d := validAGData()

	blocks, err := BuildPVAGOrdinaire(d)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	text := docText(blocks)
	for _, want := range []string{
		"PROCÈS-VERBAL D'ASSEMBLÉE GÉNÉRALE ORDINAIRE",
		"Dénomination sociale : ACME SAS",
		"Capital social : 10000,00 €",
		"s'est réunie le 15 mars 2025 à 14h00 au siège social",
		"- Claire Martin : 700 actions (Présent)",
		"- Paul Durand : 300 actions (Présent)",
		"Total des actions représentées : 1000 sur 1000 (100,00% du capital social).",
		"un bénéfice de 5000,00 €",
		"Votes : POUR 1000 - CONTRE 0 - ABSTENTION 0",
		"La résolution est ADOPTÉE.",
		"DÉCIDE de distribuer 3000,00 € aux associés au titre de dividendes, soit 3,00 € par action.",
		"DONNE quitus au Président pour sa gestion durant l'exercice écoulé.",
		"la séance est levée à 16h00.",
		"Fait à 75011 Paris, le 15 mars 2025",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestBuildPVAGOrdinaireTieRejects(t *testing.T) {
	d := validAGData()
	d.Affectation = AffectationReportNouveau
	d.MontantDividendes = nil
	d.VotesPour = 500
	d.VotesContre = 500

	blocks, err := BuildPVAGOrdinaire(d)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	text := docText(blocks)
	if !strings.Contains(text, "La résolution est REJETÉE.") {
		t.Error("a 500/500 tie must reject the resolution")
	}
	if strings.Contains(text, "ADOPTÉE") {
		t.Error("a tie must never adopt")
	}
}

func TestBuildPVAGOrdinaireLossForcesCarryForward(t *testing.T) {
	for _, policy := range []AffectationResultat{
		AffectationReportNouveau, AffectationReserves, AffectationDividendes, AffectationMixte,
	} {
		d := validAGData()
		d.ResultatExercice = fptr(-4200)
		d.Affectation = policy

		blocks, err := BuildPVAGOrdinaire(d)
		if err != nil {
			t.Fatalf("policy %s: assembly failed: %v", policy, err)
		}

		text := docText(blocks)
		if !strings.Contains(text, "DÉCIDE d'affecter la perte de 4200,00 € au compte 'Report à nouveau'.") {
			t.Errorf("policy %s: loss must be fully carried forward", policy)
		}
		if strings.Contains(text, "DÉCIDE de distribuer") || strings.Contains(text, "au compte 'Réserves'") {
			t.Errorf("policy %s: loss allocation must not mention dividendes or réserves", policy)
		}
	}
}

func TestBuildPVAGOrdinaireZeroSharesPercentage(t *testing.T) {
	d := validAGData()
	d.Affectation = AffectationReportNouveau
	d.MontantDividendes = nil
	d.Associes = []Participant{{Nom: "Martin", Prenom: "Claire", NbActions: 0, Present: true}}
	d.VotesPour = 0

	blocks, err := BuildPVAGOrdinaire(d)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	text := docText(blocks)
	if strings.Contains(text, "NaN") || strings.Contains(text, "Inf") {
		t.Fatal("zero total shares must degrade the percentage, not emit NaN/Inf")
	}
	if !strings.Contains(text, "(0,00% du capital social)") {
		t.Error("percentage must degrade to 0 when no shares exist")
	}
}

func TestBuildPVAGOrdinaireZeroSharesDividendFails(t *testing.T) {
	d := validAGData()
	d.Associes = []Participant{{Nom: "Martin", Prenom: "Claire", NbActions: 0, Present: true}}
	d.VotesPour = 0

	_, err := BuildPVAGOrdinaire(d)
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IntegrityError, got %v", err)
	}
}

func TestBuildPVAGOrdinaireMixteStatesRemainder(t *testing.T) {
	d := validAGData()
	d.Affectation = AffectationMixte
	d.MontantDividendes = fptr(2000)
	d.MontantReserves = fptr(1000)
	d.MontantReport = nil // 2000 of the 5000 bénéfice left unallocated

	blocks, err := BuildPVAGOrdinaire(d)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	text := docText(blocks)
	if !strings.Contains(text, "2000,00 € au titre de dividendes") {
		t.Error("missing dividendes clause")
	}
	if !strings.Contains(text, "1000,00 € au compte 'Réserves'") {
		t.Error("missing réserves clause")
	}
	if !strings.Contains(text, "le solde de 2000,00 € au compte 'Report à nouveau'") {
		t.Error("the unallocated remainder must be stated as carried forward")
	}
}

func TestBuildPVAGOrdinaireSignatureOrder(t *testing.T) {
	d := validAGData()

	blocks, err := BuildPVAGOrdinaire(d)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	text := docText(blocks)
	claire := strings.LastIndex(text, "Claire Martin")
	paul := strings.LastIndex(text, "Paul Durand")
	if claire == -1 || paul == -1 || claire > paul {
		t.Error("signature lines must follow the participant order")
	}
}

func TestHeureCloture(t *testing.T) {
	cases := []struct{ in, want string }{
		{"14h00", "16h00"},
		{"9h30", "11h30"},
		{"14h", "16h00"},
		{"n/a", "n/a"}, // defensive fallback, rejected upstream
	}
	for _, c := range cases {
		if got := heureCloture(c.in); got != c.want {
			t.Errorf("heureCloture(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRenderProducesDocx(t *testing.T) {
	blocks, err := BuildPVAGOrdinaire(validAGData())
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	data, err := Render(blocks)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("render returned no bytes")
	}
	// A .docx is a zip package.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("rendered buffer is not a zip package")
	}
}

func TestBuildAttestationDepotFonds(t *testing.T) {
	d := &DepotFondsData{
		Denomination:    "ACME SAS",
		FormeJuridique:  "SAS",
		CapitalSocial:   10000,
		SiegeSocial:     "10 rue des Lilas, 75011 Paris",
		Banque:          "Crédit Coopératif",
		DateDepot:       "2 février 2025",
		PresidentNom:    "Martin",
		PresidentPrenom: "Claire",
		Apporteurs: []Apporteur{
			{Civilite: "Mme", Nom: "Martin", Prenom: "Claire", MontantApport: 7000},
			{Civilite: "M.", Nom: "Durand", Prenom: "Paul", MontantApport: 3000},
			{Civilite: "M.", Nom: "Petit", Prenom: "Luc", MontantApport: 0},
		},
	}

	if o := ValidateDepotFonds(d); !o.Valid() {
		t.Fatalf("expected valid outcome, got %+v", o.Problems)
	}

	blocks, err := BuildAttestationDepotFonds(d)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	text := docText(blocks)
	if !strings.Contains(text, "Soit un total déposé de 10000,00 €.") {
		t.Error("missing deposit total")
	}
	if strings.Contains(text, "Luc Petit") {
		t.Error("shareholders without contribution must not appear")
	}
}
