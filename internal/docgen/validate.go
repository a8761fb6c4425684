package docgen

import "fmt"

// Problem is one blocking data-quality issue found by a validator.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Outcome is the result of validating a record against a document type.
// Validators report every applicable problem in a single pass instead of
// short-circuiting, so the caller can surface them all at once.
type Outcome struct {
	Problems []Problem
}

func (o Outcome) Valid() bool {
	return len(o.Problems) == 0
}

func (o *Outcome) add(code, format string, args ...any) {
	o.Problems = append(o.Problems, Problem{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// ValidateAGOrdinaire checks that the record can legally produce a PV
// d'assemblée générale ordinaire. Invalid business data never panics;
// panicking is reserved for malformed inputs upstream of this layer.
func ValidateAGOrdinaire(d *AGOrdinaireData) Outcome {
	var o Outcome

	if d.Denomination == "" || d.FormeJuridique == "" {
		o.add("societe_incomplete",
			"Les informations de la société sont manquantes. Vérifiez le nom de l'entreprise et la forme juridique dans la fiche client.")
	}

	if d.DateAG == "" || d.HeureAG == "" {
		o.add("date_heure_manquantes",
			"La date et l'heure de l'assemblée générale sont requises. Remplissez ces champs dans l'acte.")
	} else if !heurePattern.MatchString(d.HeureAG) {
		o.add("heure_invalide",
			"L'heure de l'assemblée (%s) ne respecte pas le format attendu (ex: '14h00').", d.HeureAG)
	}

	if d.ExerciceClos == "" {
		o.add("exercice_clos_manquant",
			"L'exercice clos est requis. Indiquez l'exercice concerné (ex: '2024').")
	}

	// Explicit nil check: a résultat of zero is valid.
	if d.ResultatExercice == nil {
		o.add("resultat_manquant",
			"Le résultat de l'exercice est requis. Indiquez le bénéfice ou la perte de l'exercice.")
	}

	switch d.Affectation {
	case AffectationReportNouveau, AffectationReserves:
	case AffectationDividendes:
		if amount(d.MontantDividendes) <= 0 {
			o.add("montant_dividendes_manquant",
				"Le montant des dividendes est requis pour une affectation en dividendes.")
		}
	case AffectationMixte:
		if amount(d.MontantDividendes) <= 0 && amount(d.MontantReserves) <= 0 && amount(d.MontantReport) <= 0 {
			o.add("affectation_mixte_vide",
				"Une affectation mixte requiert au moins un montant positif (dividendes, réserves ou report à nouveau).")
		}
	case "":
		o.add("affectation_manquante",
			"L'affectation du résultat est requise. Sélectionnez comment le résultat sera affecté (report à nouveau, réserves, dividendes ou mixte).")
	default:
		o.add("affectation_inconnue",
			"Affectation du résultat inconnue : %q.", d.Affectation)
	}

	if d.MontantDividendes != nil && *d.MontantDividendes < 0 {
		o.add("montant_dividendes_negatif", "Le montant des dividendes ne peut pas être négatif.")
	}
	if d.MontantReserves != nil && *d.MontantReserves < 0 {
		o.add("montant_reserves_negatif", "Le montant affecté aux réserves ne peut pas être négatif.")
	}
	if d.MontantReport != nil && *d.MontantReport < 0 {
		o.add("montant_report_negatif", "Le montant du report à nouveau ne peut pas être négatif.")
	}

	if d.PresidentNom == "" || d.PresidentPrenom == "" {
		o.add("president_manquant",
			"Les informations du président sont manquantes. Remplissez les champs 'Président (nom)' et 'Président (prénom)' dans la fiche client.")
	}

	if len(d.Associes) == 0 {
		o.add("aucun_associe",
			"Aucun associé trouvé pour cette société. Ajoutez au moins un associé dans la fiche client.")
		return o
	}

	// The tallies must match the shares actually represented at the meeting,
	// not the company's full share count: representation may be partial.
	represented := 0
	for _, a := range d.Associes {
		represented += a.NbActions
	}
	totalVotes := d.VotesPour + d.VotesContre + d.VotesAbstention
	if totalVotes != represented {
		o.add("votes_incoherents",
			"Le total des votes (%d) ne correspond pas au nombre d'actions représentées (%d). Modifiez l'acte pour corriger les votes.",
			totalVotes, represented)
	}

	return o
}

func amount(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
