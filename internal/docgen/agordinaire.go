package docgen

import (
	"fmt"
	"regexp"
)

// Participant is one shareholder attending (or represented at) the meeting.
type Participant struct {
	Nom       string
	Prenom    string
	NbActions int
	Present   bool // false = represented by proxy
}

// AGOrdinaireData is the immutable snapshot consumed by the PV assembler.
// The caller builds it from persisted records right before generation and
// discards it afterwards.
type AGOrdinaireData struct {
	// Société
	Denomination   string
	FormeJuridique string
	CapitalSocial  float64
	SiegeSocial    string
	RCS            string

	// Assemblée
	DateAG       string // "15 mars 2025"
	HeureAG      string // "14h00"
	LieuAG       string // address or "au siège social"
	ExerciceClos string

	// Résultat. Nil means "not filled in", which is not the same as zero.
	ResultatExercice *float64
	Affectation      AffectationResultat
	MontantDividendes *float64
	MontantReserves   *float64
	MontantReport     *float64

	// Participants
	PresidentNom    string
	PresidentPrenom string
	Associes        []Participant

	// Votes
	QuitusPresident bool
	VotesPour       int
	VotesContre     int
	VotesAbstention int
}

// AffectationResultat mirrors the acte enumeration without importing the
// entity package: docgen stays a pure leaf.
type AffectationResultat string

const (
	AffectationReportNouveau AffectationResultat = "report_nouveau"
	AffectationReserves      AffectationResultat = "reserves"
	AffectationDividendes    AffectationResultat = "dividendes"
	AffectationMixte         AffectationResultat = "mixte"
)

// IntegrityError reports input data that should never have reached assembly,
// as opposed to a validation failure the end user can correct. It halts
// generation: producing a document with NaN or Inf artefacts is worse than
// failing.
type IntegrityError struct {
	Reason string
}

func (e *IntegrityError) Error() string {
	return "données incohérentes : " + e.Reason
}

var heurePattern = regexp.MustCompile(`(\d{1,2})h(\d{2})?`)

// resolutionKind tags the resolutions of the meeting. The agenda and the
// resolutions section both iterate the same ordered list, so a future
// document variant can add, drop or reorder items without touching the
// section logic.
type resolutionKind int

const (
	resolutionComptes resolutionKind = iota
	resolutionAffectation
	resolutionQuitus
	resolutionPouvoirs
)

var ordreDuJourAGO = []resolutionKind{
	resolutionComptes,
	resolutionAffectation,
	resolutionQuitus,
	resolutionPouvoirs,
}

var ordinaux = []string{"PREMIÈRE", "DEUXIÈME", "TROISIÈME", "QUATRIÈME", "CINQUIÈME", "SIXIÈME"}

// BuildPVAGOrdinaire assembles the minutes of an ordinary general meeting.
// The data must have passed ValidateAGOrdinaire; the assembler does not
// re-validate and only guards against integrity faults (zero total shares
// while computing a per-share amount).
func BuildPVAGOrdinaire(d *AGOrdinaireData) ([]Block, error) {
	totalActions := 0
	representees := 0
	for _, a := range d.Associes {
		totalActions += a.NbActions
		representees += a.NbActions
	}

	// Defensive: zero shares degrade the percentage to 0 instead of NaN.
	pourcentage := 0.0
	if totalActions > 0 {
		pourcentage = float64(representees) / float64(totalActions) * 100
	}

	resultat := amount(d.ResultatExercice)
	estBenefice := resultat >= 0

	b := NewBuilder()

	b.Title("PROCÈS-VERBAL D'ASSEMBLÉE GÉNÉRALE ORDINAIRE")

	b.Section("SOCIÉTÉ")
	b.Text("Dénomination sociale : " + d.Denomination)
	b.Text("Forme juridique : " + d.FormeJuridique)
	b.Text("Capital social : " + FormatMontant(d.CapitalSocial) + " €")
	b.Text("Siège social : " + d.SiegeSocial)
	b.Text("RCS : " + d.RCS)

	b.Section("DATE, HEURE ET LIEU")
	b.Text(fmt.Sprintf("L'Assemblée Générale Ordinaire de la société %s s'est réunie le %s à %s %s.",
		d.Denomination, d.DateAG, d.HeureAG, d.LieuAG))

	b.Section("PRÉSENTS / REPRÉSENTÉS")
	for _, a := range d.Associes {
		statut := "Représenté"
		if a.Present {
			statut = "Présent"
		}
		pluriel := ""
		if a.NbActions > 1 {
			pluriel = "s"
		}
		b.Text(fmt.Sprintf("- %s %s : %d action%s (%s)", a.Prenom, a.Nom, a.NbActions, pluriel, statut))
	}
	b.Spaced(200, 0, fmt.Sprintf("Total des actions représentées : %d sur %d (%s du capital social).",
		representees, totalActions, FormatPourcentage(pourcentage)), true)

	b.Section("PRÉSIDENCE")
	b.Text(fmt.Sprintf("L'assemblée est présidée par %s %s, Président de la société.",
		d.PresidentPrenom, d.PresidentNom))

	b.Section("ORDRE DU JOUR")
	for i, kind := range ordreDuJourAGO {
		b.Text(fmt.Sprintf("%d. %s", i+1, agendaLabel(kind, d)))
	}

	b.Section("RÉSOLUTIONS")
	for i, kind := range ordreDuJourAGO {
		b.SubSection(fmt.Sprintf("%s RÉSOLUTION - %s", ordinaux[i], resolutionTitle(kind)))
		if err := appendResolution(b, kind, d, resultat, estBenefice, totalActions); err != nil {
			return nil, err
		}
	}

	b.Section("CLÔTURE")
	b.Spaced(0, 400, "L'ordre du jour étant épuisé, la séance est levée à "+heureCloture(d.HeureAG)+".", false)

	ville := ExtractVille(d.SiegeSocial)
	if ville == "" {
		ville = "Paris"
	}
	b.Spaced(400, 600, fmt.Sprintf("Fait à %s, le %s", ville, d.DateAG), false)

	b.Spaced(600, 200, "Signatures :", true)
	b.Spaced(400, 200, "Le Président,", false)
	b.Signature(d.PresidentPrenom + " " + d.PresidentNom)
	b.Spaced(400, 200, "Les Associés,", false)
	for _, a := range d.Associes {
		b.Signature(a.Prenom + " " + a.Nom)
	}

	return b.Blocks(), nil
}

func agendaLabel(kind resolutionKind, d *AGOrdinaireData) string {
	switch kind {
	case resolutionComptes:
		return "Approbation des comptes de l'exercice clos le " + d.ExerciceClos
	case resolutionAffectation:
		return "Affectation du résultat"
	case resolutionQuitus:
		return "Quitus au Président"
	default:
		return "Pouvoirs pour les formalités"
	}
}

func resolutionTitle(kind resolutionKind) string {
	switch kind {
	case resolutionComptes:
		return "Approbation des comptes"
	case resolutionAffectation:
		return "Affectation du résultat"
	case resolutionQuitus:
		return "Quitus au Président"
	default:
		return "Pouvoirs"
	}
}

func appendResolution(b *Builder, kind resolutionKind, d *AGOrdinaireData, resultat float64, estBenefice bool, totalActions int) error {
	switch kind {
	case resolutionComptes:
		appendComptes(b, d, resultat, estBenefice)
	case resolutionAffectation:
		return appendAffectation(b, d, resultat, estBenefice, totalActions)
	case resolutionQuitus:
		if d.QuitusPresident {
			b.Bold("DONNE quitus au Président pour sa gestion durant l'exercice écoulé.")
		} else {
			b.Bold("REFUSE de donner quitus au Président.")
		}
	case resolutionPouvoirs:
		b.Spaced(0, 400, "DONNE tous pouvoirs au Président pour accomplir les formalités légales.", true)
	}
	return nil
}

func appendComptes(b *Builder, d *AGOrdinaireData, resultat float64, estBenefice bool) {
	b.Spaced(0, 200, "L'Assemblée Générale, après avoir pris connaissance :", false)
	b.Text("- Du rapport de gestion du Président,")
	b.Text(fmt.Sprintf("- Des comptes annuels (bilan, compte de résultat et annexes) de l'exercice clos le %s,", d.ExerciceClos))

	nature := "une perte"
	if estBenefice {
		nature = "un bénéfice"
	}
	b.Spaced(200, 200, fmt.Sprintf("Constate que l'exercice fait apparaître %s de %s €.", nature, FormatMontant(resultat)), false)
	b.Bold(fmt.Sprintf("APPROUVE les comptes annuels de l'exercice clos le %s tels qu'ils ont été présentés.", d.ExerciceClos))
	b.Spaced(200, 200, fmt.Sprintf("Votes : POUR %d - CONTRE %d - ABSTENTION %d", d.VotesPour, d.VotesContre, d.VotesAbstention), false)

	// Strict majority: a tie rejects.
	verdict := "REJETÉE"
	if d.VotesPour > d.VotesContre {
		verdict = "ADOPTÉE"
	}
	b.Spaced(0, 400, "La résolution est "+verdict+".", true)
}

func appendAffectation(b *Builder, d *AGOrdinaireData, resultat float64, estBenefice bool, totalActions int) error {
	// A loss can never be distributed: it is carried forward whatever the
	// stated policy says.
	if !estBenefice {
		b.Bold(fmt.Sprintf("DÉCIDE d'affecter la perte de %s € au compte 'Report à nouveau'.", FormatMontant(resultat)))
		return nil
	}

	switch d.Affectation {
	case AffectationReportNouveau:
		b.Bold(fmt.Sprintf("DÉCIDE d'affecter l'intégralité du bénéfice (%s €) au compte 'Report à nouveau'.", FormatMontant(resultat)))

	case AffectationReserves:
		b.Bold(fmt.Sprintf("DÉCIDE d'affecter l'intégralité du bénéfice (%s €) au compte 'Réserves'.", FormatMontant(resultat)))

	case AffectationDividendes:
		dividendes := amount(d.MontantDividendes)
		if totalActions == 0 {
			return &IntegrityError{Reason: fmt.Sprintf(
				"impossible de calculer le dividende par action : la société ne compte aucune action (dividendes : %s €)",
				FormatMontant(dividendes))}
		}
		parAction := dividendes / float64(totalActions)
		b.Bold(fmt.Sprintf("DÉCIDE de distribuer %s € aux associés au titre de dividendes, soit %s € par action.",
			FormatMontant(dividendes), FormatMontant(parAction)))

	case AffectationMixte:
		var details []string
		affecte := 0.0
		if m := amount(d.MontantDividendes); m > 0 {
			details = append(details, FormatMontant(m)+" € au titre de dividendes")
			affecte += m
		}
		if m := amount(d.MontantReserves); m > 0 {
			details = append(details, FormatMontant(m)+" € au compte 'Réserves'")
			affecte += m
		}
		if m := amount(d.MontantReport); m > 0 {
			details = append(details, FormatMontant(m)+" € au compte 'Report à nouveau'")
			affecte += m
		}
		// A partial allocation is legal; the remainder is carried forward
		// and the clause says so explicitly.
		if solde := resultat - affecte; solde > 0.005 {
			details = append(details, "le solde de "+FormatMontant(solde)+" € au compte 'Report à nouveau'")
		}
		b.Bold("DÉCIDE d'affecter le bénéfice comme suit : " + joinClauses(details) + ".")
	}
	return nil
}

func joinClauses(clauses []string) string {
	switch len(clauses) {
	case 0:
		return ""
	case 1:
		return clauses[0]
	}
	out := clauses[0]
	for _, c := range clauses[1:] {
		out += ", " + c
	}
	return out
}

// heureCloture adds two hours to the "HHhMM" opening time. Unparseable
// strings are rejected upstream by ValidateAGOrdinaire; the literal
// fallback here only covers callers that skipped validation.
func heureCloture(heureAG string) string {
	m := heurePattern.FindStringSubmatch(heureAG)
	if m == nil {
		return heureAG
	}
	heure := 0
	fmt.Sscanf(m[1], "%d", &heure)
	minutes := m[2]
	if minutes == "" {
		minutes = "00"
	}
	return fmt.Sprintf("%02dh%s", heure+2, minutes)
}
