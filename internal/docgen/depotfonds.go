package docgen

import "fmt"

// Apporteur is one shareholder and the cash contribution they deposited.
type Apporteur struct {
	Civilite      string
	Nom           string
	Prenom        string
	MontantApport float64
}

// DepotFondsData is the snapshot for an attestation de dépôt des fonds.
type DepotFondsData struct {
	Denomination   string
	FormeJuridique string
	CapitalSocial  float64
	SiegeSocial    string
	Banque         string
	DateDepot      string // "15 mars 2025"
	Apporteurs     []Apporteur

	PresidentNom    string
	PresidentPrenom string
}

// ValidateDepotFonds checks the record before assembling the attestation.
func ValidateDepotFonds(d *DepotFondsData) Outcome {
	var o Outcome

	if d.Denomination == "" || d.FormeJuridique == "" {
		o.add("societe_incomplete",
			"Les informations de la société sont manquantes. Vérifiez le nom de l'entreprise et la forme juridique dans la fiche client.")
	}
	if d.Banque == "" {
		o.add("banque_manquante",
			"La banque de dépôt du capital est requise. Remplissez ce champ dans la fiche client.")
	}
	if d.DateDepot == "" {
		o.add("date_depot_manquante", "La date du dépôt des fonds est requise.")
	}
	if d.PresidentNom == "" || d.PresidentPrenom == "" {
		o.add("president_manquant",
			"Les informations du président sont manquantes. Remplissez les champs 'Président (nom/prénom)' dans la fiche client.")
	}

	apports := 0
	for _, a := range d.Apporteurs {
		if a.MontantApport > 0 {
			apports++
		}
	}
	if apports == 0 {
		o.add("aucun_apport",
			"Aucun apport en numéraire trouvé. Renseignez le montant des apports des associés.")
	}

	return o
}

// BuildAttestationDepotFonds assembles the deposit certificate. Shareholders
// without a positive contribution are left out of the deposit table.
func BuildAttestationDepotFonds(d *DepotFondsData) ([]Block, error) {
	b := NewBuilder()

	b.Title("ATTESTATION DE DÉPÔT DES FONDS")

	b.Section("SOCIÉTÉ EN FORMATION")
	b.Text("Dénomination sociale : " + d.Denomination)
	b.Text("Forme juridique : " + d.FormeJuridique)
	b.Text("Capital social : " + FormatMontant(d.CapitalSocial) + " €")
	b.Text("Siège social : " + d.SiegeSocial)

	b.Section("DÉPÔT")
	b.Text(fmt.Sprintf(
		"Les fonds correspondant aux apports en numéraire ont été déposés le %s auprès de %s, pour le compte de la société en formation.",
		d.DateDepot, d.Banque))

	total := 0.0
	for _, a := range d.Apporteurs {
		if a.MontantApport <= 0 {
			continue
		}
		b.Text(fmt.Sprintf("- %s %s %s : %s €", a.Civilite, a.Prenom, a.Nom, FormatMontant(a.MontantApport)))
		total += a.MontantApport
	}
	b.Spaced(200, 0, fmt.Sprintf("Soit un total déposé de %s €.", FormatMontant(total)), true)

	ville := ExtractVille(d.SiegeSocial)
	if ville == "" {
		ville = "Paris"
	}
	b.Spaced(400, 600, fmt.Sprintf("Fait à %s, le %s", ville, d.DateDepot), false)

	b.Spaced(600, 200, "Le Président,", false)
	b.Signature(d.PresidentPrenom + " " + d.PresidentNom)

	return b.Blocks(), nil
}
