package entity

// Entreprise caches company data fetched from the Pappers registry API,
// keyed by SIRET.
type Entreprise struct {
	Siret              string `gorm:"primaryKey;column:siret"`
	NomEntreprise      string
	FormeJuridique     string
	CategorieJuridique string
	CodeNaf            string
	DateCreation       string
	CapitalSocial      float64
	ObjetSocial        string
	AdresseLigne       string
	CodePostal         string
	Ville              string
	Pays               string
	Statut             string

	// Found controls the negative caching strategy for registry lookups:
	//
	// - true: The SIRET is valid and the company data is cached.
	//
	// - false: The SIRET was queried, returned a 404, and is safely cached as invalid.
	//
	// This prevents repeated API calls for SIRETs that we already know do not exist.
	Found    bool  `gorm:"default:true"`
	CachedAt int64 `gorm:"autoUpdateTime:false"`
}
