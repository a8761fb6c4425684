package entity

// DocumentGenere is one generated Word document kept for the client's history.
type DocumentGenere struct {
	ID           int64  `gorm:"primaryKey"`
	ClientID     int    `gorm:"not null;index"`
	ActeID       int    `gorm:"index"`
	TypeDocument string `gorm:"not null"` // e.g. "pv_ag_ordinaire"
	NomFichier   string `gorm:"not null"`
	S3Key        string
	URL          string
	TailleBytes  int
	GeneratedBy  int64 `gorm:"not null"` // References: users(id)
	CreatedAt    int64 `gorm:"not null"`
}
