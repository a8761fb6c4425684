package repository

import (
	"errors"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultEntrepriseRepository struct {
	db *gorm.DB
}

func NewEntrepriseRepository(db *gorm.DB) *DefaultEntrepriseRepository {
	return &DefaultEntrepriseRepository{db: db}
}

func (r *DefaultEntrepriseRepository) FindBySiret(siret string) (*entity.Entreprise, error) {
	var entreprise entity.Entreprise
	err := r.db.
		Where("siret = ?", siret).
		First(&entreprise).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &entreprise, nil
}

func (r *DefaultEntrepriseRepository) Save(entreprise *entity.Entreprise) error {
	return r.db.Save(entreprise).Error
}

func (r *DefaultEntrepriseRepository) DeleteExpired(before int64) error {
	return r.db.
		Where("cached_at < ?", before).
		Delete(&entity.Entreprise{}).Error
}
