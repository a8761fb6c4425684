package repository

import (
	"errors"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultActeRepository struct {
	db *gorm.DB
}

func NewActeRepository(db *gorm.DB) *DefaultActeRepository {
	return &DefaultActeRepository{db: db}
}

func (r *DefaultActeRepository) FindByClientID(clientID int) ([]*entity.ActeJuridique, error) {
	var actes []*entity.ActeJuridique
	err := r.db.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&actes).Error
	if err != nil {
		return nil, err
	}
	return actes, nil
}

func (r *DefaultActeRepository) FindByID(id int) (*entity.ActeJuridique, error) {
	var acte entity.ActeJuridique
	err := r.db.First(&acte, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &acte, nil
}

func (r *DefaultActeRepository) Save(acte *entity.ActeJuridique) error {
	return r.db.Save(acte).Error
}

func (r *DefaultActeRepository) Delete(acte *entity.ActeJuridique) error {
	return r.db.Delete(acte).Error
}
