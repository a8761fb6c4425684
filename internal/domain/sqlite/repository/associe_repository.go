package repository

import (
	"errors"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultAssocieRepository struct {
	db *gorm.DB
}

func NewAssocieRepository(db *gorm.DB) *DefaultAssocieRepository {
	return &DefaultAssocieRepository{db: db}
}

func (r *DefaultAssocieRepository) FindByClientID(clientID int) ([]*entity.Associe, error) {
	var associes []*entity.Associe
	err := r.db.
		Where("client_id = ?", clientID).
		Order("id ASC").
		Find(&associes).Error
	if err != nil {
		return nil, err
	}
	return associes, nil
}

func (r *DefaultAssocieRepository) FindByID(id int) (*entity.Associe, error) {
	var associe entity.Associe
	err := r.db.First(&associe, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &associe, nil
}

func (r *DefaultAssocieRepository) Save(associe *entity.Associe) error {
	return r.db.Save(associe).Error
}

func (r *DefaultAssocieRepository) Delete(associe *entity.Associe) error {
	return r.db.Delete(associe).Error
}
