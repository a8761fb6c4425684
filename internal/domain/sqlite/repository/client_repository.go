package repository

import (
	"errors"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{db: db}
}

func (r *DefaultClientRepository) FindAll() ([]*entity.Client, error) {
	var clients []*entity.Client
	err := r.db.Preload("Associes").Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *DefaultClientRepository) FindByID(id int) (*entity.Client, error) {
	var client entity.Client
	err := r.db.Preload("Associes").First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *DefaultClientRepository) Save(client *entity.Client) error {
	return r.db.Save(client).Error
}

func (r *DefaultClientRepository) Delete(client *entity.Client) error {
	return r.db.Select("Associes").Delete(client).Error
}
