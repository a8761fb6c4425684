package repository

import (
	"errors"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultDocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DefaultDocumentRepository {
	return &DefaultDocumentRepository{db: db}
}

func (r *DefaultDocumentRepository) FindByClientID(clientID int) ([]*entity.DocumentGenere, error) {
	var docs []*entity.DocumentGenere
	err := r.db.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DefaultDocumentRepository) FindByID(id int64) (*entity.DocumentGenere, error) {
	var doc entity.DocumentGenere
	err := r.db.First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DefaultDocumentRepository) Save(doc *entity.DocumentGenere) error {
	return r.db.Save(doc).Error
}

func (r *DefaultDocumentRepository) Delete(doc *entity.DocumentGenere) error {
	return r.db.Delete(doc).Error
}
