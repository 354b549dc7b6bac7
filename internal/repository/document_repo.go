package repository

import (
	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(doc *model.Document) error
	FindAll() ([]model.Document, error)
	FindByCategory(category string) ([]model.Document, error)
	FindByID(id uuid.UUID) (*model.Document, error)
	Delete(id uuid.UUID) error
}

type documentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) DocumentRepository {
	return &documentRepo{db}
}

func (r *documentRepo) Create(doc *model.Document) error {
	return r.db.Create(doc).Error
}

func (r *documentRepo) FindAll() ([]model.Document, error) {
	var docs []model.Document
	err := r.db.Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepo) FindByCategory(category string) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.Where("category = ?", category).Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepo) FindByID(id uuid.UUID) (*model.Document, error) {
	var doc model.Document
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Document{}, "id = ?", id).Error
}
