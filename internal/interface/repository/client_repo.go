package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/internal/domain/repository"
	"transport-data-service/pkg/errs"
)

// GormClientRepository implements the ClientRepository interface
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GORM client repository
func NewGormClientRepository(db *gorm.DB) repository.ClientRepository {
	return &GormClientRepository{
		db: db,
	}
}

// Clients GORM model for database mapping
type Clients struct {
	ID         uint   `gorm:"primaryKey"`
	ClientType string `gorm:"column:client_type;size:20;not null"`
	Name       string `gorm:"column:name;size:100;not null"`
	Contacts   string `gorm:"column:contacts;size:200"`
}

// TableName overrides the default table name
func (Clients) TableName() string {
	return "clients"
}

func clientToEntity(m *Clients) *entity.Client {
	return &entity.Client{
		ID:         m.ID,
		ClientType: m.ClientType,
		Name:       m.Name,
		Contacts:   m.Contacts,
	}
}

// List returns all clients ordered by primary key
func (r *GormClientRepository) List(ctx context.Context) ([]entity.Client, error) {
	var models []Clients
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, errs.Classify(result.Error)
	}

	clients := make([]entity.Client, 0, len(models))
	for i := range models {
		clients = append(clients, *clientToEntity(&models[i]))
	}
	return clients, nil
}

// GetByID finds a client by id; a missing id yields (nil, nil)
func (r *GormClientRepository) GetByID(ctx context.Context, id uint) (*entity.Client, error) {
	var model Clients
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Classify(result.Error)
	}
	return clientToEntity(&model), nil
}

// Create inserts a new client and fills the assigned id back into the entity
func (r *GormClientRepository) Create(ctx context.Context, client *entity.Client) error {
	model := Clients{
		ClientType: client.ClientType,
		Name:       client.Name,
		Contacts:   client.Contacts,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return errs.Classify(result.Error)
	}

	client.ID = model.ID
	return nil
}

// Update overwrites the mutable fields of a client; 0 affected rows means
// the id does not exist
func (r *GormClientRepository) Update(ctx context.Context, id uint, client *entity.Client) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Clients{}).Where("id = ?", id).Updates(map[string]interface{}{
		"client_type": client.ClientType,
		"name":        client.Name,
		"contacts":    client.Contacts,
	})
	if result.Error != nil {
		return 0, errs.Classify(result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes a client by id; 0 affected rows means the id does not exist
func (r *GormClientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Clients{})
	if result.Error != nil {
		return 0, errs.Classify(result.Error)
	}
	return result.RowsAffected, nil
}
