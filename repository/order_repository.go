package repository

import (
	"github.com/deviill007/ShakeHubInShop/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(order *entity.Order) error {
	return r.DB.Create(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindPending returns pending orders only, newest first.
func (r *OrderRepository) FindPending() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status = ?", entity.OrderStatusPending).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus sets the status unconditionally. A second call with the same
// status is a no-op state-wise; there is no previous-status guard.
func (r *OrderRepository) UpdateStatus(id uint, status string) (*entity.Order, error) {
	o, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.DB.Model(o).Update("status", status).Error; err != nil {
		return nil, err
	}
	return o, nil
}
