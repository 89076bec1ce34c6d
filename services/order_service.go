package services

import (
	"github.com/deviill007/ShakeHubInShop/entity"
	"github.com/deviill007/ShakeHubInShop/repository"
)

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(repo *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: repo}
}

// Place stores a new order. Status is always pending regardless of what the
// client sent, and the total is stored as given; line items are denormalized
// copies, so they are taken verbatim too.
func (s *OrderService) Place(sessionID, table string, items []entity.OrderItem, total float64) (*entity.Order, error) {
	order := &entity.Order{
		SessionID: sessionID,
		Table:     table,
		Items:     items,
		Total:     total,
		Status:    entity.OrderStatusPending,
	}
	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListPending() ([]entity.Order, error) {
	return s.Repo.FindPending()
}

// MarkReady moves an order to its terminal status. There is no pending
// check: marking a ready order ready again succeeds and changes nothing.
func (s *OrderService) MarkReady(id uint) (*entity.Order, error) {
	return s.Repo.UpdateStatus(id, entity.OrderStatusReady)
}
