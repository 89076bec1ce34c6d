package entity

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in-progress"
	OrderStatusReady      = "ready"
)

type Order struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	SessionID string      `json:"sessionId"`
	Table     string      `gorm:"column:table_no" json:"table"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total     float64     `json:"total"`
	Status    string      `gorm:"default:pending" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
