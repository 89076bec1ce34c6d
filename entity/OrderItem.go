package entity

// OrderItem is a denormalized copy of a menu item at order time. MenuItemID
// is the menu item's id when the order was placed; there is no foreign key
// back to MenuItem, so menu edits and deletes never touch placed orders.
type OrderItem struct {
	ID      uint `gorm:"primarykey" json:"-"`
	OrderID uint `json:"-"`

	MenuItemID uint    `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}
