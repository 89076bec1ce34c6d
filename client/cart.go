package client

import "github.com/deviill007/ShakeHubInShop/entity"

// CartItem is one line of the customer's selection, a copy of the menu item
// fields at the moment it was added.
type CartItem struct {
	MenuItemID uint    `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Cart lives only in the customer view's memory; it is never persisted and
// is thrown away after checkout.
type Cart struct {
	items []CartItem
}

// Add puts qty more of the item in the cart, merging with an existing line.
func (c *Cart) Add(item entity.MenuItem, qty int) {
	if qty <= 0 {
		return
	}
	for i := range c.items {
		if c.items[i].MenuItemID == item.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, CartItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   qty,
	})
}

// SetQuantity changes a line's quantity. Zero or less removes the line; the
// cart never holds an empty line.
func (c *Cart) SetQuantity(menuItemID uint, qty int) {
	for i := range c.items {
		if c.items[i].MenuItemID == menuItemID {
			if qty <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity = qty
			}
			return
		}
	}
}

func (c *Cart) Remove(menuItemID uint) {
	c.SetQuantity(menuItemID, 0)
}

func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total is the client-computed sum the order is placed with. The server
// stores it as given.
func (c *Cart) Total() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func (c *Cart) Clear() {
	c.items = nil
}
