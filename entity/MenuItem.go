package entity

import "time"

// Categories a menu item may belong to. The store rejects anything else at
// write time.
var MenuCategories = []string{
	"Shake", "Special", "Juice", "Icecream Cup",
	"Pizza", "Burger", "Grill Sandwich", "Sandwich", "Mojio",
}

func ValidCategory(c string) bool {
	for _, v := range MenuCategories {
		if v == c {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID       uint    `gorm:"primarykey" json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Category string  `json:"category"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
