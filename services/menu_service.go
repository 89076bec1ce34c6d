package services

import (
	"github.com/deviill007/ShakeHubInShop/entity"
	"github.com/deviill007/ShakeHubInShop/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

// Add validates the required fields the way the store schema does and
// creates the item. A zero price counts as missing.
func (s *MenuService) Add(name string, price float64, category, imageURL string) (*entity.MenuItem, error) {
	if name == "" || price == 0 || category == "" {
		return nil, &ValidationError{Message: "Name, price, and category are required"}
	}
	if !entity.ValidCategory(category) {
		return nil, &ValidationError{Message: "Unknown category: " + category}
	}

	item := &entity.MenuItem{
		Name:     name,
		Price:    price,
		Category: category,
		ImageURL: imageURL,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces name, price and category unconditionally. The image URL is
// only overwritten when a non-empty one is supplied, so editing an item
// without re-uploading keeps its picture.
func (s *MenuService) Update(id uint, name string, price float64, category, imageURL string) (*entity.MenuItem, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, &ValidationError{Message: "Unknown category: " + category}
	}

	fields := map[string]interface{}{
		"name":     name,
		"price":    price,
		"category": category,
	}
	if imageURL != "" {
		fields["image_url"] = imageURL
	}
	return s.Repo.UpdateFields(id, fields)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
