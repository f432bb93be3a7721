package forum

import (
	"strings"

	"serverhub/models"
)

// CreateCategory adds a new board. Admins only. The id is a slug derived
// from the name; a name that slugs to an existing id is rejected rather
// than silently replacing a board that posts already reference.
func (s *Service) CreateCategory(actor *models.User, name, icon, description string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !actor.CanCreateCategory() {
		return nil, ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}
	id := models.Slugify(name)
	if s.findCategory(id) >= 0 {
		return nil, ErrDuplicateCategory
	}

	cat := models.Category{ID: id, Name: name, Icon: icon, Description: description}
	s.categories = append(s.categories, cat)
	if err := s.persistCategories(); err != nil {
		return nil, err
	}
	s.log.Infof("%q created category %q", actor.Username, id)
	out := cat
	return &out, nil
}

// Categories returns a copy of the board list in stored order.
func (s *Service) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}
