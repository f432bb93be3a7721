// Package forum implements the community forum core: session management,
// role-based moderation and the post/category repository. State lives in
// memory and every successful mutation is written through to a storage.Store
// before the operation returns.
package forum

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"serverhub/models"
	"serverhub/storage"
)

// Service owns the forum state. All exported methods are safe for concurrent
// use within one process; across processes the store is last-write-wins.
type Service struct {
	mu    sync.Mutex
	store storage.Store
	log   *zap.SugaredLogger

	users      []models.User
	posts      []models.Post
	categories []models.Category
	current    *models.User // detached copy of the signed-in roster record
}

// New loads forum state from the store, seeding first-run defaults for any
// key that is absent or unreadable.
func New(store storage.Store, log *zap.SugaredLogger) (*Service, error) {
	s := &Service{store: store, log: log}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) load() error {
	var users []models.User
	if ok, err := s.store.Load(storage.KeyAllUsers, &users); err != nil {
		return err
	} else if ok {
		s.users = normalizeUsers(users)
	}

	var categories []models.Category
	ok, err := s.store.Load(storage.KeyCategories, &categories)
	if err != nil {
		return err
	}
	if ok {
		s.categories = normalizeCategories(categories)
	} else {
		s.categories = models.DefaultCategories()
		if err := s.persistCategories(); err != nil {
			return err
		}
	}

	var posts []models.Post
	ok, err = s.store.Load(storage.KeyPosts, &posts)
	if err != nil {
		return err
	}
	if ok {
		s.posts = normalizePosts(posts)
	} else {
		s.posts = seedPosts()
		if err := s.persistPosts(); err != nil {
			return err
		}
	}

	var current models.User
	if ok, err := s.store.Load(storage.KeyCurrentUser, &current); err != nil {
		return err
	} else if ok && current.Normalize() {
		s.current = s.rebindSession(current)
	}
	return nil
}

// rebindSession points the restored session at the roster record with the
// same username, so moderation applied in a previous run is reflected after
// restart. A session user missing from the roster (data predating the roster
// key) is kept as-is.
func (s *Service) rebindSession(u models.User) *models.User {
	if i := s.findUser(u.Username); i >= 0 {
		cur := s.users[i]
		return &cur
	}
	cur := u
	return &cur
}

// seedPosts is the first-run feed carried over from the legacy portal: one pinned
// welcome announcement with its display counters carried over.
func seedPosts() []models.Post {
	return []models.Post{{
		ID:        "1",
		Author:    models.NewUser("admin", "Administrator", models.RoleAdmin),
		Title:     "Welcome to the forum!",
		Content:   "This is the place to discuss everything related to the server.",
		Category:  "announcements",
		Replies:   5,
		Views:     120,
		Timestamp: time.Now(),
		IsPinned:  true,
	}}
}

func normalizeUsers(in []models.User) []models.User {
	out := in[:0]
	seen := make(map[string]bool, len(in))
	for i := range in {
		if !in[i].Normalize() || seen[in[i].Username] {
			continue
		}
		seen[in[i].Username] = true
		out = append(out, in[i])
	}
	return out
}

func normalizePosts(in []models.Post) []models.Post {
	out := in[:0]
	seen := make(map[string]bool, len(in))
	for i := range in {
		if !in[i].Normalize() || seen[in[i].ID] {
			continue
		}
		seen[in[i].ID] = true
		out = append(out, in[i])
	}
	return out
}

func normalizeCategories(in []models.Category) []models.Category {
	out := in[:0]
	seen := make(map[string]bool, len(in))
	for i := range in {
		if !in[i].Normalize() || seen[in[i].ID] {
			continue
		}
		seen[in[i].ID] = true
		out = append(out, in[i])
	}
	return out
}

func (s *Service) findUser(username string) int {
	for i := range s.users {
		if s.users[i].Username == username {
			return i
		}
	}
	return -1
}

func (s *Service) findCategory(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) persistUsers() error {
	return s.store.Save(storage.KeyAllUsers, s.users)
}

func (s *Service) persistPosts() error {
	return s.store.Save(storage.KeyPosts, s.posts)
}

func (s *Service) persistCategories() error {
	return s.store.Save(storage.KeyCategories, s.categories)
}

func (s *Service) persistSession() error {
	if s.current == nil {
		return s.store.Delete(storage.KeyCurrentUser)
	}
	return s.store.Save(storage.KeyCurrentUser, s.current)
}

// Users returns a copy of the roster in registration order.
func (s *Service) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}
