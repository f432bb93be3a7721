package forum

import (
	"strconv"
	"strings"
	"time"

	"serverhub/models"
	"serverhub/utils"
)

// CreatePost publishes a new topic as actor. The post is prepended so the
// feed stays newest-first, with the author embedded as a snapshot of the
// actor at publish time. Title and content are sanitized before storage.
func (s *Service) CreatePost(actor *models.User, title, content, categoryID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if actor.IsBanned {
		return nil, ErrBanned
	}
	title = utils.SanitizeTitle(strings.TrimSpace(title))
	if title == "" {
		return nil, ErrValidation
	}
	content = utils.SanitizeContent(strings.TrimSpace(content))
	if content == "" {
		return nil, ErrValidation
	}
	if s.findCategory(categoryID) < 0 {
		return nil, ErrValidation
	}

	post := models.Post{
		ID:        s.nextPostID(),
		Author:    *actor,
		Title:     title,
		Content:   content,
		Category:  categoryID,
		Timestamp: time.Now(),
	}
	s.posts = append([]models.Post{post}, s.posts...)
	if err := s.persistPosts(); err != nil {
		return nil, err
	}
	s.log.Infof("%q posted %q in %s", actor.Username, post.Title, categoryID)
	out := post
	return &out, nil
}

// nextPostID returns the current millisecond timestamp as a string, bumped
// forward past any id already taken so rapid consecutive posts stay unique.
func (s *Service) nextPostID() string {
	ms := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if !s.postIDTaken(id) {
			return id
		}
		ms++
	}
}

func (s *Service) postIDTaken(id string) bool {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return true
		}
	}
	return false
}

// ListByCategory filters the feed down to one category, preserving the
// stored newest-first order.
func (s *Service) ListByCategory(categoryID string) []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Post
	for _, p := range s.posts {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// Posts returns a copy of the full feed, newest first.
func (s *Service) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}
