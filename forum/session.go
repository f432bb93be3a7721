package forum

import (
	"strings"

	"serverhub/models"
	"serverhub/storage"
)

// Register creates a new account and signs it in. The first account ever
// registered becomes the founder; everyone after starts as a member. The
// password is required but recorded nowhere: the legacy portal never stored
// or verified credentials, and that behavior is kept for data compatibility.
func (s *Service) Register(username, password, nickname string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username = strings.TrimSpace(username)
	nickname = strings.TrimSpace(nickname)
	if username == "" || password == "" || nickname == "" {
		return nil, ErrValidation
	}
	if s.findUser(username) >= 0 {
		return nil, ErrDuplicateUser
	}

	role := models.RoleMember
	if len(s.users) == 0 {
		role = models.RoleFounder
	}
	u := models.NewUser(username, nickname, role)
	s.users = append(s.users, u)
	cur := u
	s.current = &cur

	if err := s.persistUsers(); err != nil {
		return nil, err
	}
	if err := s.persistSession(); err != nil {
		return nil, err
	}
	s.log.Infof("registered user %q with role %s", u.Username, u.Role)
	out := u
	return &out, nil
}

// Login signs in the stored roster record for username. The password is
// accepted but never checked against anything; banned accounts are refused.
func (s *Service) Login(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrValidation
	}
	i := s.findUser(username)
	if i < 0 {
		return nil, ErrUserNotFound
	}
	if s.users[i].IsBanned {
		return nil, ErrBanned
	}

	cur := s.users[i]
	s.current = &cur
	if err := s.persistSession(); err != nil {
		return nil, err
	}
	s.log.Infof("user %q signed in", cur.Username)
	out := cur
	return &out, nil
}

// Logout clears the session and its persisted key. Safe to call repeatedly.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.store.Delete(storage.KeyCurrentUser); err != nil {
		return err
	}
	return nil
}

// CurrentUser returns a copy of the signed-in user, or nil when signed out.
func (s *Service) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}
