package forum

import "serverhub/models"

// ChangeRole sets a new role on the target account. Admins only (founder or
// admin). The ban flag is kept in lockstep with the banned role, and an
// admin changing their own account sees the live session updated too.
func (s *Service) ChangeRole(actor *models.User, username string, role models.Role) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !models.ValidRole(role) {
		return nil, ErrValidation
	}
	i := s.findUser(username)
	if i < 0 {
		return nil, ErrUserNotFound
	}

	s.users[i].Role = role
	s.users[i].IsBanned = role == models.RoleBanned
	if err := s.persistUsers(); err != nil {
		return nil, err
	}
	if err := s.syncSession(i); err != nil {
		return nil, err
	}
	s.log.Infof("%q changed role of %q to %s", actor.Username, username, role)
	out := s.users[i]
	return &out, nil
}

// ToggleBan flips the ban on the target account. Moderators and admins may
// do this. Banning overwrites the role with banned; unbanning always resets
// to member, so an elevated role does not survive a ban cycle. That matches
// the legacy portal and is deliberate.
func (s *Service) ToggleBan(actor *models.User, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !actor.CanModerate() {
		return nil, ErrForbidden
	}
	i := s.findUser(username)
	if i < 0 {
		return nil, ErrUserNotFound
	}

	if s.users[i].IsBanned {
		s.users[i].IsBanned = false
		s.users[i].Role = models.RoleMember
	} else {
		s.users[i].IsBanned = true
		s.users[i].Role = models.RoleBanned
	}
	if err := s.persistUsers(); err != nil {
		return nil, err
	}
	if err := s.syncSession(i); err != nil {
		return nil, err
	}
	s.log.Infof("%q toggled ban on %q (banned=%t)", actor.Username, username, s.users[i].IsBanned)
	out := s.users[i]
	return &out, nil
}

// syncSession copies roster index i into the live session when it is the
// same account, then re-persists the session key.
func (s *Service) syncSession(i int) error {
	if s.current == nil || s.current.Username != s.users[i].Username {
		return nil
	}
	*s.current = s.users[i]
	return s.persistSession()
}
