package models

import "time"

// Post is a forum topic. Author is a snapshot of the user at publish time,
// not a live reference; later role changes do not rewrite old posts. Replies
// and views are display counters carried through from stored data and never
// incremented here.
type Post struct {
	ID        string    `json:"id"`
	Author    User      `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Replies   int       `json:"replies"`
	Views     int       `json:"views"`
	Timestamp time.Time `json:"timestamp"`
	IsPinned  bool      `json:"isPinned,omitempty"`
}

// Normalize repairs a post decoded from untrusted storage. It reports false
// when the record has no id and should be dropped. The author snapshot is
// repaired best-effort: data written before roles existed lacks them.
func (p *Post) Normalize() bool {
	if p.ID == "" {
		return false
	}
	p.Author.Normalize()
	return true
}
