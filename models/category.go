package models

import (
	"regexp"
	"strings"
)

var slugSpaces = regexp.MustCompile(`\s+`)

// Category is a board that groups posts. Its id doubles as the foreign key
// posts reference, so it never changes after creation.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Slugify derives a category id from its display name: lowercased, with
// whitespace runs collapsed to single hyphens.
func Slugify(name string) string {
	return slugSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// DefaultCategories returns the built-in board set used when the store holds
// none.
func DefaultCategories() []Category {
	return []Category{
		{ID: "discussions", Name: "Discussions", Icon: "MessageSquare", Description: "General talk about the server and the community"},
		{ID: "announcements", Name: "Announcements", Icon: "Megaphone", Description: "Official announcements from the team"},
		{ID: "news", Name: "News", Icon: "Newspaper", Description: "Server updates and changelogs"},
		{ID: "faq", Name: "FAQ", Icon: "HelpCircle", Description: "Frequently asked questions"},
		{ID: "support", Name: "Support", Icon: "LifeBuoy", Description: "Get help from the staff"},
	}
}

// Normalize repairs a category decoded from untrusted storage. It reports
// false when the record has no id and should be dropped.
func (c *Category) Normalize() bool {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return false
	}
	if c.Name == "" {
		c.Name = c.ID
	}
	return true
}
