package posts

import (
	"fmt"
	"time"
)

// Post is a top-level anonymous message.
//
// Content holds the display text with hashtags already stripped; the tags
// themselves live in Hashtags, in first-seen order with duplicates kept.
// Replies mirrors the live comment count for the post and is only ever
// written through the reply-count synchronizer, never adjusted in place.
type Post struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Timestamp  string    `json:"timestamp"` // human-readable age, rendered at read time
	CreatedAt  time.Time `json:"createdAt"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	Replies    int       `json:"replies"`
	Hashtags   []string  `json:"hashtags"`
	IsUserPost bool      `json:"isUserPost"`
}

// RelativeAge renders how long ago t was relative to now, in the compact
// form the feed displays ("now", "5m ago", "2h ago", "3d ago").
func RelativeAge(t, now time.Time) string {
	age := now.Sub(t)
	switch {
	case age < time.Minute:
		return "now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
