package comments

import "time"

// MaxCommentsPerPost caps the thread length for a single post.
// Creation beyond the cap is rejected with ErrCommentLimitReached.
const MaxCommentsPerPost = 10

// Comment is a reply to a single post. PostID is a relation only; a comment
// does not own its post's lifecycle and vice versa. Field semantics match
// the analogous Post fields.
type Comment struct {
	ID            string    `json:"id"`
	PostID        string    `json:"postId"`
	Content       string    `json:"content"`
	Timestamp     string    `json:"timestamp"`
	CreatedAt     time.Time `json:"createdAt"`
	Upvotes       int       `json:"upvotes"`
	Downvotes     int       `json:"downvotes"`
	Hashtags      []string  `json:"hashtags"`
	IsUserComment bool      `json:"isUserComment"`
}
