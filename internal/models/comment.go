package models

import (
	"time"
)

// Comment belongs to exactly one post and carries its own vote
// counters, tracked independently of the parent post's vote state.
// Replies form a comment tree.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	ParentID  string    `json:"parentId,omitempty"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	Upvotes   int64     `json:"upvotes"`
	Downvotes int64     `json:"downvotes"`
	Replies   []Comment `json:"replies"`
	CreatedAt time.Time `json:"createdAt"`
	UserVote  VoteState `json:"userVote,omitempty"`
}
