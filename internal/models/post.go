package models

import (
	"time"
)

// MaxContentLength bounds post content length in characters.
const MaxContentLength = 500

// MediaType tags the optional media attachment of a post.
type MediaType string

// Media type constants
const (
	MediaTypeNone  MediaType = ""
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// VoteState is the current viewer's vote on a post or comment.
// It is viewer-relative, not an intrinsic property of the entity.
type VoteState string

// Vote state constants
const (
	VoteNone VoteState = ""
	VoteUp   VoteState = "up"
	VoteDown VoteState = "down"
)

// Valid reports whether v is one of the three defined vote states.
func (v VoteState) Valid() bool {
	return v == VoteNone || v == VoteUp || v == VoteDown
}

// Post represents a content unit. Authorship is immutable after
// creation. Upvotes and Downvotes are aggregate counters independent
// of any single viewer's vote state; UserVote and HasUserTipped are
// viewer-relative overlays kept embedded here because this is a
// single-viewer client.
type Post struct {
	ID            string    `json:"id"`
	Author        User      `json:"author"`
	Content       string    `json:"content"`
	MediaURL      string    `json:"mediaUrl,omitempty"`
	MediaType     MediaType `json:"mediaType,omitempty"`
	Tags          []string  `json:"tags"`
	Upvotes       int64     `json:"upvotes"`
	Downvotes     int64     `json:"downvotes"`
	CommentCount  int64     `json:"commentCount"`
	TipAmount     float64   `json:"tipAmount"`
	CreatedAt     time.Time `json:"createdAt"`
	UserVote      VoteState `json:"userVote,omitempty"`
	HasUserTipped bool      `json:"hasUserTipped"`
}

// Score returns the trending score (upvotes minus downvotes).
func (p *Post) Score() int64 {
	return p.Upvotes - p.Downvotes
}
