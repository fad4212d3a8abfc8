package repository

import (
	"time"

	"github.com/threadchain/threadchain/internal/models"
)

// profileRow is the wire/table shape of a profile record. Optional
// columns are pointers so that an absent value stays absent instead of
// being mistaken for a zero written by the server.
type profileRow struct {
	ID             string    `gorm:"primaryKey;column:id" json:"id"`
	WalletAddress  *string   `gorm:"column:wallet_address" json:"wallet_address"`
	Username       string    `gorm:"column:username" json:"username"`
	DisplayName    string    `gorm:"column:display_name" json:"display_name"`
	Bio            *string   `gorm:"column:bio" json:"bio"`
	Avatar         *string   `gorm:"column:avatar" json:"avatar"`
	FollowerCount  *int64    `gorm:"column:follower_count" json:"follower_count"`
	FollowingCount *int64    `gorm:"column:following_count" json:"following_count"`
	IsVerified     *bool     `gorm:"column:is_verified" json:"is_verified"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for profileRow
func (profileRow) TableName() string {
	return "profiles"
}

// postRow is the wire/table shape of a post record with its nested
// author sub-record.
type postRow struct {
	ID           string      `gorm:"primaryKey;column:id" json:"id"`
	AuthorID     string      `gorm:"column:author_id" json:"author_id"`
	Content      string      `gorm:"column:content" json:"content"`
	MediaURL     *string     `gorm:"column:media_url" json:"media_url"`
	MediaType    *string     `gorm:"column:media_type" json:"media_type"`
	Upvotes      *int64      `gorm:"column:upvotes" json:"upvotes"`
	Downvotes    *int64      `gorm:"column:downvotes" json:"downvotes"`
	CommentCount *int64      `gorm:"column:comment_count" json:"comment_count"`
	TipAmount    *float64    `gorm:"column:tip_amount" json:"tip_amount"`
	CreatedAt    time.Time   `gorm:"column:created_at" json:"created_at"`
	Author       *profileRow `gorm:"foreignKey:AuthorID;references:ID" json:"profiles"`
}

// TableName specifies the table name for postRow
func (postRow) TableName() string {
	return "posts"
}

// postTagRow is a post-to-tag mapping
type postTagRow struct {
	PostID string `gorm:"primaryKey;column:post_id" json:"post_id"`
	Tag    string `gorm:"primaryKey;column:tag" json:"tag"`
}

// TableName specifies the table name for postTagRow
func (postTagRow) TableName() string {
	return "post_tags"
}

// toModel flattens a profile row into a User entity. Missing numeric
// counters default to 0; missing optional strings stay empty.
func (r *profileRow) toModel() models.User {
	user := models.User{
		ID:          r.ID,
		Username:    r.Username,
		DisplayName: r.DisplayName,
		CreatedAt:   r.CreatedAt,
	}
	if r.WalletAddress != nil {
		user.WalletAddress = *r.WalletAddress
	}
	if r.Bio != nil {
		user.Bio = *r.Bio
	}
	if r.Avatar != nil {
		user.Avatar = *r.Avatar
	}
	if r.FollowerCount != nil {
		user.FollowerCount = *r.FollowerCount
	}
	if r.FollowingCount != nil {
		user.FollowingCount = *r.FollowingCount
	}
	if r.IsVerified != nil {
		user.IsVerified = *r.IsVerified
	}
	return user
}

// toModel normalizes a post row and its nested author sub-record into
// a Post entity. Tags are attached separately via a batch join.
func (r *postRow) toModel() models.Post {
	post := models.Post{
		ID:        r.ID,
		Content:   r.Content,
		Tags:      []string{},
		CreatedAt: r.CreatedAt,
	}
	if r.Author != nil {
		post.Author = r.Author.toModel()
	}
	if r.MediaURL != nil {
		post.MediaURL = *r.MediaURL
	}
	if r.MediaType != nil {
		post.MediaType = models.MediaType(*r.MediaType)
	}
	if r.Upvotes != nil {
		post.Upvotes = *r.Upvotes
	}
	if r.Downvotes != nil {
		post.Downvotes = *r.Downvotes
	}
	if r.CommentCount != nil {
		post.CommentCount = *r.CommentCount
	}
	if r.TipAmount != nil {
		post.TipAmount = *r.TipAmount
	}
	return post
}

// toModels normalizes a slice of post rows preserving order.
func toModels(rows []postRow) []models.Post {
	posts := make([]models.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].toModel())
	}
	return posts
}

// attachTags joins fetched tag rows onto posts by post ID.
func attachTags(posts []models.Post, tagRows []postTagRow) {
	if len(tagRows) == 0 {
		return
	}
	byPost := make(map[string][]string)
	for _, row := range tagRows {
		byPost[row.PostID] = append(byPost[row.PostID], row.Tag)
	}
	for i := range posts {
		if tags, ok := byPost[posts[i].ID]; ok {
			posts[i].Tags = tags
		}
	}
}
