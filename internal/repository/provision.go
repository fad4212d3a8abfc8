package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/threadchain/threadchain/internal/models"
)

// Migrate creates the remote store tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&profileRow{}, &postRow{}, &postTagRow{})
}

// Provision writes a deterministic dataset into the remote store
// tables, upserting by primary key so reruns are idempotent.
func Provision(ctx context.Context, db *gorm.DB, users []models.User, posts []models.Post) error {
	if err := Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range users {
			row := profileRowFrom(&users[i])
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to write profile %s: %w", users[i].ID, err)
			}
		}

		for i := range posts {
			row := postRowFrom(&posts[i])
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to write post %s: %w", posts[i].ID, err)
			}
			for _, tag := range posts[i].Tags {
				tagRow := postTagRow{PostID: posts[i].ID, Tag: tag}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tagRow).Error; err != nil {
					return fmt.Errorf("failed to write tag %s for post %s: %w", tag, posts[i].ID, err)
				}
			}
		}

		return nil
	})
}

// profileRowFrom maps a User entity back onto its table row shape.
func profileRowFrom(u *models.User) profileRow {
	followers, following := u.FollowerCount, u.FollowingCount
	verified := u.IsVerified
	row := profileRow{
		ID:             u.ID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		FollowerCount:  &followers,
		FollowingCount: &following,
		IsVerified:     &verified,
		CreatedAt:      u.CreatedAt,
	}
	if u.WalletAddress != "" {
		row.WalletAddress = &u.WalletAddress
	}
	if u.Bio != "" {
		row.Bio = &u.Bio
	}
	if u.Avatar != "" {
		row.Avatar = &u.Avatar
	}
	return row
}

// postRowFrom maps a Post entity back onto its table row shape.
// Viewer-relative fields are not part of the remote schema.
func postRowFrom(p *models.Post) postRow {
	upvotes, downvotes, comments := p.Upvotes, p.Downvotes, p.CommentCount
	tips := p.TipAmount
	row := postRow{
		ID:           p.ID,
		AuthorID:     p.Author.ID,
		Content:      p.Content,
		Upvotes:      &upvotes,
		Downvotes:    &downvotes,
		CommentCount: &comments,
		TipAmount:    &tips,
		CreatedAt:    p.CreatedAt,
	}
	if p.MediaURL != "" {
		row.MediaURL = &p.MediaURL
	}
	if p.MediaType != models.MediaTypeNone {
		mt := string(p.MediaType)
		row.MediaType = &mt
	}
	return row
}
