package repository

import (
	"reflect"
	"testing"
	"time"

	"github.com/threadchain/threadchain/internal/models"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int64) *int64       { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestProfileRowToModel(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("full row", func(t *testing.T) {
		row := profileRow{
			ID:             "u1",
			WalletAddress:  strPtr("7xKq"),
			Username:       "alice",
			DisplayName:    "Alice",
			Bio:            strPtr("building"),
			Avatar:         strPtr("https://cdn/avatar.png"),
			FollowerCount:  intPtr(12),
			FollowingCount: intPtr(34),
			IsVerified:     boolPtr(true),
			CreatedAt:      created,
		}

		got := row.toModel()
		want := models.User{
			ID:             "u1",
			WalletAddress:  "7xKq",
			Username:       "alice",
			DisplayName:    "Alice",
			Bio:            "building",
			Avatar:         "https://cdn/avatar.png",
			FollowerCount:  12,
			FollowingCount: 34,
			IsVerified:     true,
			CreatedAt:      created,
		}
		if got != want {
			t.Errorf("toModel() = %+v, want %+v", got, want)
		}
	})

	t.Run("absent optionals default to zero", func(t *testing.T) {
		row := profileRow{ID: "u2", Username: "bob", DisplayName: "Bob", CreatedAt: created}

		got := row.toModel()
		if got.WalletAddress != "" || got.Bio != "" || got.Avatar != "" {
			t.Errorf("optional strings not empty: %+v", got)
		}
		if got.FollowerCount != 0 || got.FollowingCount != 0 || got.IsVerified {
			t.Errorf("optional counters not zero: %+v", got)
		}
	})
}

func TestPostRowToModel(t *testing.T) {
	created := time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC)

	t.Run("nested author is flattened", func(t *testing.T) {
		row := postRow{
			ID:           "p1",
			AuthorID:     "u1",
			Content:      "gm",
			MediaURL:     strPtr("https://cdn/pic.png"),
			MediaType:    strPtr("image"),
			Upvotes:      intPtr(10),
			Downvotes:    intPtr(2),
			CommentCount: intPtr(5),
			TipAmount:    floatPtr(1.5),
			CreatedAt:    created,
			Author:       &profileRow{ID: "u1", Username: "alice", DisplayName: "Alice"},
		}

		got := row.toModel()
		if got.Author.Username != "alice" {
			t.Errorf("Author = %+v", got.Author)
		}
		if got.MediaType != models.MediaTypeImage || got.Upvotes != 10 || got.TipAmount != 1.5 {
			t.Errorf("toModel() = %+v", got)
		}
	})

	t.Run("absent counters default to zero", func(t *testing.T) {
		row := postRow{ID: "p2", Content: "hello", CreatedAt: created}

		got := row.toModel()
		if got.Upvotes != 0 || got.Downvotes != 0 || got.CommentCount != 0 || got.TipAmount != 0 {
			t.Errorf("counters not zeroed: %+v", got)
		}
		if got.Tags == nil || len(got.Tags) != 0 {
			t.Errorf("Tags = %v, want empty non-nil slice", got.Tags)
		}
		if got.MediaType != models.MediaTypeNone {
			t.Errorf("MediaType = %q, want none", got.MediaType)
		}
	})
}

func TestToModelsPreservesOrder(t *testing.T) {
	rows := []postRow{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	posts := toModels(rows)
	if len(posts) != 3 || posts[0].ID != "a" || posts[2].ID != "c" {
		t.Errorf("toModels order broken: %+v", posts)
	}
}

func TestAttachTags(t *testing.T) {
	posts := []models.Post{
		{ID: "p1", Tags: []string{}},
		{ID: "p2", Tags: []string{}},
	}
	tagRows := []postTagRow{
		{PostID: "p1", Tag: "solana"},
		{PostID: "p1", Tag: "defi"},
		{PostID: "p3", Tag: "orphan"},
	}

	attachTags(posts, tagRows)

	if !reflect.DeepEqual(posts[0].Tags, []string{"solana", "defi"}) {
		t.Errorf("p1 tags = %v", posts[0].Tags)
	}
	if len(posts[1].Tags) != 0 {
		t.Errorf("p2 tags = %v, want empty", posts[1].Tags)
	}
}

func TestLikePattern(t *testing.T) {
	if got := likePattern("sol"); got != "*sol*" {
		t.Errorf("likePattern = %q, want *sol*", got)
	}
}
