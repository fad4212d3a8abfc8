package feed

import (
	"sort"
	"strings"

	"github.com/threadchain/threadchain/internal/models"
)

// Tab selects the feed ordering mode.
type Tab string

// Feed tab constants
const (
	TabTrending  Tab = "trending"
	TabFollowing Tab = "following"
	TabHot       Tab = "hot"
	TabNew       Tab = "new"
)

// Valid reports whether t is one of the defined feed tabs.
func (t Tab) Valid() bool {
	switch t {
	case TabTrending, TabFollowing, TabHot, TabNew:
		return true
	}
	return false
}

// searchableFields is the lowercased projection of the post fields the
// free-text search matches against.
type searchableFields struct {
	content     string
	displayName string
	username    string
	tags        []string
}

func searchable(p *models.Post) searchableFields {
	fields := searchableFields{
		content:     strings.ToLower(p.Content),
		displayName: strings.ToLower(p.Author.DisplayName),
		username:    strings.ToLower(p.Author.Username),
		tags:        make([]string, 0, len(p.Tags)),
	}
	for _, tag := range p.Tags {
		fields.tags = append(fields.tags, strings.ToLower(tag))
	}
	return fields
}

// matches reports whether any searchable field contains the lowercased
// query as a substring.
func (f *searchableFields) matches(query string) bool {
	if strings.Contains(f.content, query) ||
		strings.Contains(f.displayName, query) ||
		strings.Contains(f.username, query) {
		return true
	}
	for _, tag := range f.tags {
		if strings.Contains(tag, query) {
			return true
		}
	}
	return false
}

// matchesHashtag reports whether any tag contains the lowercased
// hashtag as a substring. Substring rather than exact matching is
// long-standing behavior the UI depends on.
func (f *searchableFields) matchesHashtag(hashtag string) bool {
	for _, tag := range f.tags {
		if strings.Contains(tag, hashtag) {
			return true
		}
	}
	return false
}

// ComputeVisible derives the visible post list from the canonical
// collection. Narrowing is mutually exclusive with search taking
// precedence over the selected hashtag; the narrowed set is then
// ordered by the active tab. The input collection is never mutated.
func ComputeVisible(posts []models.Post, searchQuery, selectedHashtag string, activeTab Tab) []models.Post {
	visible := narrow(posts, searchQuery, selectedHashtag)

	switch activeTab {
	case TabTrending:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Score() > visible[j].Score()
		})
	case TabHot:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].TipAmount > visible[j].TipAmount
		})
	case TabNew:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].CreatedAt.After(visible[j].CreatedAt)
		})
	case TabFollowing:
		// Pass-through. A follow-graph narrowing predicate may be
		// supplied here once the follow service exists.
	}

	return visible
}

// narrow applies the active narrowing filter and returns a fresh slice.
func narrow(posts []models.Post, searchQuery, selectedHashtag string) []models.Post {
	if searchQuery != "" {
		query := strings.ToLower(searchQuery)
		narrowed := make([]models.Post, 0, len(posts))
		for i := range posts {
			fields := searchable(&posts[i])
			if fields.matches(query) {
				narrowed = append(narrowed, posts[i])
			}
		}
		return narrowed
	}

	if selectedHashtag != "" {
		hashtag := strings.ToLower(selectedHashtag)
		narrowed := make([]models.Post, 0, len(posts))
		for i := range posts {
			fields := searchable(&posts[i])
			if fields.matchesHashtag(hashtag) {
				narrowed = append(narrowed, posts[i])
			}
		}
		return narrowed
	}

	narrowed := make([]models.Post, len(posts))
	copy(narrowed, posts)
	return narrowed
}
