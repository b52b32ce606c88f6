package posts

import (
	"sort"
	"strings"
)

// FilterBySearch keeps posts whose title, excerpt or any tag contains query,
// ignoring case. A blank query returns posts as is.
func FilterBySearch(posts []*Post, query string) []*Post {
	if strings.TrimSpace(query) == "" {
		return posts
	}

	q := strings.ToLower(query)
	out := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		if matchesSearch(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesSearch(p *Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Excerpt), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterByTag keeps posts carrying tag, compared case-insensitively. An empty
// tag returns posts as is.
func FilterByTag(posts []*Post, tag string) []*Post {
	if tag == "" {
		return posts
	}

	out := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if p != nil && HasTag(p, tag) {
			out = append(out, p)
		}
	}
	return out
}

func HasTag(p *Post, tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// AllTags returns every distinct tag, sorted. Tags that differ only in case
// are kept as separate entries.
func AllTags(posts []*Post) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, p := range posts {
		if p == nil {
			continue
		}
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

// FindBySlug returns the first post whose slug equals slug exactly.
func FindBySlug(posts []*Post, slug string) (*Post, bool) {
	for _, p := range posts {
		if p != nil && p.Slug == slug {
			return p, true
		}
	}
	return nil, false
}
