// Package listing derives the displayed post subset from the loaded
// collection and the current search, tag and view selections.
package listing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jeremyjsx/folio/internal/posts"
)

type ViewMode string

const (
	Grid ViewMode = "grid"
	List ViewMode = "list"
)

// FeaturedTagLimit caps how many tags are offered as quick filters.
const FeaturedTagLimit = 8

// State is an immutable snapshot of the listing inputs. Every event returns
// a new State.
type State struct {
	Query string   `json:"q"`
	Tag   string   `json:"tag"`
	View  ViewMode `json:"view"`
}

func NewState() State {
	return State{View: Grid}
}

// FromValues reads q, tag and view from URL query parameters.
func FromValues(v url.Values) State {
	s := NewState().WithQuery(v.Get("q"))
	s.Tag = v.Get("tag")
	return s.WithView(ViewMode(v.Get("view")))
}

// Values encodes the parts of the state that belong in a shareable URL. The
// selected tag is not one of them.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if s.View != "" && s.View != Grid {
		v.Set("view", string(s.View))
	}
	return v
}

func (s State) WithQuery(q string) State {
	s.Query = q
	return s
}

// ToggleTag selects tag, or clears the selection when tag is already selected.
func (s State) ToggleTag(tag string) State {
	if s.Tag == tag {
		s.Tag = ""
	} else {
		s.Tag = tag
	}
	return s
}

// WithView ignores unknown modes.
func (s State) WithView(mode ViewMode) State {
	switch mode {
	case Grid, List:
		s.View = mode
	}
	return s
}

// Clear resets both the search query and the selected tag.
func (s State) Clear() State {
	s.Query = ""
	s.Tag = ""
	return s
}

func (s State) Filtered() bool {
	return strings.TrimSpace(s.Query) != "" || s.Tag != ""
}

// Apply runs the search filter and then the tag filter.
func (s State) Apply(all []*posts.Post) []*posts.Post {
	return posts.FilterByTag(posts.FilterBySearch(all, s.Query), s.Tag)
}

// View is the derived listing for one State.
type View struct {
	State        State         `json:"state"`
	Posts        []*posts.Post `json:"posts"`
	Tags         []string      `json:"tags"`
	FeaturedTags []string      `json:"featured_tags"`
	Total        int           `json:"total"`
	Shown        int           `json:"shown"`
	Summary      string        `json:"summary"`
}

func Derive(all []*posts.Post, s State) View {
	shown := s.Apply(all)
	if shown == nil {
		shown = []*posts.Post{}
	}
	tags := posts.AllTags(all)
	featured := tags
	if len(featured) > FeaturedTagLimit {
		featured = featured[:FeaturedTagLimit]
	}
	return View{
		State:        s,
		Posts:        shown,
		Tags:         tags,
		FeaturedTags: featured,
		Total:        len(all),
		Shown:        len(shown),
		Summary:      summary(len(shown), len(all)),
	}
}

func summary(shown, total int) string {
	if shown == total {
		return fmt.Sprintf("Showing all %d articles", total)
	}
	return fmt.Sprintf("Showing %d of %d articles", shown, total)
}
