package listing

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/jeremyjsx/folio/internal/posts"
)

func testPosts() []*posts.Post {
	return []*posts.Post{
		{ID: "1", Slug: "a", Title: "Go Basics", Tags: []string{"go", "backend"}},
		{ID: "2", Slug: "b", Title: "Rust Intro", Tags: []string{"rust"}},
		{ID: "3", Slug: "c", Title: "Go Concurrency", Tags: []string{"go", "concurrency"}},
	}
}

func slugs(all []*posts.Post) []string {
	out := []string{}
	for _, p := range all {
		out = append(out, p.Slug)
	}
	return out
}

func TestFromValues(t *testing.T) {
	v, _ := url.ParseQuery("q=go&tag=backend&view=list")
	s := FromValues(v)
	want := State{Query: "go", Tag: "backend", View: List}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}

	s = FromValues(url.Values{"view": {"carousel"}})
	if s.View != Grid {
		t.Errorf("unknown view should fall back to grid, got %q", s.View)
	}
}

func TestState_Values(t *testing.T) {
	s := State{Query: "go", Tag: "backend", View: List}
	got := s.Values()
	if got.Get("q") != "go" || got.Get("view") != "list" {
		t.Errorf("got %v", got)
	}
	if got.Has("tag") {
		t.Error("selected tag must not be encoded")
	}
	if enc := NewState().Values().Encode(); enc != "" {
		t.Errorf("default state encoded as %q", enc)
	}
}

func TestState_ToggleTag(t *testing.T) {
	s := NewState()
	s = s.ToggleTag("go")
	if s.Tag != "go" {
		t.Fatalf("tag = %q", s.Tag)
	}
	s = s.ToggleTag("rust")
	if s.Tag != "rust" {
		t.Fatalf("tag = %q", s.Tag)
	}
	s = s.ToggleTag("rust")
	if s.Tag != "" {
		t.Errorf("toggling the selected tag should clear it, got %q", s.Tag)
	}
}

func TestState_IsImmutable(t *testing.T) {
	s := NewState()
	next := s.WithQuery("go").ToggleTag("backend").WithView(List)
	if s != NewState() {
		t.Errorf("receiver state changed: %+v", s)
	}
	if next.Query != "go" || next.Tag != "backend" || next.View != List {
		t.Errorf("next = %+v", next)
	}
}

func TestState_Clear(t *testing.T) {
	s := State{Query: "go", Tag: "backend", View: List}.Clear()
	if s.Query != "" || s.Tag != "" {
		t.Errorf("got %+v", s)
	}
	if s.View != List {
		t.Errorf("clear should keep the view mode, got %q", s.View)
	}
	if s.Filtered() {
		t.Error("cleared state reports filters")
	}
}

func TestState_Apply(t *testing.T) {
	all := testPosts()
	tests := []struct {
		name  string
		state State
		want  []string
	}{
		{"no filters", NewState(), []string{"a", "b", "c"}},
		{"search", NewState().WithQuery("go"), []string{"a", "c"}},
		{"tag", NewState().ToggleTag("RUST"), []string{"b"}},
		{"search and tag", NewState().WithQuery("go").ToggleTag("concurrency"), []string{"c"}},
		{"disjoint", NewState().WithQuery("rust").ToggleTag("go"), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugs(tt.state.Apply(all)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	all := testPosts()

	v := Derive(all, NewState())
	if v.Summary != "Showing all 3 articles" || v.Total != 3 || v.Shown != 3 {
		t.Errorf("got %+v", v)
	}
	if !reflect.DeepEqual(v.Tags, []string{"backend", "concurrency", "go", "rust"}) {
		t.Errorf("tags = %v", v.Tags)
	}

	v = Derive(all, NewState().WithQuery("go"))
	if v.Summary != "Showing 2 of 3 articles" || v.Shown != 2 {
		t.Errorf("got %+v", v)
	}
	if len(v.Tags) != 4 {
		t.Errorf("tag index should cover the whole collection, got %v", v.Tags)
	}

	v = Derive(all, NewState().WithQuery("zzz"))
	if v.Posts == nil || len(v.Posts) != 0 {
		t.Errorf("empty result should be an empty slice, got %#v", v.Posts)
	}
}

func TestDerive_FeaturedTags(t *testing.T) {
	var all []*posts.Post
	for _, tag := range []string{"j", "i", "h", "g", "f", "e", "d", "c", "b", "a"} {
		all = append(all, &posts.Post{Slug: tag, Tags: []string{tag}})
	}
	v := Derive(all, NewState())
	want := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	if !reflect.DeepEqual(v.FeaturedTags, want) {
		t.Errorf("featured = %v, want %v", v.FeaturedTags, want)
	}
	if len(v.Tags) != 10 {
		t.Errorf("tags = %v", v.Tags)
	}
}
