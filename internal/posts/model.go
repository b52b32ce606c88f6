package posts

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"time"
)

const wordsPerMinute = 200

// ID is the opaque post identifier. The posts document uses numbers, but
// strings are accepted too.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// ImageURL is an optional image reference. Anything other than a JSON
// string decodes as empty.
type ImageURL string

func (u *ImageURL) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*u = ""
		return nil
	}
	*u = ImageURL(s)
	return nil
}

// Tags is a post's tag list. A value that is not an array decodes as no
// tags, and elements that are not strings are dropped.
type Tags []string

func (t *Tags) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		*t = nil
		return nil
	}
	tags := make(Tags, 0, len(raw))
	for _, r := range raw {
		if len(r) == 0 || r[0] != '"' {
			continue
		}
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			continue
		}
		tags = append(tags, s)
	}
	*t = tags
	return nil
}

type Post struct {
	ID         ID       `json:"id"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Author     string   `json:"author"`
	Date       string   `json:"date"`
	CoverImage ImageURL `json:"coverImage,omitempty"`
	Tags       Tags     `json:"tags"`
}

// Cover returns the cover image URL, or fallback when the post has none.
func (p *Post) Cover(fallback string) string {
	if p.CoverImage == "" {
		return fallback
	}
	return string(p.CoverImage)
}

// ReadingTime is the estimated reading time in whole minutes.
func (p *Post) ReadingTime() int {
	words := len(strings.Fields(p.Content))
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

var dateLayouts = []string{time.DateOnly, time.RFC3339, time.RFC3339Nano}

// DisplayDate formats the ISO-8601 date as "January 2, 2006". Dates that do
// not parse are returned unchanged.
func (p *Post) DisplayDate() string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, p.Date); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return p.Date
}
