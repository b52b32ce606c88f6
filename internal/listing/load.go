package listing

import (
	"context"
	"fmt"

	"github.com/jeremyjsx/folio/internal/posts"
)

type Status int

const (
	StatusLoading Status = iota
	StatusFailed
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusFailed:
		return "failed"
	case StatusReady:
		return "ready"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Load is the state of an asynchronous collection load: loading, failed with
// an error, or ready with posts.
type Load struct {
	status Status
	posts  []*posts.Post
	err    error
}

func Loading() Load {
	return Load{status: StatusLoading}
}

func Failed(err error) Load {
	return Load{status: StatusFailed, err: err}
}

func Ready(all []*posts.Post) Load {
	if all == nil {
		all = []*posts.Post{}
	}
	return Load{status: StatusReady, posts: all}
}

func (l Load) Status() Status { return l.status }
func (l Load) Posts() []*posts.Post { return l.posts }
func (l Load) Err() error { return l.err }

// Run fetches from src once and reports the outcome as Failed or Ready.
func Run(ctx context.Context, src posts.Source) (load Load) {
	defer func() {
		if r := recover(); r != nil {
			load = Failed(fmt.Errorf("load posts: panic: %v", r))
		}
	}()

	all, err := src.Fetch(ctx)
	if err != nil {
		return Failed(err)
	}
	return Ready(all)
}

// View derives the listing for s. It only succeeds once the load is ready.
func (l Load) View(s State) (View, bool) {
	if l.status != StatusReady {
		return View{}, false
	}
	return Derive(l.posts, s), true
}
