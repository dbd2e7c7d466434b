package playback

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
)

// Doer issues one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Reporter notifies the view endpoint once playback first starts. The GET is
// fire-and-forget: no timeout, no cancellation, no body. A response with a
// status in [200,400) marks the view reported and removes the play listener
// so no further request is ever issued for this player instance. On any
// other outcome the listener stays armed and the next play event retries
// with a fresh, independent request; overlapping in-flight requests are
// accepted.
type Reporter struct {
	url    string
	client Doer

	mu       sync.Mutex
	reported bool
	off      func()

	inflight sync.WaitGroup
}

// newReporter subscribes to the play event exactly once. An empty url
// disables reporting entirely: nil is returned and nothing subscribes.
func newReporter(engine Engine, url string, client Doer) *Reporter {
	if url == "" {
		return nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	r := &Reporter{url: url, client: client}
	r.off = engine.On(EventPlay, r.onPlay)
	return r
}

// Reported reports whether the view notification has succeeded.
func (r *Reporter) Reported() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reported
}

func (r *Reporter) onPlay() {
	r.mu.Lock()
	if r.reported {
		// A success raced a pending play delivery; nothing to do.
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		r.issue()
	}()
}

func (r *Reporter) issue() {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, r.url, nil)
	if err != nil {
		slog.Error("playback: invalid report URL", "url", r.url, "error", err)
		return
	}

	resp, err := r.client.Do(req)
	if err != nil {
		// Recoverable: the armed listener retries on the next play.
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reported {
		return
	}
	r.reported = true
	r.off()
}

// wait blocks until all in-flight report requests complete. Test hook.
func (r *Reporter) wait() {
	r.inflight.Wait()
}
