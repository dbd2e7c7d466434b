package playback

import "sync"

// fakeElement records the mutations the bootstrap performs on page elements.
type fakeElement struct {
	class    string
	text     string
	hidden   bool
	children []*fakeElement
}

func (e *fakeElement) Append(child Element) {
	e.children = append(e.children, child.(*fakeElement))
}

func (e *fakeElement) SetText(s string) { e.text = s }

func (e *fakeElement) SetHidden(hidden bool) { e.hidden = hidden }

type fakeHost struct {
	body    *fakeElement
	mounts  map[string]*fakeElement
	created []*fakeElement
}

func newFakeHost() *fakeHost {
	return &fakeHost{body: &fakeElement{class: "body"}, mounts: map[string]*fakeElement{}}
}

func (h *fakeHost) MountPoint(id string) Element {
	if el, ok := h.mounts[id]; ok {
		return el
	}
	return h.body
}

func (h *fakeHost) CreateElement(class string) Element {
	el := &fakeElement{class: class}
	h.created = append(h.created, el)
	return el
}

type fakeListener struct {
	fn     func()
	active bool
}

// fakeEngine implements Engine and records every call so tests can assert
// ordering and one-shot behavior.
type fakeEngine struct {
	mu sync.Mutex

	mount Element
	opts  EngineOptions

	source     Source
	sourceSet  bool
	flags      Flags
	clipStarts []float64
	clipEnds   []float64
	shareItems []ShareItem

	listeners map[Event][]*fakeListener
	offCalls  map[Event]int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		listeners: map[Event][]*fakeListener{},
		offCalls:  map[Event]int{},
	}
}

func (f *fakeEngine) factory() EngineFactory {
	return func(mount Element, opts EngineOptions) Engine {
		f.mount = mount
		f.opts = opts
		return f
	}
}

func (f *fakeEngine) SetSource(s Source) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.source = s
	f.sourceSet = true
}

func (f *fakeEngine) SetFlags(flags Flags) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flags = flags
}

func (f *fakeEngine) SetClipStart(seconds float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clipStarts = append(f.clipStarts, seconds)
}

func (f *fakeEngine) SetClipEnd(seconds float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clipEnds = append(f.clipEnds, seconds)
}

func (f *fakeEngine) SetShareItems(items []ShareItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shareItems = items
}

func (f *fakeEngine) On(ev Event, fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := &fakeListener{fn: fn, active: true}
	f.listeners[ev] = append(f.listeners[ev], l)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if l.active {
			l.active = false
			f.offCalls[ev]++
		}
	}
}

// fire delivers one lifecycle event to every listener still subscribed.
func (f *fakeEngine) fire(ev Event) {
	f.mu.Lock()
	snapshot := make([]*fakeListener, len(f.listeners[ev]))
	copy(snapshot, f.listeners[ev])
	f.mu.Unlock()

	for _, l := range snapshot {
		f.mu.Lock()
		active := l.active
		f.mu.Unlock()
		if active {
			l.fn()
		}
	}
}

func (f *fakeEngine) activeListeners(ev Event) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, l := range f.listeners[ev] {
		if l.active {
			n++
		}
	}
	return n
}
