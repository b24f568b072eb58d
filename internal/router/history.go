package router

// Change is delivered to subscribers after every navigation.
type Change struct {
	From     string
	To       string
	Route    Route
	Replaced bool // the requested path redirected and its entry was replaced
}

// History is an in-memory session history. It is owned by a single
// navigation loop and is not safe for concurrent use.
type History struct {
	entries []string
	index   int
	subs    map[int]func(Change)
	nextID  int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{index: -1, subs: map[int]func(Change){}}
}

// Current returns the path of the active entry, or "" before any navigation.
func (h *History) Current() string {
	if h.index < 0 {
		return ""
	}
	return h.entries[h.index]
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the stored paths.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Navigate pushes path. When path does not match a page the new entry is
// replaced by the redirect target before subscribers run, so an invalid
// path never stays in the history.
func (h *History) Navigate(path string) Route {
	from := h.Current()
	res := Match(path)
	replaced := false
	for res.IsRedirect() {
		path = res.Redirect
		res = Match(path)
		replaced = true
	}
	// drop forward entries, as a browser does on push
	h.entries = append(h.entries[:h.index+1], path)
	h.index = len(h.entries) - 1
	h.notify(Change{From: from, To: path, Route: res.Route, Replaced: replaced})
	return res.Route
}

// Back moves to the previous entry. It reports false at the first entry.
func (h *History) Back() (Route, bool) {
	if h.index <= 0 {
		return Route{}, false
	}
	from := h.Current()
	h.index--
	to := h.Current()
	res := Match(to)
	h.notify(Change{From: from, To: to, Route: res.Route})
	return res.Route, true
}

// Subscribe registers fn for route changes. The returned func cancels it.
func (h *History) Subscribe(fn func(Change)) (cancel func()) {
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	return func() { delete(h.subs, id) }
}

func (h *History) notify(c Change) {
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.subs[id]; ok {
			fn(c)
		}
	}
}
