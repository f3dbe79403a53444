package tracklist

// Entry is one track of a tracklist.
type Entry struct {
	Number int
	Title  string
}

// Tracklist is an ordered mapping from track title to track number.
//
// Titles keep the position of their first occurrence; setting an existing
// title again replaces its number.
type Tracklist struct {
	entries []Entry
	index   map[string]int
}

// New creates an empty Tracklist.
func New() *Tracklist {
	return &Tracklist{index: make(map[string]int)}
}

// Set records number for title.
func (t *Tracklist) Set(title string, number int) {
	if i, ok := t.index[title]; ok {
		t.entries[i].Number = number
		return
	}
	t.index[title] = len(t.entries)
	t.entries = append(t.entries, Entry{Number: number, Title: title})
}

// Number returns the number recorded for title.
func (t *Tracklist) Number(title string) (int, bool) {
	i, ok := t.index[title]
	if !ok {
		return 0, false
	}
	return t.entries[i].Number, true
}

// Entries returns the entries in mapping order.
func (t *Tracklist) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of distinct titles.
func (t *Tracklist) Len() int {
	return len(t.entries)
}
