package domain

// Artist is a registry record for one canonical artist name
type Artist struct {
	ID         int    `json:"id"`
	ExternalID string `json:"mbid"`
	AlbumCount int    `json:"albumCount"`
}

// CatalogArtist is one artist entry as reported by the music library
type CatalogArtist struct {
	Name       string
	ExternalID string
	AlbumCount int
}

// NamedArtist pairs a registry record with its canonical name
type NamedArtist struct {
	Name string
	Artist
}

// Registry owns artist identity for a run. Ids are handed out from 0 in
// first-seen order and are never reused while the registry lives.
type Registry struct {
	nextID  int
	order   []string
	artists map[string]*Artist
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{artists: make(map[string]*Artist)}
}

// Reset drops every record and rewinds the id counter to 0
func (r *Registry) Reset() {
	r.nextID = 0
	r.order = nil
	r.artists = make(map[string]*Artist)
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.artists[name]
	return ok
}

// Get returns a copy of the record for name
func (r *Registry) Get(name string) (Artist, bool) {
	a, ok := r.artists[name]
	if !ok {
		return Artist{}, false
	}
	return *a, true
}

// Add registers name with a fresh id unless it is already known.
// It returns the stored record and whether an insert happened.
func (r *Registry) Add(name, externalID string, albumCount int) (Artist, bool) {
	if a, ok := r.artists[name]; ok {
		return *a, false
	}

	a := &Artist{
		ID:         r.nextID,
		ExternalID: externalID,
		AlbumCount: albumCount,
	}
	r.nextID++
	r.artists[name] = a
	r.order = append(r.order, name)
	return *a, true
}

// AddAlbums adds n to the album count of an existing record
func (r *Registry) AddAlbums(name string, n int) bool {
	a, ok := r.artists[name]
	if !ok {
		return false
	}
	a.AlbumCount += n
	return true
}

// Len returns the number of registered artists
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns a snapshot of registered names in id order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Artists returns a snapshot of all records in id order
func (r *Registry) Artists() []NamedArtist {
	out := make([]NamedArtist, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, NamedArtist{Name: name, Artist: *r.artists[name]})
	}
	return out
}
