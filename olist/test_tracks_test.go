package olist_test

import "github.com/plus3/olist/olist"

// Common test element types
type Track struct {
	Title  string
	Artist string
	Secs   int
}

// Playlist narrows List to Track elements and layers attribute lookups on
// top of the cursor protocol, the way downstream collections are expected
// to wrap List.
type Playlist struct {
	*olist.List[Track]
}

func newPlaylist(tracks ...Track) *Playlist {
	return &Playlist{List: olist.New(tracks...)}
}

// FindByTitle walks the playlist with the shared cursor and returns the
// first track whose title matches.
func (p *Playlist) FindByTitle(title string) (Track, bool) {
	for p.Rewind(); p.Valid(); p.Advance() {
		t, err := p.Current()
		if err != nil {
			break
		}
		if t.Title == title {
			return t, true
		}
	}
	return Track{}, false
}

func someTracks() []Track {
	return []Track{
		{Title: "Holst", Artist: "LPO", Secs: 421},
		{Title: "Koyaanisqatsi", Artist: "Philip Glass", Secs: 205},
		{Title: "Spiegel im Spiegel", Artist: "Arvo Part", Secs: 528},
	}
}
