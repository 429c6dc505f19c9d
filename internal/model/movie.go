package model

// Movie is a catalog record. Poster is always the URL of an object that was
// uploaded before the record was built; it is never supplied by the client.
// Records are created once and never modified.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ReleaseYear string `json:"release_year"`
	Genre       string `json:"genre"`
	Poster      string `json:"poster"`
}

// MovieListing is the projection returned by catalog listings.
type MovieListing struct {
	Title       string `json:"title"`
	ReleaseYear string `json:"release_year"`
	Genre       string `json:"genre"`
	Poster      string `json:"poster"`
}

// Listing projects a Movie onto the fields exposed by listings.
func (m Movie) Listing() MovieListing {
	return MovieListing{
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		Genre:       m.Genre,
		Poster:      m.Poster,
	}
}
