package models

// Movie mirrors the subset of the metadata collaborator's movie payload that
// the browse screens consume.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
}

// MovieList is one titled row on the home screen.
type MovieList struct {
	Title  string  `json:"title"`
	Movies []Movie `json:"movies"`
}

// HomeFeed is the assembled home screen. Degraded is set when the live
// collaborator failed and the fixed fallback catalog was substituted whole.
type HomeFeed struct {
	Lists    []MovieList `json:"lists"`
	Degraded bool        `json:"degraded"`
}

// CastMember is a single credit on the detail screen.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// Genre is a metadata-collaborator genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the single-title view: the movie, its credits and a row of
// similar titles.
type MovieDetail struct {
	Movie
	Genres  []Genre      `json:"genres,omitempty"`
	Runtime int          `json:"runtime,omitempty"`
	Tagline string       `json:"tagline,omitempty"`
	Cast    []CastMember `json:"cast,omitempty"`
	Similar []Movie      `json:"similar,omitempty"`
}
