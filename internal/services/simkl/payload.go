package simkl

// payload is the raw provider schema for both kinds. Every optional field
// is a pointer so the normalizer can tell absent from zero.
type payload struct {
	Title         string          `json:"title"`
	Year          *int            `json:"year"`
	IDs           *payloadIDs     `json:"ids"`
	Poster        *string         `json:"poster"`
	Runtime       *int            `json:"runtime"`
	Ratings       *payloadRatings `json:"ratings"`
	Overview      *string         `json:"overview"`
	Genres        []string        `json:"genres"`
	Certification *string         `json:"certification"`

	// movie only
	Released *string `json:"released"`
	Director *string `json:"director"`
	Budget   *int64  `json:"budget"`
	Revenue  *int64  `json:"revenue"`

	// show only
	FirstAired    *string `json:"first_aired"`
	TotalEpisodes *int    `json:"total_episodes"`
	Status        *string `json:"status"`
	Network       *string `json:"network"`
}

type payloadIDs struct {
	Simkl int64   `json:"simkl"`
	IMDB  *string `json:"imdb"`
}

type payloadRatings struct {
	IMDB *payloadIMDB `json:"imdb"`
}

type payloadIMDB struct {
	Rating *float64 `json:"rating"`
}

// searchResult is one row of the provider's search response
type searchResult struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   struct {
		SimklID int64 `json:"simkl_id"`
	} `json:"ids"`
}
