package domain

type Actor struct {
	Name string `bson:"name"`
	Role string `bson:"role"`
}

type Download struct {
	Quality string `bson:"quality"`
	Link    string `bson:"link"`
}

// Movie is a read-only record from the movie collection. Rating and Year are
// stored as strings and compared as strings by the repository.
type Movie struct {
	Title       string     `bson:"title"`
	Rating      string     `bson:"rating"`
	Year        string     `bson:"year"`
	Genres      []string   `bson:"genres"`
	Actors      []Actor    `bson:"actors"`
	Summary     string     `bson:"summary"`
	TrailerLink string     `bson:"trailerLink"`
	ImageURL    string     `bson:"imageUrl"`
	Download    []Download `bson:"download"`
}

// MovieFilter holds the lower bounds applied to random movie lookups.
type MovieFilter struct {
	MinRating string
	MinYear   string
}

// DefaultMovieFilter is used by /randommovie and /genre.
var DefaultMovieFilter = MovieFilter{MinRating: "7", MinYear: "2000"}

type Message struct {
	ID       int
	ChatID   int64
	Username string
	Text     string
	Args     string
}

type Action string

const (
	Typing       Action = "typing"
	SendingPhoto Action = "sending_photo"
)

type ParseMode string

const (
	PlainText ParseMode = ""
	Markdown  ParseMode = "Markdown"
)

type Button struct {
	Label string
	URL   string
}

// Presentation is the outbound payload for a single movie.
type Presentation struct {
	Caption  string
	PhotoURL string
	Buttons  [][]Button
}
