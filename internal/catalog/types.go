package catalog

import (
	"fmt"
	"strconv"
)

type Category int

const (
	Trending Category = iota
	Popular
	TopRated
	Upcoming
	Genres
)

// Categories lists every category in display order.
var Categories = []Category{Trending, Popular, TopRated, Upcoming, Genres}

func (c Category) String() string {
	switch c {
	case Trending:
		return "trending"
	case Popular:
		return "popular"
	case TopRated:
		return "top-rated"
	case Upcoming:
		return "upcoming"
	case Genres:
		return "genres"
	default:
		return "unknown"
	}
}

// Label is the row heading.
func (c Category) Label() string {
	switch c {
	case Trending:
		return "Trending Now"
	case Popular:
		return "Popular on StreamFlix"
	case TopRated:
		return "Top Rated"
	case Upcoming:
		return "Coming Soon"
	case Genres:
		return "Genres"
	default:
		return "Unknown"
	}
}

type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Item is a single browsable title.
type Item struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
}

// DisplayTitle falls back to Name for items that only carry one.
func (i Item) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// Year returns the release year, or 0 when the date is missing or invalid.
func (i Item) Year() int {
	if len(i.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(i.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

func (i Item) Rating() string {
	return fmt.Sprintf("%.1f", i.VoteAverage)
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Company struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path"`
}

type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

type CrewMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
	Site string `json:"site"`
}

// Detail is the extended payload for one title.
type Detail struct {
	Item
	Runtime             int       `json:"runtime"`
	Tagline             string    `json:"tagline"`
	Genres              []Genre   `json:"genres"`
	Budget              int64     `json:"budget"`
	Revenue             int64     `json:"revenue"`
	ProductionCompanies []Company `json:"production_companies"`
	OriginalLanguage    string    `json:"original_language"`
	Status              string    `json:"status"`
	Adult               bool      `json:"adult"`
	Credits             Credits   `json:"credits"`
	Videos              []Video   `json:"-"`
	Similar             []Item    `json:"-"`
}
