package detail

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/Waddenn/streamflix/internal/catalog"
)

const (
	MaxCast      = 10
	MaxSimilar   = 12
	MaxVideos    = 4
	MaxCompanies = 4
	MaxWriters   = 3
)

// PickTrailer returns the first Trailer, else the first Teaser, else nil.
func PickTrailer(videos []catalog.Video) *catalog.Video {
	var teaser *catalog.Video
	for i := range videos {
		switch videos[i].Type {
		case "Trailer":
			v := videos[i]
			return &v
		case "Teaser":
			if teaser == nil {
				v := videos[i]
				teaser = &v
			}
		}
	}
	return teaser
}

// Director is the first crew member with the Director job.
func Director(crew []catalog.CrewMember) *catalog.CrewMember {
	for i := range crew {
		if crew[i].Job == "Director" {
			c := crew[i]
			return &c
		}
	}
	return nil
}

// Writers lists Writer and Screenplay credits in source order.
func Writers(crew []catalog.CrewMember) []catalog.CrewMember {
	var out []catalog.CrewMember
	for _, c := range crew {
		if c.Job != "Writer" && c.Job != "Screenplay" {
			continue
		}
		out = append(out, c)
		if len(out) == MaxWriters {
			break
		}
	}
	return out
}

func TopCast(cast []catalog.CastMember) []catalog.CastMember {
	return capped(cast, MaxCast)
}

func SimilarTitles(items []catalog.Item) []catalog.Item {
	return capped(items, MaxSimilar)
}

func VideoGrid(videos []catalog.Video) []catalog.Video {
	return capped(videos, MaxVideos)
}

func Companies(companies []catalog.Company) []catalog.Company {
	return capped(companies, MaxCompanies)
}

func capped[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}

// FormatRuntime renders minutes as "2h 5m".
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatCurrency renders whole dollars with thousands separators.
func FormatCurrency(amount int64) string {
	if amount <= 0 {
		return "N/A"
	}
	return "$" + humanize.Comma(amount)
}

func FormatVotes(count int) string {
	return humanize.Comma(int64(count)) + " votes"
}

// Certification is the age badge shown next to the year.
func Certification(adult bool) string {
	if adult {
		return "18+"
	}
	return "PG-13"
}
