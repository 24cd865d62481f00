package catalog

import "strings"

// Size variants accepted by the image host.
const (
	SizePoster   = "w500"
	SizeBackdrop = "original"
	SizeProfile  = "w185"
	SizeLogo     = "w92"
)

const (
	DefaultImageBase = "https://image.tmdb.org/t/p"
	PlaceholderImage = "https://via.placeholder.com/500x750/333/fff?text=No+Image"
)

// ImageURL composes base + "/" + variant + fragment. Fragments carry their own
// leading slash. An empty fragment yields "". Trailing slashes on base are
// dropped.
func ImageURL(base, variant, fragment string) string {
	if fragment == "" {
		return ""
	}
	base = strings.TrimRight(base, "/")
	if base == "" {
		base = DefaultImageBase
	}
	return base + "/" + variant + fragment
}

// CardImage is the poster, else the backdrop at poster size, else the placeholder.
func (i Item) CardImage(base string) string {
	if i.PosterPath != "" {
		return ImageURL(base, SizePoster, i.PosterPath)
	}
	if i.BackdropPath != "" {
		return ImageURL(base, SizePoster, i.BackdropPath)
	}
	return PlaceholderImage
}

// HeroImage prefers the backdrop and falls back to the poster, both at backdrop size.
func (i Item) HeroImage(base string) string {
	if i.BackdropPath != "" {
		return ImageURL(base, SizeBackdrop, i.BackdropPath)
	}
	return ImageURL(base, SizeBackdrop, i.PosterPath)
}

// VideoThumbnail is the still image for a YouTube video key.
func VideoThumbnail(key string) string {
	if key == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + key + "/hqdefault.jpg"
}
