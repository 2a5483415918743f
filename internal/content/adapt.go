package content

import (
	"time"

	"github.com/mohamedtouja/multipoles/internal/models"
)

// AdaptRealisation maps the backend realisation record into the shape the
// pages consume: images fall back to the thumbnail, the year comes from the
// project date (or the creation date when absent), and publication is
// derived from the status field.
func AdaptRealisation(raw models.RawRealisation) models.Realisation {
	year := yearOf(raw.ProjectDate)
	if year == 0 {
		year = yearOf(raw.CreatedAt)
	}

	images := raw.Images
	if len(images) == 0 && raw.Thumbnail != "" {
		images = []string{raw.Thumbnail}
	}
	if images == nil {
		images = []string{}
	}

	category := raw.Category
	if category == "" {
		category = "Autre"
	}

	tags := raw.Technologies
	if tags == nil {
		tags = []string{}
	}

	return models.Realisation{
		ID:            raw.ID,
		Title:         raw.Title,
		Description:   raw.Description,
		Client:        raw.ClientName,
		Category:      category,
		Images:        images,
		FeaturedImage: raw.Thumbnail,
		Year:          year,
		Tags:          tags,
		Locale:        raw.Locale,
		IsPublished:   raw.Status == "published",
		CreatedAt:     raw.CreatedAt,
	}
}

func yearOf(date string) int {
	if date == "" {
		return 0
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year()
		}
	}
	return 0
}
