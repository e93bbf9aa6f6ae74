package dto

import "time"

// PatchNoteSummary is one row of the patch note listing.
type PatchNoteSummary struct {
	Version     string     `json:"version"`
	Title       string     `json:"title"`
	Url         string     `json:"url"`
	Highlights  []string   `json:"highlights"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// PatchNoteDetail adds the stored content to the summary.
type PatchNoteDetail struct {
	PatchNoteSummary
	ContentHtml string `json:"contentHtml"`
}
