package services

import (
	"encoding/json"

	"legendstats/api/dto"
	"legendstats/api/repositories"
	"legendstats/pkg/database/models"
)

// Patch service listing the pre-scraped patch notes.
type PatchService struct {
	patchNotes repositories.PatchNoteRepository
}

// PatchServiceDeps is the dependency list for the patch service.
type PatchServiceDeps struct {
	PatchNotes repositories.PatchNoteRepository
}

// NewPatchService creates a patch service.
func NewPatchService(deps *PatchServiceDeps) *PatchService {
	return &PatchService{
		patchNotes: deps.PatchNotes,
	}
}

// ListPatchNotes returns the newest patch notes first.
func (ps *PatchService) ListPatchNotes(limit int) ([]dto.PatchNoteSummary, error) {
	notes, err := ps.patchNotes.List(limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.PatchNoteSummary, 0, len(notes))
	for _, note := range notes {
		summaries = append(summaries, toPatchSummary(&note))
	}
	return summaries, nil
}

// GetPatchNote returns a single patch note with it's content.
// Nil without error when the version is unknown.
func (ps *PatchService) GetPatchNote(version string) (*dto.PatchNoteDetail, error) {
	note, err := ps.patchNotes.GetByVersion(version)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	return &dto.PatchNoteDetail{
		PatchNoteSummary: toPatchSummary(note),
		ContentHtml:      note.ContentHtml,
	}, nil
}

func toPatchSummary(note *models.PatchNote) dto.PatchNoteSummary {
	var highlights []string
	if len(note.Highlights) > 0 {
		// Malformed highlights just render as none.
		json.Unmarshal(note.Highlights, &highlights)
	}

	return dto.PatchNoteSummary{
		Version:     note.Version,
		Title:       note.Title,
		Url:         note.Url,
		Highlights:  highlights,
		PublishedAt: note.PublishedAt,
	}
}
