// Package editor provides the editing session façade over a single TCX
// document.
package editor

import (
	"github.com/tcxtools/tcxedit/internal/model"
	"github.com/tcxtools/tcxedit/internal/tcx"
)

// Session owns one parsed document plus the verbatim source text it was
// loaded from. It is not safe for concurrent use; callers sharing a
// session must serialize access themselves.
type Session struct {
	db       *model.Database
	original string
}

// New parses text into a fresh session. The error is a *tcx.ParseError
// when the text is not a valid TCX document.
func New(text string) (*Session, error) {
	db, err := tcx.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Session{db: db, original: text}, nil
}

// Trackpoints returns the flattened document-order trackpoint view.
func (s *Session) Trackpoints() []model.FlatTrackpoint {
	return tcx.Flatten(s.db)
}

// Stats returns aggregate statistics for the current document state.
func (s *Session) Stats() model.ActivityStats {
	return tcx.ComputeStats(s.db)
}

// TrackpointCount returns the total trackpoint count across all tracks.
func (s *Session) TrackpointCount() int {
	return tcx.TrackpointCount(s.db)
}

// Trim cuts every track to the inclusive index range [start, end] and
// refreshes lap summaries. On a *tcx.IndexError the document is
// unchanged.
func (s *Session) Trim(start, end int) error {
	return tcx.TrimByIndices(s.db, start, end)
}

// Export serializes the current document state.
func (s *Session) Export() (string, error) {
	return tcx.Serialize(s.db)
}

// Reset discards all edits by reparsing the retained original text.
func (s *Session) Reset() error {
	db, err := tcx.Parse(s.original)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

// Document exposes the live tree for read-only collaborators such as
// the GPX converter.
func (s *Session) Document() *model.Database {
	return s.db
}
