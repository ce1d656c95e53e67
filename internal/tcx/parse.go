// Package tcx parses, inspects, edits, and re-serializes TCX activity
// documents (activities → laps → tracks → timestamped trackpoints).
package tcx

import (
	"encoding/xml"
	"fmt"

	"github.com/tcxtools/tcxedit/internal/model"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// Parse builds a Database from TCX text. It returns a *ParseError when
// the text is not well-formed XML or a mandatory field is missing.
// Absent optional fields (position, altitude, distance, heart rate,
// cadence, extensions) are fine.
func Parse(text string) (*model.Database, error) {
	var db model.Database
	if err := xml.Unmarshal([]byte(text), &db); err != nil {
		return nil, &ParseError{Detail: "malformed document", Err: err}
	}
	if err := validate(&db); err != nil {
		return nil, err
	}
	return &db, nil
}

// Serialize renders the tree back to TCX text, prefixed with the
// standard XML declaration line. Parse(Serialize(Parse(x))) is
// structurally equal to Parse(x) for any well-formed x.
func Serialize(db *model.Database) (string, error) {
	b, err := xml.MarshalIndent(db, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize tcx: %w", err)
	}
	return xmlDeclaration + "\n" + string(b), nil
}

func validate(db *model.Database) error {
	for ai, a := range db.Activities.Activity {
		if a.Sport == "" {
			return &ParseError{Detail: fmt.Sprintf("activity %d: missing Sport attribute", ai)}
		}
		for li, lap := range a.Laps {
			if lap.StartTime == "" {
				return &ParseError{Detail: fmt.Sprintf("activity %d lap %d: missing StartTime attribute", ai, li)}
			}
			if lap.Track == nil {
				continue
			}
			for ti, tp := range lap.Track.Trackpoints {
				if tp.Time == "" {
					return &ParseError{Detail: fmt.Sprintf("activity %d lap %d trackpoint %d: missing Time", ai, li, ti)}
				}
				if p := tp.Position; p != nil && (p.LatitudeDegrees == nil || p.LongitudeDegrees == nil) {
					return &ParseError{Detail: fmt.Sprintf("activity %d lap %d trackpoint %d: Position missing coordinates", ai, li, ti)}
				}
			}
		}
	}
	return nil
}
