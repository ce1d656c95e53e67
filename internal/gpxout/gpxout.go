// Package gpxout converts TCX documents to GPX 1.1 for tools that only
// speak GPX.
package gpxout

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/tcxtools/tcxedit/internal/model"
	"github.com/tcxtools/tcxedit/internal/tcx"
)

// FromDocument maps a TCX tree to GPX: one GPX track per activity, one
// segment per lap track. Trackpoints without a position are skipped
// since GPX points require coordinates.
func FromDocument(db *model.Database) *gpx.GPX {
	g := &gpx.GPX{
		Version: "1.1",
		Creator: "tcxedit",
	}

	for _, a := range db.Activities.Activity {
		track := gpx.GPXTrack{Name: a.Sport}
		for _, lap := range a.Laps {
			if lap.Track == nil {
				continue
			}
			segment := gpx.GPXTrackSegment{}
			for _, tp := range lap.Track.Trackpoints {
				if tp.Position == nil {
					continue
				}
				point := gpx.GPXPoint{
					Point: gpx.Point{
						Latitude:  *tp.Position.LatitudeDegrees,
						Longitude: *tp.Position.LongitudeDegrees,
					},
				}
				if tp.AltitudeMeters != nil {
					point.Elevation = *gpx.NewNullableFloat64(*tp.AltitudeMeters)
				}
				if t, ok := tcx.ParseTime(tp.Time); ok {
					point.Timestamp = t
				}
				segment.Points = append(segment.Points, point)
			}
			track.Segments = append(track.Segments, segment)
		}
		g.Tracks = append(g.Tracks, track)
	}

	return g
}

// ToXML renders the converted document as GPX 1.1 text.
func ToXML(db *model.Database) (string, error) {
	g := FromDocument(db)
	b, err := g.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return "", fmt.Errorf("serialize gpx: %w", err)
	}
	return string(b), nil
}
