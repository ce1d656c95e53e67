package tcx

import "github.com/tcxtools/tcxedit/internal/model"

// TrimByIndices restricts every track in the document to the inclusive
// trackpoint range [start, end], then recomputes lap and activity
// summary fields. Bounds are checked against every track's own length
// before any track is cut, so a *IndexError guarantees the document is
// untouched.
func TrimByIndices(db *model.Database, start, end int) error {
	for _, a := range db.Activities.Activity {
		for _, lap := range a.Laps {
			if lap.Track == nil {
				continue
			}
			n := len(lap.Track.Trackpoints)
			if start >= n || end >= n || start > end {
				return &IndexError{Start: start, End: end, Length: n}
			}
		}
	}

	for ai := range db.Activities.Activity {
		a := &db.Activities.Activity[ai]
		for li := range a.Laps {
			if track := a.Laps[li].Track; track != nil {
				track.Trackpoints = track.Trackpoints[start : end+1]
			}
		}
	}

	recalculate(db)
	return nil
}

// recalculate refreshes lap start/duration/distance and activity ids
// from the current trackpoints. Calories are deliberately left at their
// pre-trim values.
func recalculate(db *model.Database) {
	for ai := range db.Activities.Activity {
		a := &db.Activities.Activity[ai]
		for li := range a.Laps {
			lap := &a.Laps[li]
			if lap.Track == nil {
				continue
			}
			points := lap.Track.Trackpoints
			if len(points) == 0 {
				lap.TotalTimeSeconds = 0
				lap.DistanceMeters = 0
				continue
			}

			first := points[0]
			last := points[len(points)-1]
			lap.StartTime = first.Time

			// Unparseable endpoint timestamps leave the previous
			// duration in place rather than failing the trim.
			if start, ok := ParseTime(first.Time); ok {
				if end, ok := ParseTime(last.Time); ok {
					lap.TotalTimeSeconds = float64(end.Sub(start).Milliseconds()) / 1000.0
				}
			}

			var startDist, endDist float64
			if first.DistanceMeters != nil {
				startDist = *first.DistanceMeters
			}
			if last.DistanceMeters != nil {
				endDist = *last.DistanceMeters
			}
			lap.DistanceMeters = endDist - startDist
		}

		if len(a.Laps) > 0 {
			a.ID = a.Laps[0].StartTime
		}
	}
}
