package tcx

import "github.com/tcxtools/tcxedit/internal/model"

// Flatten walks activities → laps → track → trackpoints in document
// order and returns one FlatTrackpoint per sample. Laps without a track
// and empty tracks are valid and simply contribute nothing. An
// unparseable timestamp yields TimestampMS 0 rather than an error.
func Flatten(db *model.Database) []model.FlatTrackpoint {
	var out []model.FlatTrackpoint
	for _, a := range db.Activities.Activity {
		for _, lap := range a.Laps {
			if lap.Track == nil {
				continue
			}
			for _, tp := range lap.Track.Trackpoints {
				var ms int64
				if t, ok := ParseTime(tp.Time); ok {
					ms = t.UnixMilli()
				}
				flat := model.FlatTrackpoint{
					Time:           tp.Time,
					TimestampMS:    ms,
					AltitudeMeters: tp.AltitudeMeters,
					DistanceMeters: tp.DistanceMeters,
					Cadence:        tp.Cadence,
				}
				if tp.Position != nil {
					flat.Latitude = tp.Position.LatitudeDegrees
					flat.Longitude = tp.Position.LongitudeDegrees
				}
				if tp.HeartRateBpm != nil {
					hr := tp.HeartRateBpm.Value
					flat.HeartRate = &hr
				}
				out = append(out, flat)
			}
		}
	}
	return out
}

// TrackpointCount returns the total number of trackpoints across all
// tracks without materializing the flattened view.
func TrackpointCount(db *model.Database) int {
	n := 0
	for _, a := range db.Activities.Activity {
		for _, lap := range a.Laps {
			if lap.Track != nil {
				n += len(lap.Track.Trackpoints)
			}
		}
	}
	return n
}
