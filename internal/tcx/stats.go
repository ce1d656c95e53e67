package tcx

import "github.com/tcxtools/tcxedit/internal/model"

// ComputeStats aggregates the whole document. Sport and start time come
// from the first activity (empty strings when there is none); totals
// sum every lap of every activity; heart-rate and altitude aggregates
// cover only trackpoints that carry the value and are nil when none do.
// Sums run in document order so results are bit-reproducible.
func ComputeStats(db *model.Database) model.ActivityStats {
	stats := model.ActivityStats{}
	if len(db.Activities.Activity) > 0 {
		first := db.Activities.Activity[0]
		stats.Sport = first.Sport
		stats.StartTime = first.ID
	}

	for _, a := range db.Activities.Activity {
		for _, lap := range a.Laps {
			stats.TotalTimeSeconds += lap.TotalTimeSeconds
			stats.TotalDistanceMeters += lap.DistanceMeters
			stats.TotalCalories += lap.Calories
		}
	}

	points := Flatten(db)
	stats.TrackpointCount = len(points)

	var hrSum float64
	var hrCount int
	for _, p := range points {
		if p.HeartRate == nil {
			continue
		}
		hr := *p.HeartRate
		hrSum += float64(hr)
		hrCount++
		if stats.MaxHeartRate == nil || hr > *stats.MaxHeartRate {
			v := hr
			stats.MaxHeartRate = &v
		}
		if stats.MinHeartRate == nil || hr < *stats.MinHeartRate {
			v := hr
			stats.MinHeartRate = &v
		}
	}
	if hrCount > 0 {
		avg := hrSum / float64(hrCount)
		stats.AvgHeartRate = &avg
	}

	var altitudes []float64
	for _, p := range points {
		if p.AltitudeMeters != nil {
			altitudes = append(altitudes, *p.AltitudeMeters)
		}
	}
	if len(altitudes) > 1 {
		var gain, loss float64
		for i := 1; i < len(altitudes); i++ {
			diff := altitudes[i] - altitudes[i-1]
			if diff > 0 {
				gain += diff
			} else {
				loss += -diff
			}
		}
		stats.ElevationGain = &gain
		stats.ElevationLoss = &loss
	}
	for _, alt := range altitudes {
		if stats.MaxAltitude == nil || alt > *stats.MaxAltitude {
			v := alt
			stats.MaxAltitude = &v
		}
		if stats.MinAltitude == nil || alt < *stats.MinAltitude {
			v := alt
			stats.MinAltitude = &v
		}
	}

	return stats
}
