// Package model defines the TCX document tree and its derived views.
package model

import "encoding/xml"

// Database is the root of a TCX document (TrainingCenterDatabase).
// The schema namespace is carried in the explicit Xmlns attribute
// field: marshal takes the element name from the struct tag and does
// not re-emit the XMLName.Space captured at unmarshal, so only the
// attribute field survives a round-trip.
type Database struct {
	XMLName    xml.Name   `xml:"TrainingCenterDatabase" json:"-"`
	Xmlns      string     `xml:"xmlns,attr,omitempty" json:"xmlns,omitempty"`
	Activities Activities `xml:"Activities" json:"activities"`
}

// Activities holds the ordered activity list. Order matters and is
// preserved through every operation.
type Activities struct {
	Activity []Activity `xml:"Activity" json:"activity"`
}

// Activity is one recorded exercise session.
type Activity struct {
	Sport string `xml:"Sport,attr" json:"sport"`
	ID    string `xml:"Id" json:"id"`
	Laps  []Lap  `xml:"Lap" json:"laps"`
}

// Lap is a contiguous sub-segment of an activity with its own summary
// totals. After a trim, TotalTimeSeconds and DistanceMeters reflect the
// remaining trackpoints; Calories is never recomputed.
type Lap struct {
	StartTime        string  `xml:"StartTime,attr" json:"start_time"`
	TotalTimeSeconds float64 `xml:"TotalTimeSeconds" json:"total_time_seconds"`
	DistanceMeters   float64 `xml:"DistanceMeters" json:"distance_meters"`
	Calories         uint    `xml:"Calories" json:"calories"`
	Intensity        string  `xml:"Intensity" json:"intensity"`
	TriggerMethod    string  `xml:"TriggerMethod" json:"trigger_method"`
	Track            *Track  `xml:"Track,omitempty" json:"track,omitempty"`
}

// Track is the ordered raw sample sequence within a lap.
type Track struct {
	Trackpoints []Trackpoint `xml:"Trackpoint" json:"trackpoints"`
}

// Trackpoint is one timestamped sample. Every field except Time is
// optional; pointers keep absence distinguishable from zero.
type Trackpoint struct {
	Time           string        `xml:"Time" json:"time"`
	Position       *Position     `xml:"Position,omitempty" json:"position,omitempty"`
	AltitudeMeters *float64      `xml:"AltitudeMeters,omitempty" json:"altitude_meters,omitempty"`
	DistanceMeters *float64      `xml:"DistanceMeters,omitempty" json:"distance_meters,omitempty"`
	HeartRateBpm   *HeartRateBpm `xml:"HeartRateBpm,omitempty" json:"heart_rate_bpm,omitempty"`
	Cadence        *uint         `xml:"Cadence,omitempty" json:"cadence,omitempty"`
	Extensions     *Extensions   `xml:"Extensions,omitempty" json:"extensions,omitempty"`
}

// Position holds geographic coordinates. Both fields are mandatory when
// a Position element is present; the parser enforces that.
type Position struct {
	LatitudeDegrees  *float64 `xml:"LatitudeDegrees" json:"latitude_degrees"`
	LongitudeDegrees *float64 `xml:"LongitudeDegrees" json:"longitude_degrees"`
}

// HeartRateBpm wraps the heart rate value element.
type HeartRateBpm struct {
	Value uint `xml:"Value" json:"value"`
}

// Extensions carries an opaque vendor payload, preserved verbatim and
// never interpreted.
type Extensions struct {
	XML string `xml:",innerxml" json:"xml,omitempty"`
}

// FlatTrackpoint is the flattened, document-order view of one
// trackpoint with its timestamp resolved to milliseconds since epoch
// (0 when the timestamp text is unparseable).
type FlatTrackpoint struct {
	Time           string   `json:"time"`
	TimestampMS    int64    `json:"timestamp_ms"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	AltitudeMeters *float64 `json:"altitude_meters,omitempty"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	HeartRate      *uint    `json:"heart_rate,omitempty"`
	Cadence        *uint    `json:"cadence,omitempty"`
}

// ActivityStats aggregates a whole document. Sport and StartTime come
// from the first activity only; totals sum every lap of every activity.
// Nil aggregate fields mean no sample carried the underlying value.
type ActivityStats struct {
	Sport               string   `json:"sport"`
	StartTime           string   `json:"start_time"`
	TotalTimeSeconds    float64  `json:"total_time_seconds"`
	TotalDistanceMeters float64  `json:"total_distance_meters"`
	TotalCalories       uint     `json:"total_calories"`
	TrackpointCount     int      `json:"trackpoint_count"`
	AvgHeartRate        *float64 `json:"avg_heart_rate,omitempty"`
	MaxHeartRate        *uint    `json:"max_heart_rate,omitempty"`
	MinHeartRate        *uint    `json:"min_heart_rate,omitempty"`
	ElevationGain       *float64 `json:"elevation_gain,omitempty"`
	ElevationLoss       *float64 `json:"elevation_loss,omitempty"`
	MaxAltitude         *float64 `json:"max_altitude,omitempty"`
	MinAltitude         *float64 `json:"min_altitude,omitempty"`
}
