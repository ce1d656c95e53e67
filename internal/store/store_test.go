package store

import (
	"context"
	"path/filepath"
	"testing"
)

const sampleTCX = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2">
    <Activities>
        <Activity Sport="Running">
            <Id>2025-12-07T08:48:35.000+01:00</Id>
            <Lap StartTime="2025-12-07T08:48:35.000+01:00">
                <TotalTimeSeconds>367.827</TotalTimeSeconds>
                <DistanceMeters>1000.0</DistanceMeters>
                <Calories>65</Calories>
                <Intensity>Active</Intensity>
                <TriggerMethod>Manual</TriggerMethod>
                <Track>
                    <Trackpoint>
                        <Time>2025-12-07T08:48:35.000+01:00</Time>
                        <HeartRateBpm><Value>100</Value></HeartRateBpm>
                    </Trackpoint>
                    <Trackpoint>
                        <Time>2025-12-07T08:48:38.000+01:00</Time>
                        <HeartRateBpm><Value>103</Value></HeartRateBpm>
                    </Trackpoint>
                </Track>
            </Lap>
        </Activity>
    </Activities>
</TrainingCenterDatabase>`

const sampleBikeTCX = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<TrainingCenterDatabase>
    <Activities>
        <Activity Sport="Biking">
            <Id>2025-12-08T10:00:00.000+01:00</Id>
            <Lap StartTime="2025-12-08T10:00:00.000+01:00">
                <TotalTimeSeconds>120.0</TotalTimeSeconds>
                <DistanceMeters>800.0</DistanceMeters>
                <Calories>30</Calories>
                <Intensity>Active</Intensity>
                <TriggerMethod>Manual</TriggerMethod>
            </Lap>
        </Activity>
    </Activities>
</TrainingCenterDatabase>`

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestImportAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, err := s.Import(ctx, ImportParams{Name: "morning run", XML: sampleTCX})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if a.ID == "" {
		t.Error("expected non-empty ID")
	}
	if a.Sport != "Running" {
		t.Errorf("expected sport Running, got %q", a.Sport)
	}
	if a.Trackpoints != 2 {
		t.Errorf("expected 2 trackpoints, got %d", a.Trackpoints)
	}
	if a.Calories != 65 {
		t.Errorf("expected 65 calories, got %d", a.Calories)
	}

	got, err := s.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.XML != sampleTCX {
		t.Error("expected the raw XML stored verbatim")
	}
	if got.Name != "morning run" {
		t.Errorf("expected name 'morning run', got %q", got.Name)
	}
}

func TestImportRejectsInvalidTCX(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Import(ctx, ImportParams{Name: "bad", XML: "not xml"}); err == nil {
		t.Fatal("expected an error importing malformed input")
	}
	all, err := s.List(ctx, ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected nothing stored, got %d", len(all))
	}
}

func TestImportReplacesDuplicate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Import(ctx, ImportParams{Name: "first", XML: sampleTCX})
	second, err := s.Import(ctx, ImportParams{Name: "second", XML: sampleTCX})
	if err != nil {
		t.Fatalf("reimport: %v", err)
	}

	all, err := s.List(ctx, ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 entry after reimporting the same file, got %d", len(all))
	}
	if all[0].ID != second.ID || all[0].Name != "second" {
		t.Error("expected the reimport to replace the previous entry")
	}
}

func TestListFilterAndLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Import(ctx, ImportParams{Name: "run", XML: sampleTCX})
	s.Import(ctx, ImportParams{Name: "ride", XML: sampleBikeTCX})

	all, _ := s.List(ctx, ListParams{})
	if len(all) != 2 {
		t.Errorf("expected 2, got %d", len(all))
	}

	rides, _ := s.List(ctx, ListParams{Sport: "Biking"})
	if len(rides) != 1 || rides[0].Name != "ride" {
		t.Errorf("expected only the ride, got %v", rides)
	}

	one, _ := s.List(ctx, ListParams{Limit: 1})
	if len(one) != 1 {
		t.Errorf("expected limit 1 respected, got %d", len(one))
	}
}

func TestRm(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, err := s.Import(ctx, ImportParams{Name: "run", XML: sampleTCX})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if err := s.Rm(ctx, a.ID); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if _, err := s.Get(ctx, a.ID); err == nil {
		t.Error("expected get to fail after rm")
	}
	if err := s.Rm(ctx, a.ID); err == nil {
		t.Error("expected rm of a missing id to fail")
	}
}
