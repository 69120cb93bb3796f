// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordWatchTrials tests trial outcome labeling
func TestRecordWatchTrials(t *testing.T) {
	success := testutil.ToFloat64(WatchTrials.WithLabelValues(OutcomeSuccess))
	failure := testutil.ToFloat64(WatchTrials.WithLabelValues(OutcomeFailure))

	RecordWatchTrials(3, 2)
	RecordWatchTrials(0, 0)

	if got := testutil.ToFloat64(WatchTrials.WithLabelValues(OutcomeSuccess)) - success; got != 3 {
		t.Errorf("success delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(WatchTrials.WithLabelValues(OutcomeFailure)) - failure; got != 2 {
		t.Errorf("failure delta = %v, want 2", got)
	}
}

// TestRecordBehavior tests record counting and score observation
func TestRecordBehavior(t *testing.T) {
	before := testutil.ToFloat64(BehaviorRecords)
	RecordBehavior(0.66)
	RecordBehavior(0)
	if got := testutil.ToFloat64(BehaviorRecords) - before; got != 2 {
		t.Errorf("records delta = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(SatisfactionScore); n != 1 {
		t.Errorf("histogram series = %d, want 1", n)
	}
}

// TestRecordSkippedUnit tests skip reasons
func TestRecordSkippedUnit(t *testing.T) {
	before := testutil.ToFloat64(SkippedUnits.WithLabelValues("no_eligible_movie"))
	RecordSkippedUnit("no_eligible_movie")
	if got := testutil.ToFloat64(SkippedUnits.WithLabelValues("no_eligible_movie")) - before; got != 1 {
		t.Errorf("skip delta = %v, want 1", got)
	}
}

// TestSetCatalogSubsetSizes tests gauge publication
func TestSetCatalogSubsetSizes(t *testing.T) {
	SetCatalogSubsetSizes(map[string]int{"strict_award_hunter": 4, "no_constraint": 10})
	if got := testutil.ToFloat64(CatalogSubsetSize.WithLabelValues("strict_award_hunter")); got != 4 {
		t.Errorf("strict_award_hunter = %v, want 4", got)
	}
	SetCatalogSubsetSizes(map[string]int{"strict_award_hunter": 0})
	if got := testutil.ToFloat64(CatalogSubsetSize.WithLabelValues("strict_award_hunter")); got != 0 {
		t.Errorf("strict_award_hunter after reset = %v, want 0", got)
	}
}

// TestTimeStage tests that stage timings are observed
func TestTimeStage(t *testing.T) {
	stop := TimeStage("test_stage")
	time.Sleep(time.Millisecond)
	stop()
	RecordStageDuration("test_stage", 2*time.Second)

	if n := testutil.CollectAndCount(StageDuration, "cinesynth_stage_duration_seconds"); n < 1 {
		t.Errorf("stage series = %d, want at least 1", n)
	}
}

// TestConcurrentRecording tests helpers under concurrent use
func TestConcurrentRecording(t *testing.T) {
	before := testutil.ToFloat64(BehaviorRecords)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordBehavior(0.5)
			RecordWatchTrials(1, 0)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(BehaviorRecords) - before; got != 50 {
		t.Errorf("records delta = %v, want 50", got)
	}
}

// TestWriteTextfile tests textfile export
func TestWriteTextfile(t *testing.T) {
	RecordUsersGenerated(3)
	RecordPreferencesGenerated(3)

	path := filepath.Join(t.TempDir(), "cinesynth.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	for _, name := range []string{"cinesynth_users_generated_total", "cinesynth_preferences_generated_total"} {
		if !strings.Contains(string(data), name) {
			t.Errorf("textfile missing %s", name)
		}
	}
}

// TestWriteTextfile_BadPath tests error wrapping
func TestWriteTextfile_BadPath(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	if err == nil {
		t.Fatal("WriteTextfile() succeeded for missing directory")
	}
	if !strings.Contains(err.Error(), "write metrics textfile") {
		t.Errorf("error = %v", err)
	}
}
