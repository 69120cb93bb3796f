// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/cinesynth/internal/behavior"
	"github.com/tomtom215/cinesynth/internal/config"
	"github.com/tomtom215/cinesynth/internal/dataio"
	"github.com/tomtom215/cinesynth/internal/logging"
)

const movies = `movieId|title|genres|language|duration|imdbRating|havingAward|numberOfRewatches|maturityRating
m1|One|Drama|English|95|7.4|1|0|G
m2|Two|Comedy, Family|English|88|6.1|0|1|PG
m3|Three|Thriller|French|131|8.2|1|0|R
m4|Four|Animation|Japanese|100|nan|0|0|PG-13
m5|Five|Horror|English|92|5.0|0|3|R
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movies.csv"), []byte(movies), 0o600))

	cfg := config.Default()
	cfg.Generation.NumUsers = 12
	cfg.Generation.NumDays = 14
	cfg.Generation.Seed = 5
	cfg.Paths.Movies = filepath.Join(dir, "movies.csv")
	cfg.Paths.Users = filepath.Join(dir, "out", "users.csv")
	cfg.Paths.Preferences = filepath.Join(dir, "out", "preferences.json")
	cfg.Paths.Behaviors = filepath.Join(dir, "out", "behaviors.csv")
	cfg.Paths.MetricsTextfile = filepath.Join(dir, "cinesynth.prom")
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestParseStage(t *testing.T) {
	for _, s := range []string{"users", "preferences", "behaviors", "all"} {
		st, err := ParseStage(s)
		require.NoError(t, err)
		assert.Equal(t, Stage(s), st)
	}
	_, err := ParseStage("everything")
	assert.Error(t, err)
}

func TestRun_All(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, zerolog.Nop())

	ctx := logging.ContextWithRunID(context.Background(), "run-1")
	require.NoError(t, p.Run(ctx, StageAll))

	users, err := dataio.LoadUsers(cfg.Paths.Users)
	require.NoError(t, err)
	assert.Len(t, users, 12)

	bundles, err := dataio.LoadPreferences(cfg.Paths.Preferences)
	require.NoError(t, err)
	require.Len(t, bundles, 12)
	assert.Equal(t, users[0].ID, bundles[0].UserID)

	records, err := dataio.LoadBehaviors(cfg.Paths.Behaviors)
	require.NoError(t, err)
	for _, r := range records {
		assert.GreaterOrEqual(t, r.DayNumber, 0)
		assert.Less(t, r.DayNumber, 14)
		assert.GreaterOrEqual(t, r.Satisfaction, 0.0)
		assert.LessOrEqual(t, r.Satisfaction, 1.0)
	}

	prom, err := os.ReadFile(cfg.Paths.MetricsTextfile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "cinesynth_")
}

func TestRun_LogsCarryRunID(t *testing.T) {
	cfg := testConfig(t)
	var buf bytes.Buffer
	p := New(cfg, logging.NewTestLogger(&buf))

	ctx := logging.ContextWithRunID(context.Background(), "run-logs")
	require.NoError(t, p.Run(ctx, StageAll))

	components := map[string]bool{}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Equal(t, "run-logs", entry["run_id"], line)
		assert.Equal(t, 1, strings.Count(line, `"component"`), line)
		assert.Equal(t, 1, strings.Count(line, `"run_id"`), line)
		if c, ok := entry["component"].(string); ok {
			components[c] = true
		}
	}
	for _, c := range []string{"pipeline", "demographics", "behavior"} {
		assert.True(t, components[c], "no log line from %s", c)
	}
}

func TestRun_StagesMatchAll(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, p.Run(ctx, StageAll))
	combined, err := os.ReadFile(cfg.Paths.Behaviors)
	require.NoError(t, err)

	// separate stages read back what the previous ones wrote
	require.NoError(t, p.Run(ctx, StageUsers))
	require.NoError(t, p.Run(ctx, StagePreferences))
	require.NoError(t, p.Run(ctx, StageBehaviors))
	staged, err := os.ReadFile(cfg.Paths.Behaviors)
	require.NoError(t, err)

	assert.Equal(t, string(combined), string(staged))
}

func TestBehaviors_MissingPreferences(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, zerolog.Nop())
	ctx := context.Background()

	_, err := p.Users(ctx)
	require.NoError(t, err)
	_, err = p.Preferences(ctx, []string{"U0001"})
	require.NoError(t, err)

	_, err = p.Behaviors(ctx, nil, nil)
	assert.ErrorIs(t, err, behavior.ErrMissingPreferences)
}

func TestBehaviors_MissingMovies(t *testing.T) {
	cfg := testConfig(t)
	cfg.Paths.Movies = filepath.Join(t.TempDir(), "none.csv")
	p := New(cfg, zerolog.Nop())

	err := p.Run(context.Background(), StageAll)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "load movies"), err.Error())
}

func TestUsers_BadOverride(t *testing.T) {
	cfg := testConfig(t)
	override := filepath.Join(t.TempDir(), "probs.json")
	require.NoError(t, os.WriteFile(override, []byte(`{"HEIGHT_PROBS": {"tall": 1}}`), 0o600))
	cfg.Paths.UserProbabilities = override

	_, err := New(cfg, zerolog.Nop()).Users(context.Background())
	require.Error(t, err)
	_, statErr := os.Stat(cfg.Paths.Users)
	assert.True(t, os.IsNotExist(statErr), "no user table may be written")
}
