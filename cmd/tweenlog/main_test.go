package main

import (
	"context"
	"testing"

	"github.com/rediwo/tweenlog/config"
	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/logger"
	"github.com/rediwo/tweenlog/registry"
	"github.com/rediwo/tweenlog/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingStore records whether it was closed
type trackingStore struct {
	writes int
	closed bool
}

func (s *trackingStore) Write(diag.Severity, string) { s.writes++ }

func (s *trackingStore) Recent(context.Context, *diag.Severity, int) ([]sink.Entry, error) {
	return nil, nil
}

func (s *trackingStore) SetLogger(logger.Logger) {}

func (s *trackingStore) Close() error {
	s.closed = true
	return nil
}

var lastStore *trackingStore

func init() {
	registry.Register("tracking", func(ctx context.Context, uri string) (registry.Store, error) {
		lastStore = &trackingStore{}
		return lastStore, nil
	})
}

func trackingConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.LogLevel = "none"
	cfg.Console.Disabled = true
	cfg.Store.URI = "tracking://test"
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestParseSite(t *testing.T) {
	cs, err := parseSite("Start@12:Assets/Player.cs")
	require.NoError(t, err)
	assert.Equal(t, &diag.CallSite{Member: "Start", Line: 12, Path: "Assets/Player.cs", IntID: diag.NoIntID}, cs)

	cs, err = parseSite("")
	require.NoError(t, err)
	assert.Nil(t, cs)

	for _, bad := range []string{"Start", "Start@12", "Start@x:path"} {
		_, err := parseSite(bad)
		assert.Error(t, err, bad)
	}
}

func TestRunEmit(t *testing.T) {
	recorder := sink.NewRecorder(10)
	d := diag.New(recorder, diag.DefaultConfig())

	require.NoError(t, runEmit(d, "warning", "careful", "Update@3:A.cs"))
	require.NoError(t, runEmit(d, "info", "hi", ""))
	assert.Error(t, runEmit(d, "loud", "x", ""))
	assert.Error(t, runEmit(d, "error", "x", "nowhere"))

	entries := recorder.Entries(nil, 0)
	require.Len(t, entries, 2)
	assert.Equal(t, diag.SeverityWarning, entries[0].Severity)
	assert.Equal(t, diag.LogPrefix+"Play called from: Update@3 in A.cs\ncareful", entries[0].Text)
	assert.Equal(t, diag.LogPrefix+"hi", entries[1].Text)
}

func TestRunSafeMode(t *testing.T) {
	recorder := sink.NewRecorder(10)
	d := diag.New(recorder, diag.Config{SafeModeLogBehaviour: diag.SafeModeError, DebugMode: true})

	require.NoError(t, runSafeMode(d, "target destroyed", "Start@1:B.cs"))

	entries := recorder.Entries(nil, 0)
	require.Len(t, entries, 1)
	assert.Equal(t, diag.SeverityError, entries[0].Severity)
	assert.Contains(t, entries[0].Text, "Play called from: Start@1 in B.cs")
}

func TestRunClosesStore(t *testing.T) {
	require.NoError(t, run("emit", trackingConfig(t), "error", "stored", ""))
	require.NotNil(t, lastStore)
	assert.Equal(t, 1, lastStore.writes)
	assert.True(t, lastStore.closed)
}

func TestRunClosesStoreOnError(t *testing.T) {
	err := run("emit", trackingConfig(t), "loud", "x", "")
	assert.Error(t, err)
	require.NotNil(t, lastStore)
	assert.Zero(t, lastStore.writes)
	assert.True(t, lastStore.closed)

	err = run("safe-mode", trackingConfig(t), "", "x", "bad-site")
	assert.Error(t, err)
	assert.True(t, lastStore.closed)
}
