package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/logger"
	"github.com/rediwo/tweenlog/registry"
	"github.com/rediwo/tweenlog/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), "sqlite://:memory:")
	require.NoError(t, err)
	s.SetLogger(logger.NewNullLogger())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreAsSink(t *testing.T) {
	s := openMemory(t)
	d := diag.New(s, diag.DefaultConfig())

	d.Log("first")
	d.LogWarning("second", &diag.CallSite{Member: "Awake", Line: 3, Path: "A.cs", IntID: diag.NoIntID})
	d.LogError("third", nil)

	entries, err := s.Recent(context.Background(), nil, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, diag.LogPrefix+"first", entries[0].Text)
	assert.Equal(t, diag.SeverityWarning, entries[1].Severity)
	assert.Contains(t, entries[1].Text, "Play called from: Awake@3 in A.cs")
	assert.Equal(t, diag.SeverityError, entries[2].Severity)
	assert.Less(t, entries[0].ID, entries[2].ID)
}

func TestStoreRecentFilters(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, sev := range []diag.Severity{diag.SeverityInfo, diag.SeverityError, diag.SeverityError, diag.SeverityWarning} {
		require.NoError(t, s.Insert(ctx, sink.Entry{Severity: sev, Text: string(rune('a' + i)), Time: at}))
	}

	errSev := diag.SeverityError
	entries, err := s.Recent(ctx, &errSev, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Text)
	assert.Equal(t, "c", entries[1].Text)
	assert.True(t, at.Equal(entries[0].Time), entries[0].Time)

	entries, err = s.Recent(ctx, nil, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "d", entries[0].Text)
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		uri    string
		driver string
		dsn    string
	}{
		{"sqlite://:memory:", DriverSQLite, ":memory:"},
		{"sqlite:///var/lib/tweenlog.db", DriverSQLite, "/var/lib/tweenlog.db"},
		{"sqlite://data/tweenlog.db", DriverSQLite, "data/tweenlog.db"},
		{"postgresql://u:p@db:5432/logs?sslmode=disable", DriverPostgres, "postgresql://u:p@db:5432/logs?sslmode=disable"},
		{"mysql://u:p@db/logs", DriverMySQL, "u:p@tcp(db:3306)/logs?parseTime=true"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			driver, dsn, err := ParseURI(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestParseURIErrors(t *testing.T) {
	for _, uri := range []string{"redis://localhost", "mysql://db/", "mysql:///logs", "postgres:///logs"} {
		t.Run(uri, func(t *testing.T) {
			_, _, err := ParseURI(uri)
			assert.Error(t, err)
		})
	}
}

func TestRegisteredSchemes(t *testing.T) {
	for _, scheme := range []string{"sqlite", "sqlite3", "mysql", "postgres", "postgresql"} {
		_, err := registry.Get(scheme)
		assert.NoError(t, err, scheme)
	}

	store, err := registry.Open(context.Background(), "sqlite://:memory:")
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &Store{}, store)

	_, err = registry.Open(context.Background(), "postgres://")
	assert.Error(t, err)
}
