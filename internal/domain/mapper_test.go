package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sajee05/effortless-time-tracker/internal/repository/sqlite"
)

func TestSessionMapper_ToDatabase(t *testing.T) {
	mapper := NewSessionMapper()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	domainSession := Session{
		ID:              1,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: 1800,
	}

	result := mapper.ToDatabase(domainSession)

	expected := sqlite.Session{
		ID:              1,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: 1800,
	}
	assert.Equal(t, expected, result)
}

func TestSessionMapper_FromDatabase(t *testing.T) {
	mapper := NewSessionMapper()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	dbSession := sqlite.Session{
		ID:              1,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: 1800,
	}

	result := mapper.FromDatabase(dbSession)

	expected := Session{
		ID:              1,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: 1800,
	}
	assert.Equal(t, expected, result)
}

func TestSessionMapper_ToDatabaseSlice(t *testing.T) {
	mapper := NewSessionMapper()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	domainSessions := []Session{
		{ID: 1, StartTime: start, EndTime: start.Add(time.Hour), DurationSeconds: 3600},
		{ID: 2, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), DurationSeconds: 3600},
	}

	result := mapper.ToDatabaseSlice(domainSessions)

	expected := []sqlite.Session{
		{ID: 1, StartTime: start, EndTime: start.Add(time.Hour), DurationSeconds: 3600},
		{ID: 2, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), DurationSeconds: 3600},
	}
	assert.Equal(t, expected, result)
}

func TestSessionMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewSessionMapper()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	dbSessions := []sqlite.Session{
		{ID: 1, StartTime: start, EndTime: start.Add(time.Hour), DurationSeconds: 3600},
		{ID: 2, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), DurationSeconds: 3600},
	}

	result := mapper.FromDatabaseSlice(dbSessions)

	expected := []Session{
		{ID: 1, StartTime: start, EndTime: start.Add(time.Hour), DurationSeconds: 3600},
		{ID: 2, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), DurationSeconds: 3600},
	}
	assert.Equal(t, expected, result)
}

func TestSessionMapper_FromDatabasePtrSlice(t *testing.T) {
	mapper := NewSessionMapper()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	dbSessions := []*sqlite.Session{
		{ID: 1, StartTime: start, EndTime: start.Add(time.Hour), DurationSeconds: 3600},
	}

	result := mapper.FromDatabasePtrSlice(dbSessions)

	expected := []Session{
		{ID: 1, StartTime: start, EndTime: start.Add(time.Hour), DurationSeconds: 3600},
	}
	assert.Equal(t, expected, result)
}

func TestActiveSessionMapper_ToDatabase(t *testing.T) {
	mapper := NewActiveSessionMapper()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	result := mapper.ToDatabase(ActiveSession{StartTime: start})

	assert.Equal(t, sqlite.ActiveSession{StartTime: start}, result)
}

func TestActiveSessionMapper_FromDatabase(t *testing.T) {
	mapper := NewActiveSessionMapper()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	result := mapper.FromDatabase(sqlite.ActiveSession{StartTime: start})

	assert.Equal(t, ActiveSession{StartTime: start}, result)
}

func TestNewMapper(t *testing.T) {
	mapper := NewMapper()

	assert.NotNil(t, mapper)
	assert.NotNil(t, mapper.Session)
	assert.NotNil(t, mapper.ActiveSession)
}
