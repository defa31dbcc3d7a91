package domain

import (
	"github.com/sajee05/effortless-time-tracker/internal/repository/sqlite"
)

// SessionMapper handles conversion between domain and database Session models.
type SessionMapper struct{}

// NewSessionMapper creates a new SessionMapper instance.
func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// ToDatabase converts a domain Session to a database Session.
func (m *SessionMapper) ToDatabase(domainSession Session) sqlite.Session {
	return sqlite.Session{
		ID:              domainSession.ID,
		StartTime:       domainSession.StartTime,
		EndTime:         domainSession.EndTime,
		DurationSeconds: domainSession.DurationSeconds,
	}
}

// FromDatabase converts a database Session to a domain Session.
func (m *SessionMapper) FromDatabase(dbSession sqlite.Session) Session {
	return Session{
		ID:              dbSession.ID,
		StartTime:       dbSession.StartTime,
		EndTime:         dbSession.EndTime,
		DurationSeconds: dbSession.DurationSeconds,
	}
}

// ToDatabaseSlice converts a slice of domain Sessions to database Sessions.
func (m *SessionMapper) ToDatabaseSlice(domainSessions []Session) []sqlite.Session {
	dbSessions := make([]sqlite.Session, len(domainSessions))
	for i, session := range domainSessions {
		dbSessions[i] = m.ToDatabase(session)
	}
	return dbSessions
}

// FromDatabaseSlice converts a slice of database Sessions to domain Sessions.
func (m *SessionMapper) FromDatabaseSlice(dbSessions []sqlite.Session) []Session {
	domainSessions := make([]Session, len(dbSessions))
	for i, session := range dbSessions {
		domainSessions[i] = m.FromDatabase(session)
	}
	return domainSessions
}

// FromDatabasePtrSlice converts a slice of database Session pointers,
// as returned by the repository list queries, to domain Sessions.
func (m *SessionMapper) FromDatabasePtrSlice(dbSessions []*sqlite.Session) []Session {
	domainSessions := make([]Session, len(dbSessions))
	for i, session := range dbSessions {
		domainSessions[i] = m.FromDatabase(*session)
	}
	return domainSessions
}

// ActiveSessionMapper handles conversion between domain and database ActiveSession models.
type ActiveSessionMapper struct{}

// NewActiveSessionMapper creates a new ActiveSessionMapper instance.
func NewActiveSessionMapper() *ActiveSessionMapper {
	return &ActiveSessionMapper{}
}

// ToDatabase converts a domain ActiveSession to a database ActiveSession.
func (m *ActiveSessionMapper) ToDatabase(domainActive ActiveSession) sqlite.ActiveSession {
	return sqlite.ActiveSession{
		StartTime: domainActive.StartTime,
	}
}

// FromDatabase converts a database ActiveSession to a domain ActiveSession.
func (m *ActiveSessionMapper) FromDatabase(dbActive sqlite.ActiveSession) ActiveSession {
	return ActiveSession{
		StartTime: dbActive.StartTime,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Session       *SessionMapper
	ActiveSession *ActiveSessionMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Session:       NewSessionMapper(),
		ActiveSession: NewActiveSessionMapper(),
	}
}
