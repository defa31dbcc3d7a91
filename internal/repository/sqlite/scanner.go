package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanSession scans a single session from a database row
func ScanSession(scanner Scanner) (*Session, error) {
	session := &Session{}

	err := scanner.Scan(
		&session.ID,
		&session.StartTime,
		&session.EndTime,
		&session.DurationSeconds,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// ScanSessions scans multiple sessions from database rows
func ScanSessions(rows Rows) ([]*Session, error) {
	var sessions []*Session
	for rows.Next() {
		session, err := ScanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// ScanActiveSession scans the singleton active session row
func ScanActiveSession(scanner Scanner) (*ActiveSession, error) {
	active := &ActiveSession{}
	if err := scanner.Scan(&active.StartTime); err != nil {
		return nil, err
	}
	return active, nil
}
