package storage

import (
	"context"
	"database/sql"
	"time"
)

// Entry is one logged suggestion request.
type Entry struct {
	SessionID   string    `json:"sessionId"`
	UserID      string    `json:"userId,omitempty"`
	Rows        int       `json:"rows"`
	Constraints int       `json:"constraints"`
	Survivors   int       `json:"survivors"`
	TopWord     string    `json:"topWord"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SolveLog records solves made through board sessions.
type SolveLog struct{ db *sql.DB }

func NewSolveLog(db *sql.DB) *SolveLog { return &SolveLog{db: db} }

// Insert appends e. An empty UserID is stored as NULL (guest session).
func (s *SolveLog) Insert(ctx context.Context, e Entry) error {
	var user any
	if e.UserID != "" {
		user = e.UserID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO solves(session_id, user_id, board_rows, constraints, survivors, top_word)
		 VALUES(?,?,?,?,?,?)`,
		e.SessionID, user, e.Rows, e.Constraints, e.Survivors, e.TopWord,
	)
	return err
}

// Recent returns the user's latest entries, newest first (default limit 50).
func (s *SolveLog) Recent(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, board_rows, constraints, survivors, top_word, created_at
		 FROM solves
		 WHERE user_id=?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		e := Entry{UserID: userID}
		var created string
		if err := rows.Scan(&e.SessionID, &e.Rows, &e.Constraints, &e.Survivors, &e.TopWord, &created); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, e)
	}
	return out, rows.Err()
}
