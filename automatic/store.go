package automatic

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Store persists self-play results in a sqlite database, so long tuning
// runs survive restarts and can be queried later.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pieces INTEGER NOT NULL,
		lines INTEGER NOT NULL,
		score INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) AddGame(res GameResult) error {
	_, err := s.db.Exec(
		`INSERT INTO games (pieces, lines, score) VALUES (?, ?, ?)`,
		res.Pieces, res.Lines, res.Score)
	return err
}

// GameCount returns how many results the store holds.
func (s *Store) GameCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM games`).Scan(&n)
	return n, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
