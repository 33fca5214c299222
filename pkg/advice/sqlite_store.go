package advice

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // pure-Go SQLite driver, registered as "sqlite"

	"github.com/vericore/vericore/pkg/analysis"
	"github.com/vericore/vericore/pkg/logx"
	"github.com/vericore/vericore/pkg/message"
)

// SQLiteStore backs the advice abstraction with a small SQLite database,
// the way the teacher repo's pkg/persistence wraps database/sql behind a
// narrow handle rather than exposing *sql.DB directly.
type SQLiteStore struct {
	db     *sql.DB
	logger *logx.Logger
	mu     sync.Mutex

	varsKey string // signature of the seeded variable declarations
}

// OpenSQLiteStore opens (creating if necessary) a SQLite-backed advice store
// at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, logx.Wrap(err, "opening advice store at %s", path)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS vars (
			signature TEXT NOT NULL,
			name      TEXT NOT NULL,
			type      TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, logx.Wrap(err, "creating vars table")
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS invariants (
			signature TEXT NOT NULL,
			expr      TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, logx.Wrap(err, "creating invariants table")
	}

	return &SQLiteStore{db: db, logger: logx.NewLogger("advice")}, nil
}

func (s *SQLiteStore) Seed(vars []analysis.VarDecl) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.varsKey = signature(vars)

	var existing int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM vars WHERE signature = ?`, s.varsKey).Scan(&existing); err != nil {
		return logx.Wrap(err, "checking existing advice signature")
	}
	if existing > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return logx.Wrap(err, "beginning advice seed transaction")
	}
	for _, v := range vars {
		if _, err := tx.Exec(`INSERT INTO vars (signature, name, type) VALUES (?, ?, ?)`, s.varsKey, v.Name, v.Type); err != nil {
			tx.Rollback() //nolint:errcheck
			return logx.Wrap(err, "seeding advice variable %s", v.Name)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Append(invariants []message.Invariant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(invariants) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return logx.Wrap(err, "beginning advice append transaction")
	}
	for _, inv := range invariants {
		if _, err := tx.Exec(`INSERT INTO invariants (signature, expr) VALUES (?, ?)`, s.varsKey, inv.Expr); err != nil {
			tx.Rollback() //nolint:errcheck
			return logx.Wrap(err, "appending invariant %q", inv.Expr)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Read() ([]message.Invariant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT expr FROM invariants WHERE signature = ?`, s.varsKey)
	if err != nil {
		return nil, logx.Wrap(err, "reading advice invariants")
	}
	defer rows.Close()

	var out []message.Invariant
	for rows.Next() {
		var expr string
		if err := rows.Scan(&expr); err != nil {
			return nil, logx.Wrap(err, "scanning advice invariant row")
		}
		out = append(out, message.Invariant{Expr: expr})
	}
	return out, rows.Err()
}

// Flush is a no-op: every Append already commits its own transaction, so
// there is nothing left to durably flush.
func (s *SQLiteStore) Flush() error {
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// signature derives a stable key for a variable declaration set so runs
// against the same analysis node share advice, regardless of declaration
// order.
func signature(vars []analysis.VarDecl) string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name + ":" + v.Type
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
