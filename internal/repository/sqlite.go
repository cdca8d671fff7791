package repository

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"quizhost/internal/models"
)

// Repository provides sqlite-backed question-set storage
type Repository struct {
	db *sql.DB
}

// New creates a new Repository at dbPath (":memory:" for tests)
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// NewWithDB wraps an existing database handle (used by sqlmock tests)
func NewWithDB(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS question_sets (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			title TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			position INTEGER NOT NULL,
			question_id INTEGER NOT NULL,
			text TEXT NOT NULL,
			option_0 TEXT NOT NULL,
			option_1 TEXT NOT NULL,
			option_2 TEXT NOT NULL,
			option_3 TEXT NOT NULL,
			correct_index INTEGER NOT NULL CHECK (correct_index BETWEEN 0 AND 3)
		)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}
	return nil
}

// LoadQuestionSet returns the stored question set, or ErrNotFound when no
// set has been authored yet.
func (r *Repository) LoadQuestionSet(ctx context.Context) (*models.QuestionSet, error) {
	var title string
	err := r.db.QueryRowContext(ctx, `SELECT title FROM question_sets WHERE id = 1`).Scan(&title)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT question_id, text, option_0, option_1, option_2, option_3, correct_index
		FROM questions
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := &models.QuestionSet{Title: title}
	for rows.Next() {
		var q models.Question
		var opts [4]string
		if err := rows.Scan(&q.ID, &q.Text, &opts[0], &opts[1], &opts[2], &opts[3], &q.CorrectIndex); err != nil {
			return nil, err
		}
		q.Options = opts[:]
		set.Questions = append(set.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(set.Questions) == 0 {
		return nil, ErrNotFound
	}
	return set, nil
}

// SaveQuestionSet replaces the stored question set in a single transaction
func (r *Repository) SaveQuestionSet(ctx context.Context, set models.QuestionSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO question_sets (id, title, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, updated_at = CURRENT_TIMESTAMP`,
		set.Title); err != nil {
		return err
	}

	for position, q := range set.Questions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO questions (position, question_id, text, option_0, option_1, option_2, option_3, correct_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			position, q.ID, q.Text, q.Options[0], q.Options[1], q.Options[2], q.Options[3], q.CorrectIndex); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Ensure Repository implements QuestionStore
var _ QuestionStore = (*Repository)(nil)
