package database

import (
	"fmt"
	"sync"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

type statusRepo struct {
	db dbConn
	mu *sync.Mutex
}

func newStatusRepo(db dbConn, mu *sync.Mutex) contract.StatusRepo {
	return &statusRepo{db: db, mu: mu}
}

func (r *statusRepo) Insert(entry *entity.StandupEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		INSERT INTO statuses (date, yesterday, today, blockers, author)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		entry.Date,
		entry.Yesterday,
		entry.Today,
		entry.Blockers,
		entry.Author,
	)
	if err != nil {
		return fmt.Errorf("failed to insert status: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	entry.ID = id
	return nil
}

// DeleteByID removes at most one row matching all three keys. Matching the
// author means a user can never delete someone else's entry.
func (r *statusRepo) DeleteByID(id int64, author, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `DELETE FROM statuses WHERE id = ? AND author = ? AND date = ?`

	result, err := r.db.Exec(query, id, author, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete status: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return count, nil
}

func (r *statusRepo) GetByAuthorAndDate(author, date string) ([]*entity.StandupEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		SELECT id, date, yesterday, today, blockers, author
		FROM statuses
		WHERE author = ? AND date = ?
		ORDER BY id ASC
	`

	return r.queryEntries(query, author, date)
}

func (r *statusRepo) GetByDate(date string) ([]*entity.StandupEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		SELECT id, date, yesterday, today, blockers, author
		FROM statuses
		WHERE date = ?
		ORDER BY id ASC
	`

	return r.queryEntries(query, date)
}

func (r *statusRepo) queryEntries(query string, args ...interface{}) ([]*entity.StandupEntry, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get statuses: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StandupEntry
	for rows.Next() {
		entry := &entity.StandupEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Yesterday,
			&entry.Today,
			&entry.Blockers,
			&entry.Author,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate statuses: %w", err)
	}

	return entries, nil
}
