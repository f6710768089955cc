package database

import (
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	statusRepo contract.StatusRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.statusRepo = newStatusRepo(i.db.conn, &i.db.mu)
}

// Status returns the standup statuses repository
func (i *instance) Status() contract.StatusRepo {
	return i.statusRepo
}
