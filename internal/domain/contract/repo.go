package contract

import (
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	Status() StatusRepo
}

// StatusRepo defines the contract for the standup statuses repository
type StatusRepo interface {
	Insert(entry *entity.StandupEntry) error
	DeleteByID(id int64, author, date string) (int64, error)
	GetByAuthorAndDate(author, date string) ([]*entity.StandupEntry, error)
	GetByDate(date string) ([]*entity.StandupEntry, error)
}
