package service

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

// draft is a user's in-progress standup. It lives only in process memory and
// is lost on restart.
type draft map[domain.Part]string

type standupService struct {
	dm     contract.DataManager
	groups []entity.TimezoneGroup
	log    *zap.Logger
	now    func() time.Time

	// mu guards drafts; handler goroutines may overlap.
	mu     sync.Mutex
	drafts map[string]draft
}

func newStandup(dm contract.DataManager, groups []entity.TimezoneGroup, log *zap.Logger) *standupService {
	return &standupService{
		dm:     dm,
		groups: groups,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
		drafts: make(map[string]draft),
	}
}

func (s *standupService) Start(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[user] = make(draft)
}

func (s *standupService) SetPart(user string, part domain.Part, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[user]
	if !ok {
		return domain.ErrNotStarted
	}

	// Overwriting a previously staged part is allowed.
	d[part] = text
	return nil
}

func (s *standupService) Review(user string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.drafts[user]

	lines := make([]string, 0, len(domain.PartOrder))
	for _, part := range domain.PartOrder {
		if text, ok := d[part]; ok {
			lines = append(lines, text)
		} else {
			lines = append(lines, domain.UnsetSentinel)
		}
	}
	return lines
}

// Commit checks in order: draft started, all parts staged (yesterday, today,
// blockers), no entry committed yet for the author's local date. The check
// order keeps error messages deterministic.
func (s *standupService) Commit(user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[user]
	if !ok {
		return domain.ErrNotStarted
	}

	for _, part := range domain.PartOrder {
		if _, ok := d[part]; !ok {
			return &domain.MissingPartError{Part: part}
		}
	}

	date, err := s.localToday(user)
	if err != nil {
		return err
	}

	existing, err := s.dm.Status().GetByAuthorAndDate(user, date)
	if err != nil {
		return fmt.Errorf("failed to check existing entry: %w", err)
	}
	if len(existing) > 0 {
		return domain.ErrAlreadyCommitted
	}

	entry := &entity.StandupEntry{
		Date:      date,
		Yesterday: d[domain.PartYesterday],
		Today:     d[domain.PartToday],
		Blockers:  d[domain.PartBlockers],
		Author:    user,
	}

	if err := s.dm.Status().Insert(entry); err != nil {
		return fmt.Errorf("failed to persist entry: %w", err)
	}

	delete(s.drafts, user)
	s.log.Info("standup committed", zap.String("author", user), zap.String("date", date))
	return nil
}

func (s *standupService) Entries(author, date string) ([]*entity.StandupEntry, error) {
	return s.dm.Status().GetByAuthorAndDate(author, date)
}

func (s *standupService) TeamEntries(date string) ([]*entity.StandupEntry, error) {
	return s.dm.Status().GetByDate(date)
}

func (s *standupService) Delete(user string, id int64) (int64, error) {
	date, err := s.LocalToday(user)
	if err != nil {
		return 0, err
	}
	return s.dm.Status().DeleteByID(id, user, date)
}

func (s *standupService) LocalToday(user string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.localToday(user)
}

// localToday must be called with s.mu held.
func (s *standupService) localToday(user string) (string, error) {
	tz, ok := domain.LookupTimezone(user, s.groups)
	if !ok {
		s.log.Debug("user not in exactly one timezone group", zap.String("user", user))
		return "", domain.ErrNoTimezone
	}

	date, err := domain.LocalDate(s.now(), tz)
	if err != nil {
		return "", fmt.Errorf("failed to resolve local date: %w", err)
	}
	return date, nil
}
