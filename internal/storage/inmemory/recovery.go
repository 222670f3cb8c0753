package inmemory

import (
	"context"
	"sort"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) ListAddictions(_ context.Context) ([]models.Addiction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addictions := make([]models.Addiction, 0, len(s.addictions))
	for _, a := range s.addictions {
		addictions = append(addictions, *a)
	}
	sort.Slice(addictions, func(i, j int) bool {
		return addictions[i].Name < addictions[j].Name
	})
	return addictions, nil
}

func (s *Store) GetAddiction(_ context.Context, id uuid.UUID) (*models.Addiction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.addictions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	addiction := *a
	return &addiction, nil
}

func (s *Store) CreateAddiction(_ context.Context, addiction *models.Addiction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.addictionNameTakenLocked(addiction.Name) {
		return storage.ErrDuplicate
	}
	s.insertAddictionLocked(addiction)
	return nil
}

func (s *Store) InsertAddictionsIgnoringConflicts(_ context.Context, addictions []models.Addiction) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var inserted int64
	for i := range addictions {
		if s.addictionNameTakenLocked(addictions[i].Name) {
			continue
		}
		s.insertAddictionLocked(&addictions[i])
		inserted++
	}
	return inserted, nil
}

func (s *Store) addictionNameTakenLocked(name string) bool {
	for _, a := range s.addictions {
		if a.Name == name {
			return true
		}
	}
	return false
}

func (s *Store) insertAddictionLocked(addiction *models.Addiction) {
	ensureID(&addiction.ID)
	addiction.CreatedAt = s.now()
	stored := *addiction
	s.addictions[addiction.ID] = &stored
}

func (s *Store) CreateUserAddiction(_ context.Context, ua *models.UserAddiction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[ua.UserID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.addictions[ua.AddictionID]; !ok {
		return storage.ErrNotFound
	}
	for _, existing := range s.userAddictions {
		if existing.UserID == ua.UserID && existing.AddictionID == ua.AddictionID {
			return storage.ErrDuplicate
		}
	}
	ensureID(&ua.ID)
	ua.CreatedAt = s.now()

	stored := *ua
	stored.Addiction = nil
	s.userAddictions[ua.ID] = &stored
	return nil
}

func (s *Store) GetUserAddiction(_ context.Context, id uuid.UUID) (*models.UserAddiction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ua, ok := s.userAddictions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return s.withAddictionLocked(ua), nil
}

func (s *Store) ListUserAddictions(_ context.Context, userID uuid.UUID) ([]models.UserAddiction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]models.UserAddiction, 0)
	for _, ua := range s.userAddictions {
		if ua.UserID == userID {
			links = append(links, *s.withAddictionLocked(ua))
		}
	}
	sort.Slice(links, func(i, j int) bool {
		return links[i].CreatedAt.Before(links[j].CreatedAt)
	})
	return links, nil
}

func (s *Store) withAddictionLocked(ua *models.UserAddiction) *models.UserAddiction {
	link := *ua
	if a, ok := s.addictions[ua.AddictionID]; ok {
		addiction := *a
		link.Addiction = &addiction
	}
	return &link
}

func (s *Store) CreateSobrietyLog(_ context.Context, log *models.SobrietyLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userAddictions[log.UserAddictionID]; !ok {
		return storage.ErrNotFound
	}
	ensureID(&log.ID)
	log.CreatedAt = s.now()

	stored := *log
	s.sobrietyLogs[log.ID] = &stored
	return nil
}

func (s *Store) ListSobrietyLogs(_ context.Context, userAddictionID uuid.UUID) ([]models.SobrietyLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]models.SobrietyLog, 0)
	for _, l := range s.sobrietyLogs {
		if l.UserAddictionID == userAddictionID {
			logs = append(logs, *l)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].Date.Equal(logs[j].Date) {
			return logs[i].Date.After(logs[j].Date)
		}
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	return logs, nil
}

// deleteUserAddictionLocked cascades to sobriety logs and detaches craving
// logs, mirroring ON DELETE SET NULL.
func (s *Store) deleteUserAddictionLocked(id uuid.UUID) {
	for lid, l := range s.sobrietyLogs {
		if l.UserAddictionID == id {
			delete(s.sobrietyLogs, lid)
		}
	}
	for _, l := range s.cravingLogs {
		if l.UserAddictionID != nil && *l.UserAddictionID == id {
			l.UserAddictionID = nil
		}
	}
	delete(s.userAddictions, id)
}

func (s *Store) CreateCravingLog(_ context.Context, log *models.CravingLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[log.UserID]; !ok {
		return storage.ErrNotFound
	}
	if log.UserAddictionID != nil {
		if _, ok := s.userAddictions[*log.UserAddictionID]; !ok {
			return storage.ErrNotFound
		}
	}
	ensureID(&log.ID)
	if log.LoggedAt.IsZero() {
		log.LoggedAt = s.now()
	}

	stored := *log
	if log.UserAddictionID != nil {
		uaID := *log.UserAddictionID
		stored.UserAddictionID = &uaID
	}
	s.cravingLogs[log.ID] = &stored
	return nil
}

func (s *Store) ListCravingLogs(_ context.Context, userID uuid.UUID) ([]models.CravingLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]models.CravingLog, 0)
	for _, l := range s.cravingLogs {
		if l.UserID == userID {
			entry := *l
			if l.UserAddictionID != nil {
				uaID := *l.UserAddictionID
				entry.UserAddictionID = &uaID
			}
			logs = append(logs, entry)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].LoggedAt.After(logs[j].LoggedAt)
	})
	return logs, nil
}

func (s *Store) CreateMoodLog(_ context.Context, log *models.MoodLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[log.UserID]; !ok {
		return storage.ErrNotFound
	}
	ensureID(&log.ID)
	if log.LoggedAt.IsZero() {
		log.LoggedAt = s.now()
	}

	stored := *log
	s.moodLogs[log.ID] = &stored
	return nil
}

func (s *Store) ListMoodLogs(_ context.Context, userID uuid.UUID) ([]models.MoodLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]models.MoodLog, 0)
	for _, l := range s.moodLogs {
		if l.UserID == userID {
			logs = append(logs, *l)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].LoggedAt.After(logs[j].LoggedAt)
	})
	return logs, nil
}
