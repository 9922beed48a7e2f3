package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"clutchzone/internal/models"
	"clutchzone/internal/repositories"
)

// SettingsService holds the single site configuration object. Reads return
// copies; writes merge per category under the lock and are written through to
// the repository when one is wired, so edits survive restarts.
type SettingsService struct {
	mu       sync.RWMutex
	settings models.SiteSettings

	Repo     *repositories.SettingsRepository // optional
	ErrorLog *log.Logger                      // optional
}

// NewSettingsService builds the store from defaults, overlaid with whatever
// was persisted previously.
func NewSettingsService(ctx context.Context, repo *repositories.SettingsRepository, errorLog *log.Logger) *SettingsService {
	s := &SettingsService{
		settings: models.DefaultSettings(),
		Repo:     repo,
		ErrorLog: errorLog,
	}
	if repo != nil {
		saved, err := repo.Load(ctx)
		if err == nil {
			for category, values := range saved {
				if !models.IsValidSettingsCategory(category) {
					continue
				}
				for k, v := range values {
					s.settings[category][k] = v
				}
			}
		} else if !errors.Is(err, models.ErrNoRecord) && errorLog != nil {
			errorLog.Printf("settings: load failed, using defaults: %v", err)
		}
	}
	return s
}

func (s *SettingsService) GetAll() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// UpdateCategory shallow-merges partial into the named category: keys present
// in partial overwrite, everything else is preserved. Returns the updated
// category.
func (s *SettingsService) UpdateCategory(ctx context.Context, category string, partial map[string]string) (map[string]string, error) {
	if !models.IsValidSettingsCategory(category) {
		return nil, models.ErrSettingsCategoryNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range partial {
		s.settings[category][k] = v
	}
	updated := s.settings.Clone()[category]

	s.persist(ctx)
	return updated, nil
}

// UpdateKey sets one key inside a category.
func (s *SettingsService) UpdateKey(ctx context.Context, category, key, value string) (map[string]string, error) {
	if !models.IsValidSettingsCategory(category) {
		return nil, models.ErrSettingsCategoryNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings[category][key] = value
	updated := s.settings.Clone()[category]

	s.persist(ctx)
	return updated, nil
}

// persist is called with the lock held; failures are logged, never surfaced,
// so a storage hiccup does not reject an otherwise applied update.
func (s *SettingsService) persist(ctx context.Context) {
	if s.Repo == nil {
		return
	}
	if err := s.Repo.Save(ctx, s.settings); err != nil && s.ErrorLog != nil {
		s.ErrorLog.Printf("settings: persist failed: %v", err)
	}
}
