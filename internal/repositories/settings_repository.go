package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"clutchzone/internal/models"
)

// SettingsRepository persists the site configuration as a single JSON row so
// edits survive restarts. The row is created lazily on first save.
type SettingsRepository struct {
	DB *sql.DB
}

func (r *SettingsRepository) Load(ctx context.Context) (models.SiteSettings, error) {
	var data []byte
	err := r.DB.QueryRowContext(ctx, `SELECT data FROM site_settings WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("SettingsRepository.Load: %w", err)
	}

	var settings models.SiteSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("SettingsRepository.Load decode: %w", err)
	}
	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings models.SiteSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("SettingsRepository.Save encode: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, `
        INSERT INTO site_settings (id, data, updated_at) VALUES (1, $1, NOW())
        ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`, data)
	if err != nil {
		return fmt.Errorf("SettingsRepository.Save: %w", err)
	}
	return nil
}
