package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"clutchzone/internal/models"
)

// DeviceRepository stores FCM registration tokens for admin push alerts.
type DeviceRepository struct {
	DB *sql.DB
}

func (r *DeviceRepository) RegisterDevice(ctx context.Context, token string) (models.Device, error) {
	var device models.Device
	query := `
        INSERT INTO admin_devices (token, created_at) VALUES ($1, NOW())
        ON CONFLICT (token) DO UPDATE SET created_at = admin_devices.created_at
        RETURNING id, token, created_at`
	err := r.DB.QueryRowContext(ctx, query, token).Scan(&device.ID, &device.Token, &device.CreatedAt)
	if err != nil {
		return models.Device{}, fmt.Errorf("DeviceRepository.RegisterDevice: %w", err)
	}
	return device, nil
}

func (r *DeviceRepository) GetTokens(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT token FROM admin_devices`)
	if err != nil {
		return nil, fmt.Errorf("DeviceRepository.GetTokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("DeviceRepository.GetTokens scan: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

func (r *DeviceRepository) DeleteToken(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM admin_devices WHERE token = $1`, token)
	return err
}
