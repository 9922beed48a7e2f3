package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clutchzone/internal/models"
)

// SessionRepository stores admin refresh-token sessions.
type SessionRepository struct {
	DB *sql.DB
}

func (r *SessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	query := `
        INSERT INTO admin_sessions (user_id, role, refresh_token, expires_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	err := r.DB.QueryRowContext(ctx, query,
		session.UserID, session.Role, session.RefreshToken, session.ExpiresAt,
	).Scan(&session.ID)
	if err != nil {
		return models.Session{}, fmt.Errorf("SessionRepository.CreateSession: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `
        SELECT id, user_id, role, refresh_token, expires_at
        FROM admin_sessions WHERE refresh_token = $1`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.ID, &session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("SessionRepository.GetSessionByToken: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM admin_sessions WHERE expires_at < NOW()`)
	return err
}
