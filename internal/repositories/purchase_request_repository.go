package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clutchzone/internal/models"
)

type PurchaseRequestRepository struct {
	DB *sql.DB
}

func (r *PurchaseRequestRepository) CreateRequest(ctx context.Context, req models.PurchaseRequest) (models.PurchaseRequest, error) {
	query := `
        INSERT INTO purchase_requests (item_type, item_id, item_title, name, phone, email, message, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id`
	req.CreatedAt = time.Now()
	err := r.DB.QueryRowContext(ctx, query,
		req.ItemType, req.ItemID, req.ItemTitle, req.Name, req.Phone, req.Email,
		req.Message, req.Status, req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		return models.PurchaseRequest{}, fmt.Errorf("PurchaseRequestRepository.CreateRequest: %w", err)
	}
	return req, nil
}

func (r *PurchaseRequestRepository) GetRequestByID(ctx context.Context, id int) (models.PurchaseRequest, error) {
	var req models.PurchaseRequest
	query := `
        SELECT id, item_type, item_id, item_title, name, phone, email, message, status, created_at
        FROM purchase_requests WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.ItemType, &req.ItemID, &req.ItemTitle, &req.Name, &req.Phone,
		&req.Email, &req.Message, &req.Status, &req.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PurchaseRequest{}, models.ErrRequestNotFound
	}
	if err != nil {
		return models.PurchaseRequest{}, fmt.Errorf("PurchaseRequestRepository.GetRequestByID: %w", err)
	}
	return req, nil
}

func (r *PurchaseRequestRepository) GetFiltered(ctx context.Context, filter models.PurchaseRequestFilter) ([]models.PurchaseRequest, int, error) {
	var b whereBuilder
	if filter.Status != "" {
		b.add("status = $%d", filter.Status)
	}
	where := b.clause()

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM purchase_requests "+where, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("PurchaseRequestRepository.GetFiltered count: %w", err)
	}

	limit := clampLimit(filter.Limit)
	offset := pageOffset(filter.Page, limit)

	query := fmt.Sprintf(`
        SELECT id, item_type, item_id, item_title, name, phone, email, message, status, created_at
        FROM purchase_requests %s ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d`,
		where, b.next(), b.next()+1)
	args := append(b.args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("PurchaseRequestRepository.GetFiltered: %w", err)
	}
	defer rows.Close()

	var requests []models.PurchaseRequest
	for rows.Next() {
		var req models.PurchaseRequest
		if err := rows.Scan(
			&req.ID, &req.ItemType, &req.ItemID, &req.ItemTitle, &req.Name, &req.Phone,
			&req.Email, &req.Message, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("PurchaseRequestRepository.GetFiltered scan: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("PurchaseRequestRepository.GetFiltered rows: %w", err)
	}
	return requests, total, nil
}

// GetRecent returns the latest requests for the admin dashboard.
func (r *PurchaseRequestRepository) GetRecent(ctx context.Context, limit int) ([]models.PurchaseRequest, error) {
	requests, _, err := r.GetFiltered(ctx, models.PurchaseRequestFilter{Page: 1, Limit: limit})
	return requests, err
}

// GetAll streams every request, newest first. Used by the export endpoint.
func (r *PurchaseRequestRepository) GetAll(ctx context.Context) ([]models.PurchaseRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, item_type, item_id, item_title, name, phone, email, message, status, created_at
        FROM purchase_requests ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("PurchaseRequestRepository.GetAll: %w", err)
	}
	defer rows.Close()

	var requests []models.PurchaseRequest
	for rows.Next() {
		var req models.PurchaseRequest
		if err := rows.Scan(
			&req.ID, &req.ItemType, &req.ItemID, &req.ItemTitle, &req.Name, &req.Phone,
			&req.Email, &req.Message, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("PurchaseRequestRepository.GetAll scan: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *PurchaseRequestRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE purchase_requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("PurchaseRequestRepository.UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrRequestNotFound
	}
	return nil
}

func (r *PurchaseRequestRepository) DeleteRequest(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM purchase_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("PurchaseRequestRepository.DeleteRequest: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrRequestNotFound
	}
	return nil
}

func (r *PurchaseRequestRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM purchase_requests`).Scan(&count)
	return count, err
}

func (r *PurchaseRequestRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM purchase_requests WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}
