package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clutchzone/internal/models"
)

type PropertyRepository struct {
	DB *sql.DB
}

const propertyColumns = `id, title, type, city, neighborhood, price, bedrooms, bathrooms, area, furnished,
       description, features, images, status, featured, hot, created_at, updated_at`

func scanProperty(row interface{ Scan(...interface{}) error }) (models.Property, error) {
	var (
		p        models.Property
		features []byte
		images   []byte
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Type, &p.City, &p.Neighborhood, &p.Price, &p.Bedrooms,
		&p.Bathrooms, &p.Area, &p.FurnishedAs, &p.Description, &features, &images,
		&p.Status, &p.Featured, &p.Hot, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.Property{}, err
	}
	if err := json.Unmarshal(features, &p.Features); err != nil {
		return models.Property{}, fmt.Errorf("PropertyRepository: decode features: %w", err)
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return models.Property{}, fmt.Errorf("PropertyRepository: decode images: %w", err)
	}
	return p, nil
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Images == nil {
		p.Images = []models.Image{}
	}
	features, _ := json.Marshal(p.Features)
	images, _ := json.Marshal(p.Images)

	query := `
        INSERT INTO properties (title, type, city, neighborhood, price, bedrooms, bathrooms, area,
                                furnished, description, features, images, status, featured, hot, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING id`
	p.CreatedAt = time.Now()
	err := r.DB.QueryRowContext(ctx, query,
		p.Title, p.Type, p.City, p.Neighborhood, p.Price, p.Bedrooms, p.Bathrooms, p.Area,
		p.FurnishedAs, p.Description, features, images, p.Status, p.Featured, p.Hot, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return models.Property{}, fmt.Errorf("PropertyRepository.CreateProperty: %w", err)
	}
	return p, nil
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id int) (models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Property{}, models.ErrPropertyNotFound
	}
	if err != nil {
		return models.Property{}, fmt.Errorf("PropertyRepository.GetPropertyByID: %w", err)
	}
	return p, nil
}

func (r *PropertyRepository) GetFiltered(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int, error) {
	var b whereBuilder
	if filter.Type != "" {
		b.add("type = $%d", filter.Type)
	}
	if filter.Bedrooms > 0 {
		b.add("bedrooms = $%d", filter.Bedrooms)
	}
	if filter.Bathrooms > 0 {
		b.add("bathrooms = $%d", filter.Bathrooms)
	}
	if filter.MinPrice > 0 {
		b.add("price >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		b.add("price <= $%d", filter.MaxPrice)
	}
	if filter.MinArea > 0 {
		b.add("area >= $%d", filter.MinArea)
	}
	if filter.MaxArea > 0 {
		b.add("area <= $%d", filter.MaxArea)
	}
	if filter.City != "" {
		b.add("city = $%d", filter.City)
	}
	if filter.Neighborhood != "" {
		b.add("neighborhood = $%d", filter.Neighborhood)
	}
	if filter.Furnished != "" {
		b.add("furnished = $%d", filter.Furnished)
	}
	if filter.Search != "" {
		b.add("(title ILIKE '%%' || $%[1]d || '%%' OR description ILIKE '%%' || $%[1]d || '%%')", filter.Search)
	}
	if filter.Featured {
		b.addRaw("featured = TRUE")
	}

	where := b.clause()

	var total int
	countQuery := "SELECT COUNT(*) FROM properties " + where
	if err := r.DB.QueryRowContext(ctx, countQuery, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("PropertyRepository.GetFiltered count: %w", err)
	}

	limit := clampLimit(filter.Limit)
	offset := pageOffset(filter.Page, limit)

	query := fmt.Sprintf("SELECT %s FROM properties %s %s LIMIT $%d OFFSET $%d",
		propertyColumns, where, orderClause(filter.Sort), b.next(), b.next()+1)
	args := append(b.args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("PropertyRepository.GetFiltered: %w", err)
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("PropertyRepository.GetFiltered scan: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("PropertyRepository.GetFiltered rows: %w", err)
	}
	return properties, total, nil
}

func (r *PropertyRepository) UpdateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	features, _ := json.Marshal(p.Features)
	images, _ := json.Marshal(p.Images)
	query := `
        UPDATE properties SET
            title = $1, type = $2, city = $3, neighborhood = $4, price = $5, bedrooms = $6,
            bathrooms = $7, area = $8, furnished = $9, description = $10, features = $11,
            images = $12, status = $13, featured = $14, hot = $15, updated_at = NOW()
        WHERE id = $16`
	res, err := r.DB.ExecContext(ctx, query,
		p.Title, p.Type, p.City, p.Neighborhood, p.Price, p.Bedrooms, p.Bathrooms, p.Area,
		p.FurnishedAs, p.Description, features, images, p.Status, p.Featured, p.Hot, p.ID,
	)
	if err != nil {
		return models.Property{}, fmt.Errorf("PropertyRepository.UpdateProperty: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return r.GetPropertyByID(ctx, p.ID)
}

func (r *PropertyRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE properties SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("PropertyRepository.UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) UpdateImages(ctx context.Context, id int, imageList []models.Image) error {
	if imageList == nil {
		imageList = []models.Image{}
	}
	images, _ := json.Marshal(imageList)
	res, err := r.DB.ExecContext(ctx, `UPDATE properties SET images = $1, updated_at = NOW() WHERE id = $2`, images, id)
	if err != nil {
		return fmt.Errorf("PropertyRepository.UpdateImages: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("PropertyRepository.DeleteProperty: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count)
	return count, err
}

func (r *PropertyRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

func (r *PropertyRepository) CountSoldSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM properties WHERE status = $1 AND updated_at >= $2`,
		models.StatusSold, since).Scan(&count)
	return count, err
}

func (r *PropertyRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM properties WHERE id = $1`, id).Scan(&count); err != nil {
		return false, fmt.Errorf("PropertyRepository.Exists: %w", err)
	}
	return count > 0, nil
}

func (r *PropertyRepository) GetTitle(ctx context.Context, id int) (string, error) {
	var title string
	err := r.DB.QueryRowContext(ctx, `SELECT title FROM properties WHERE id = $1`, id).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrPropertyNotFound
	}
	return title, err
}
