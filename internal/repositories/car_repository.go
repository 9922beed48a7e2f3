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

type CarRepository struct {
	DB *sql.DB
}

const carColumns = `id, title, make, model, year, price, mileage, transmission, fuel_type, color,
       city, condition, description, features, images, status, featured, hot, created_at, updated_at`

func scanCar(row interface{ Scan(...interface{}) error }) (models.Car, error) {
	var (
		car      models.Car
		features []byte
		images   []byte
	)
	err := row.Scan(
		&car.ID, &car.Title, &car.Make, &car.Model, &car.Year, &car.Price, &car.Mileage,
		&car.Transmission, &car.FuelType, &car.Color, &car.City, &car.Condition,
		&car.Description, &features, &images, &car.Status, &car.Featured, &car.Hot,
		&car.CreatedAt, &car.UpdatedAt,
	)
	if err != nil {
		return models.Car{}, err
	}
	if err := json.Unmarshal(features, &car.Features); err != nil {
		return models.Car{}, fmt.Errorf("CarRepository: decode features: %w", err)
	}
	if err := json.Unmarshal(images, &car.Images); err != nil {
		return models.Car{}, fmt.Errorf("CarRepository: decode images: %w", err)
	}
	return car, nil
}

func (r *CarRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	if car.Features == nil {
		car.Features = []string{}
	}
	if car.Images == nil {
		car.Images = []models.Image{}
	}
	features, _ := json.Marshal(car.Features)
	images, _ := json.Marshal(car.Images)

	query := `
        INSERT INTO cars (title, make, model, year, price, mileage, transmission, fuel_type, color,
                          city, condition, description, features, images, status, featured, hot, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
        RETURNING id`
	car.CreatedAt = time.Now()
	err := r.DB.QueryRowContext(ctx, query,
		car.Title, car.Make, car.Model, car.Year, car.Price, car.Mileage, car.Transmission,
		car.FuelType, car.Color, car.City, car.Condition, car.Description,
		features, images, car.Status, car.Featured, car.Hot, car.CreatedAt,
	).Scan(&car.ID)
	if err != nil {
		return models.Car{}, fmt.Errorf("CarRepository.CreateCar: %w", err)
	}
	return car, nil
}

func (r *CarRepository) GetCarByID(ctx context.Context, id int) (models.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	car, err := scanCar(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, models.ErrCarNotFound
	}
	if err != nil {
		return models.Car{}, fmt.Errorf("CarRepository.GetCarByID: %w", err)
	}
	return car, nil
}

// GetFiltered returns one page of cars matching the filter along with the
// total number of matches before pagination.
func (r *CarRepository) GetFiltered(ctx context.Context, filter models.CarFilter) ([]models.Car, int, error) {
	var b whereBuilder
	if filter.Make != "" {
		b.add("make = $%d", filter.Make)
	}
	if filter.Model != "" {
		b.add("model = $%d", filter.Model)
	}
	if filter.Year > 0 {
		b.add("year = $%d", filter.Year)
	}
	if filter.MinPrice > 0 {
		b.add("price >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		b.add("price <= $%d", filter.MaxPrice)
	}
	if filter.MaxMileage > 0 {
		b.add("mileage <= $%d", filter.MaxMileage)
	}
	if filter.Transmission != "" {
		b.add("transmission = $%d", filter.Transmission)
	}
	if filter.FuelType != "" {
		b.add("fuel_type = $%d", filter.FuelType)
	}
	if filter.City != "" {
		b.add("city = $%d", filter.City)
	}
	if filter.Condition != "" {
		b.add("condition = $%d", filter.Condition)
	}
	if filter.Search != "" {
		b.add("(title ILIKE '%%' || $%[1]d || '%%' OR description ILIKE '%%' || $%[1]d || '%%')", filter.Search)
	}
	if filter.Featured {
		b.addRaw("featured = TRUE")
	}

	where := b.clause()

	var total int
	countQuery := "SELECT COUNT(*) FROM cars " + where
	if err := r.DB.QueryRowContext(ctx, countQuery, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("CarRepository.GetFiltered count: %w", err)
	}

	limit := clampLimit(filter.Limit)
	offset := pageOffset(filter.Page, limit)

	query := fmt.Sprintf("SELECT %s FROM cars %s %s LIMIT $%d OFFSET $%d",
		carColumns, where, orderClause(filter.Sort), b.next(), b.next()+1)
	args := append(b.args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("CarRepository.GetFiltered: %w", err)
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("CarRepository.GetFiltered scan: %w", err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("CarRepository.GetFiltered rows: %w", err)
	}
	return cars, total, nil
}

func (r *CarRepository) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	features, _ := json.Marshal(car.Features)
	images, _ := json.Marshal(car.Images)
	query := `
        UPDATE cars SET
            title = $1, make = $2, model = $3, year = $4, price = $5, mileage = $6,
            transmission = $7, fuel_type = $8, color = $9, city = $10, condition = $11,
            description = $12, features = $13, images = $14, status = $15,
            featured = $16, hot = $17, updated_at = NOW()
        WHERE id = $18`
	res, err := r.DB.ExecContext(ctx, query,
		car.Title, car.Make, car.Model, car.Year, car.Price, car.Mileage, car.Transmission,
		car.FuelType, car.Color, car.City, car.Condition, car.Description,
		features, images, car.Status, car.Featured, car.Hot, car.ID,
	)
	if err != nil {
		return models.Car{}, fmt.Errorf("CarRepository.UpdateCar: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Car{}, models.ErrCarNotFound
	}
	return r.GetCarByID(ctx, car.ID)
}

func (r *CarRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE cars SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("CarRepository.UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrCarNotFound
	}
	return nil
}

// UpdateImages replaces the stored image list. Used after attaching uploads
// or detaching a deleted image.
func (r *CarRepository) UpdateImages(ctx context.Context, id int, imageList []models.Image) error {
	if imageList == nil {
		imageList = []models.Image{}
	}
	images, _ := json.Marshal(imageList)
	res, err := r.DB.ExecContext(ctx, `UPDATE cars SET images = $1, updated_at = NOW() WHERE id = $2`, images, id)
	if err != nil {
		return fmt.Errorf("CarRepository.UpdateImages: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrCarNotFound
	}
	return nil
}

func (r *CarRepository) DeleteCar(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("CarRepository.DeleteCar: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrCarNotFound
	}
	return nil
}

func (r *CarRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cars`).Scan(&count)
	return count, err
}

func (r *CarRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cars WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

func (r *CarRepository) CountSoldSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cars WHERE status = $1 AND updated_at >= $2`,
		models.StatusSold, since).Scan(&count)
	return count, err
}

func (r *CarRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM cars WHERE id = $1`, id).Scan(&count); err != nil {
		return false, fmt.Errorf("CarRepository.Exists: %w", err)
	}
	return count > 0, nil
}

func (r *CarRepository) GetTitle(ctx context.Context, id int) (string, error) {
	var title string
	err := r.DB.QueryRowContext(ctx, `SELECT title FROM cars WHERE id = $1`, id).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrCarNotFound
	}
	return title, err
}
