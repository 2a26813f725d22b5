package movies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/newguy7/My-Favorite-Movies/pkg/models"
)

var (
	// ErrNotFound is returned when no movie exists for the requested id.
	ErrNotFound = errors.New("movie not found")
	// ErrDuplicateTitle is returned when an insert collides with an
	// existing title (UNIQUE constraint on movies.title).
	ErrDuplicateTitle = errors.New("movie title already exists")
)

// Placeholder values applied to a freshly added movie. The edit flow that
// immediately follows the add flow is expected to overwrite rating/review.
const (
	PlaceholderRating  = 1.0
	PlaceholderRanking = 5
	PlaceholderReview  = "Good"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// ListByRatingDesc returns every stored movie ordered by rating descending.
// Ties are broken by ascending id, which keeps the order stable across reads.
func (r *Repo) ListByRatingDesc(ctx context.Context) ([]models.Movie, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, year, description, rating, ranking, review, img_url
		FROM movies
		ORDER BY rating DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	out := make([]models.Movie, 0, 16)
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Ranking, &m.Review, &m.ImgURL,
		); err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, title, year, description, rating, ranking, review, img_url
		FROM movies
		WHERE id = ?
	`, id)

	var m models.Movie
	if err := row.Scan(
		&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Ranking, &m.Review, &m.ImgURL,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan getByID: %w", err)
	}
	return &m, nil
}

// Insert stores a new movie and returns the created record with its
// assigned id, so callers never need a follow-up lookup by title.
func (r *Repo) Insert(ctx context.Context, m models.Movie) (*models.Movie, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO movies (title, year, description, rating, ranking, review, img_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.Title, m.Year, m.Description, m.Rating, m.Ranking, m.Review, m.ImgURL)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	m.ID = id
	return &m, nil
}

// UpdateRating sets the user-supplied rating and review for one movie.
func (r *Repo) UpdateRating(ctx context.Context, id int64, rating float64, review string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE movies
		SET rating = ?, review = ?
		WHERE id = ?
	`, rating, review, id)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM movies
		WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
