package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Repository is the persistence surface: user accounts and their saved
// soil profile projects.
type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	CreateProject(ctx context.Context, userID int, name string, profile json.RawMessage) (int, error)
	ListProjects(ctx context.Context, userID int) ([]ProjectSummary, error)
	GetProject(ctx context.Context, userID, projectID int) (*Project, error)
	DeleteProject(ctx context.Context, userID, projectID int) error
}

// ProjectSummary is a project row without the stored profile payload.
type ProjectSummary struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Project is a saved soil profile with its metadata.
type Project struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Profile   json.RawMessage `json:"soil_profile"`
	CreatedAt time.Time       `json:"created_at"`
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) CreateProject(ctx context.Context, userID int, name string, profile json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO projects (user_id, name, profile) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, profile).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListProjects(ctx context.Context, userID int) ([]ProjectSummary, error) {
	query := "SELECT id, name, created_at FROM projects WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []ProjectSummary
	for rows.Next() {
		var p ProjectSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PostgresRepository) GetProject(ctx context.Context, userID, projectID int) (*Project, error) {
	var p Project
	query := "SELECT id, name, profile, created_at FROM projects WHERE id=$1 AND user_id=$2"
	err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&p.ID, &p.Name, &p.Profile, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, userID, projectID int) error {
	query := "DELETE FROM projects WHERE id=$1 AND user_id=$2"
	res, err := r.db.ExecContext(ctx, query, projectID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
