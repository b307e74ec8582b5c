package places

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// ErrEmptyName is returned when saving a place without a name
var ErrEmptyName = errors.New("place name is required")

// Repository handles persistence for places saved to the Cities view
type Repository struct {
	dbPath string
}

// NewRepository creates a new saved place repository backed by the sqlite file at dbPath
func NewRepository(dbPath string) *Repository {
	if dbPath == "" {
		dbPath = database.DefaultPath()
	}
	return &Repository{dbPath: dbPath}
}

// Path returns the database file used by the repository
func (r *Repository) Path() string {
	return r.dbPath
}

// Save inserts a place, or refreshes its region and country when the name already exists
func (r *Repository) Save(place *models.SavedPlace) error {
	place.Name = strings.TrimSpace(place.Name)
	if place.Name == "" {
		return ErrEmptyName
	}

	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO saved_places (name, region, country, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			region = excluded.region,
			country = excluded.country
	`

	if place.CreatedAt.IsZero() {
		place.CreatedAt = time.Now()
	}

	if _, err := db.Exec(query, place.Name, place.Region, place.Country, place.CreatedAt); err != nil {
		return fmt.Errorf("saving place: %w", err)
	}

	// LastInsertId is not reliable on the update branch of an upsert
	if err := db.QueryRow("SELECT id FROM saved_places WHERE name = ?", place.Name).Scan(&place.ID); err != nil {
		return fmt.Errorf("getting saved place id: %w", err)
	}

	return nil
}

// List retrieves all saved places ordered by name
func (r *Repository) List() ([]models.SavedPlace, error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, name, region, country, created_at FROM saved_places ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying places: %w", err)
	}
	defer rows.Close()

	var saved []models.SavedPlace
	for rows.Next() {
		var p models.SavedPlace
		var region, country sql.NullString
		var createdAt sql.NullTime

		if err := rows.Scan(&p.ID, &p.Name, &region, &country, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning place: %w", err)
		}
		p.Region = region.String
		p.Country = country.String
		p.CreatedAt = createdAt.Time
		saved = append(saved, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating places: %w", err)
	}

	return saved, nil
}

// Delete removes a place by name
func (r *Repository) Delete(name string) error {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM saved_places WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting place: %w", err)
	}

	return nil
}
