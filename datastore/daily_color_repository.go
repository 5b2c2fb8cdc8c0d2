package datastore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/chromix/api/models"
	_ "github.com/lib/pq"
)

type DailyColorRepository interface {
	Create(dailyColor models.DailyColor) (models.DailyColor, error)
	GetByDate(date time.Time) (models.DailyColor, error)
	GetToday() (models.DailyColor, error)
	GetAll() ([]models.DailyColor, error)
	Delete(id int) error
}

type DailyColorDatabase struct {
	database *sql.DB
}

func NewDailyColorDatabase(db *sql.DB) (DailyColorDatabase, error) {
	var dailyColorDB DailyColorDatabase
	dailyColorDB.database = db
	return dailyColorDB, nil
}

// NormalizeDate truncates t to the start of its day
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Create inserts a new featured color
func (dcdb DailyColorDatabase) Create(dailyColor models.DailyColor) (models.DailyColor, error) {
	sqlStatement := `
		INSERT INTO daily_color (date, r, g, b, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := dcdb.database.QueryRow(
		sqlStatement,
		dailyColor.Date,
		dailyColor.R,
		dailyColor.G,
		dailyColor.B,
		dailyColor.CreatedAt,
	).Scan(&dailyColor.ID)

	if err != nil {
		return models.DailyColor{}, fmt.Errorf("failed to create daily color: %v", err)
	}

	return dailyColor, nil
}

// GetByDate retrieves the featured color of the given day
func (dcdb DailyColorDatabase) GetByDate(date time.Time) (models.DailyColor, error) {
	sqlStatement := `
		SELECT id, date, r, g, b, created_at
		FROM daily_color
		WHERE date = $1`

	row := dcdb.database.QueryRow(sqlStatement, NormalizeDate(date))

	var dailyColor models.DailyColor
	err := row.Scan(
		&dailyColor.ID,
		&dailyColor.Date,
		&dailyColor.R,
		&dailyColor.G,
		&dailyColor.B,
		&dailyColor.CreatedAt,
	)

	switch err {
	case sql.ErrNoRows:
		return models.DailyColor{}, NoRowsError{true, err}
	case nil:
		return dailyColor, nil
	default:
		return models.DailyColor{}, err
	}
}

// GetToday retrieves today's featured color
func (dcdb DailyColorDatabase) GetToday() (models.DailyColor, error) {
	return dcdb.GetByDate(time.Now())
}

// GetAll retrieves all featured colors, newest first
func (dcdb DailyColorDatabase) GetAll() ([]models.DailyColor, error) {
	sqlStatement := `
		SELECT id, date, r, g, b, created_at
		FROM daily_color
		ORDER BY date DESC`

	rows, err := dcdb.database.Query(sqlStatement)
	if err != nil {
		return []models.DailyColor{}, err
	}
	defer rows.Close()

	var dailyColors []models.DailyColor
	for rows.Next() {
		var dc models.DailyColor
		err := rows.Scan(
			&dc.ID,
			&dc.Date,
			&dc.R,
			&dc.G,
			&dc.B,
			&dc.CreatedAt,
		)
		if err != nil {
			return []models.DailyColor{}, err
		}
		dailyColors = append(dailyColors, dc)
	}

	if err = rows.Err(); err != nil {
		return []models.DailyColor{}, err
	}

	return dailyColors, nil
}

// Delete removes a featured color by ID, returning NoRowsError when no row
// has that ID
func (dcdb DailyColorDatabase) Delete(id int) error {
	result, err := dcdb.database.Exec(`DELETE FROM daily_color WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete daily color: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NoRowsError{true, sql.ErrNoRows}
	}
	return nil
}
