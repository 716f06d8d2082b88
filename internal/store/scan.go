package store

import (
	"database/sql"

	"github.com/futbolpath/futbolpath/internal/models"
)

// playerColumns lists the columns selected for player queries.
const playerColumns = `player_id, name, position, country, image_url, current_club_name`

// scanPlayer scans a single row into a models.Player. It accepts the Scan
// method of database/sql and pgx rows alike.
func scanPlayer(scan func(dest ...any) error) (*models.Player, error) {
	var p models.Player
	var position, country, image, clubName sql.NullString

	if err := scan(&p.ID, &p.Name, &position, &country, &image, &clubName); err != nil {
		return nil, err
	}

	p.Position = nullString(position)
	p.Country = nullString(country)
	p.ImageURL = nullString(image)
	p.CurrentClub = nullString(clubName)

	return &p, nil
}
