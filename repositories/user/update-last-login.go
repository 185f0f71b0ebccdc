package UserRepository

import (
	"time"

	"github.com/okanay/backend-translate-lingua/utils"
)

func (r *Repository) UpdateLastLogin(email string, lastLogin time.Time) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Last Login")

	query := `UPDATE users SET last_login = $1, updated_at = NOW() WHERE email = $2`

	_, err := r.db.Exec(query, lastLogin, email)
	return err
}
