package TokenRepository

import (
	"time"

	"github.com/okanay/backend-translate-lingua/utils"
)

func (r *Repository) UpdateRefreshTokenLastUsed(token string) error {
	defer utils.TimeTrack(time.Now(), "Token -> Update Refresh Token Last Used")

	query := `UPDATE refresh_tokens SET last_used_at = NOW() WHERE token = $1`

	_, err := r.db.Exec(query, token)
	return err
}
