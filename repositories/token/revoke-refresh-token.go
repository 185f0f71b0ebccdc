package TokenRepository

import (
	"time"

	"github.com/okanay/backend-translate-lingua/utils"
)

func (r *Repository) RevokeRefreshToken(token string, reason string) error {
	defer utils.TimeTrack(time.Now(), "Token -> Revoke Refresh Token")

	query := `
		UPDATE refresh_tokens
		SET is_revoked = TRUE, revoked_reason = $1
		WHERE token = $2
	`

	_, err := r.db.Exec(query, reason, token)
	return err
}
