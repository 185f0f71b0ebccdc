package TokenRepository

import (
	"time"

	"github.com/okanay/backend-translate-lingua/types"
	"github.com/okanay/backend-translate-lingua/utils"
)

func (r *Repository) SelectRefreshTokenByToken(token string) (types.RefreshToken, error) {
	defer utils.TimeTrack(time.Now(), "Token -> Select Refresh Token By Token")

	var refreshToken types.RefreshToken

	query := `SELECT * FROM refresh_tokens WHERE token = $1`

	row := r.db.QueryRow(query, token)
	err := utils.ScanStructByDBTags(row, &refreshToken)
	if err != nil {
		return refreshToken, err
	}

	return refreshToken, nil
}
