package TranslationRepository

import (
	"time"

	"github.com/google/uuid"
	"github.com/okanay/backend-translate-lingua/types"
	"github.com/okanay/backend-translate-lingua/utils"
)

func (r *Repository) UpdateFavorite(id uuid.UUID, userID uuid.UUID, favorite bool) (types.Translation, error) {
	defer utils.TimeTrack(time.Now(), "Translation -> Update Favorite")

	var translation types.Translation

	// Ownership is enforced in the WHERE clause, a foreign id yields no rows
	query := `
		UPDATE translations
		SET is_favorite = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING *
	`

	row := r.db.QueryRow(query, favorite, id, userID)
	err := utils.ScanStructByDBTags(row, &translation)
	if err != nil {
		return translation, err
	}

	return translation, nil
}
