package TranslationRepository

import (
	"time"

	"github.com/google/uuid"
	"github.com/okanay/backend-translate-lingua/types"
	"github.com/okanay/backend-translate-lingua/utils"
)

func (r *Repository) SelectTranslationByID(id uuid.UUID, userID uuid.UUID) (types.Translation, error) {
	defer utils.TimeTrack(time.Now(), "Translation -> Select Translation By ID")

	var translation types.Translation

	query := `SELECT * FROM translations WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRow(query, id, userID)
	err := utils.ScanStructByDBTags(row, &translation)
	if err != nil {
		return translation, err
	}

	return translation, nil
}
