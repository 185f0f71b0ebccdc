package TranslationRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/okanay/backend-translate-lingua/utils"
)

func (r *Repository) DeleteTranslationByID(id uuid.UUID, userID uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Translation -> Delete Translation By ID")

	query := `DELETE FROM translations WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNoRows
	}

	return nil
}
