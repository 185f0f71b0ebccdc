package TranslationRepository

import (
	"time"

	"github.com/okanay/backend-translate-lingua/types"
	"github.com/okanay/backend-translate-lingua/utils"
)

func (r *Repository) CreateTranslation(request types.TranslationCreateDBRequest) (types.Translation, error) {
	defer utils.TimeTrack(time.Now(), "Translation -> Create Translation")

	var translation types.Translation

	query := `
		INSERT INTO translations
			(user_id, source_text, translated_text, source_language, target_language, tone, style, preserve_formatting, tokens_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *
	`

	row := r.db.QueryRow(query,
		request.UserID,
		request.SourceText,
		request.TranslatedText,
		request.SourceLanguage,
		request.TargetLanguage,
		request.Options.Tone,
		request.Options.Style,
		request.Options.PreserveFormatting,
		request.TokensUsed,
	)

	err := utils.ScanStructByDBTags(row, &translation)
	if err != nil {
		return translation, err
	}

	return translation, nil
}
