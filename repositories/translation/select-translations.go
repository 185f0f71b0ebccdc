package TranslationRepository

import (
	"fmt"
	"strings"
	"time"

	"github.com/okanay/backend-translate-lingua/configs"
	"github.com/okanay/backend-translate-lingua/types"
	"github.com/okanay/backend-translate-lingua/utils"
)

func (r *Repository) SelectTranslations(options types.TranslationQueryOptions) (types.TranslationListResponse, error) {
	defer utils.TimeTrack(time.Now(), "Translation -> Select Translations")

	response := types.TranslationListResponse{
		Translations: []types.Translation{},
	}

	var conditions []string
	var params []any
	paramCounter := 1

	// Listing is always owner scoped
	conditions = append(conditions, fmt.Sprintf("user_id = $%d", paramCounter))
	params = append(params, options.UserID)
	paramCounter++

	// Favorite filter
	if options.OnlyFavorites {
		conditions = append(conditions, "is_favorite = TRUE")
	}

	// Target language filter
	if options.TargetLanguage != "" {
		conditions = append(conditions, fmt.Sprintf("target_language = $%d", paramCounter))
		params = append(params, options.TargetLanguage)
		paramCounter++
	}

	// Free text search over source and translated text
	if options.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(source_text ILIKE $%d OR translated_text ILIKE $%d)", paramCounter, paramCounter))
		params = append(params, "%"+options.Search+"%")
		paramCounter++
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	// Total count for pagination metadata
	countQuery := "SELECT COUNT(*) FROM translations " + whereClause
	if err := r.db.QueryRow(countQuery, params...).Scan(&response.Total); err != nil {
		return response, fmt.Errorf("count translations: %w", err)
	}

	// Normalize pagination values
	page := options.Page
	if page < 1 {
		page = 1
	}
	limit := options.Limit
	if limit < 1 {
		limit = configs.DEFAULT_PAGE_SIZE
	}
	if limit > configs.MAX_PAGE_SIZE {
		limit = configs.MAX_PAGE_SIZE
	}

	query := fmt.Sprintf(`
		SELECT * FROM translations
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, paramCounter, paramCounter+1)

	params = append(params, limit, (page-1)*limit)

	rows, err := r.db.Query(query, params...)
	if err != nil {
		return response, fmt.Errorf("select translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var translation types.Translation
		if err := utils.ScanStructByDBTags(rows, &translation); err != nil {
			return response, fmt.Errorf("scan translation: %w", err)
		}
		response.Translations = append(response.Translations, translation)
	}
	if err := rows.Err(); err != nil {
		return response, err
	}

	response.Page = page
	response.Limit = limit
	response.TotalPages = (response.Total + limit - 1) / limit

	return response, nil
}
