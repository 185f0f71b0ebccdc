package AIService

import (
	"fmt"
	"strings"

	"github.com/okanay/backend-translate-lingua/types"
)

// Clause tables keep instruction construction deterministic, identical
// inputs always produce byte-identical instructions.

var toneClauses = map[types.TranslationTone]string{
	types.ToneFormal:       "Use a formal register appropriate for official or academic writing.",
	types.ToneInformal:     "Use an informal, friendly register as between acquaintances.",
	types.ToneCasual:       "Use a casual, conversational register with everyday vocabulary.",
	types.ToneProfessional: "Use a professional business register suitable for workplace communication.",
}

var styleClauses = map[types.TranslationStyle]string{
	types.StyleSimplified: "Prefer short sentences and common vocabulary, simplify complex constructions without losing meaning.",
	types.StyleDetailed:   "Render nuance and connotation fully, expand where the target language needs it for clarity.",
}

// Register hints for languages where the default register is a real
// decision, keyed by ISO 639-1 target code. Absent entries contribute
// nothing.
var languageHints = map[string]string{
	"es": "For Spanish, default to the usted form unless the text is clearly informal.",
	"fr": "For French, default to vous unless the text is clearly informal.",
	"de": "For German, default to Sie unless the text is clearly informal.",
	"ja": "For Japanese, use the polite desu/masu style unless the text is clearly casual.",
	"zh": "For Chinese, use standard written Mandarin and the polite 您 where the register calls for it.",
}

var languageNames = map[string]string{
	"ar": "Arabic",
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nl": "Dutch",
	"pl": "Polish",
	"pt": "Portuguese",
	"ru": "Russian",
	"tr": "Turkish",
	"zh": "Chinese",
}

// languageName resolves a display name for the prompt, falling back to the
// raw code for languages outside the table.
func languageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// buildSystemInstruction assembles the translation directive from the
// clause tables. Order is fixed: base, tone, style, formatting, register
// hint.
func buildSystemInstruction(sourceLang, targetLang string, options types.TranslationOptions) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"You are a professional %s-to-%s translator. Translate the user's text from %s to %s, preserving the original meaning and context.",
		languageName(sourceLang), languageName(targetLang),
		languageName(sourceLang), languageName(targetLang),
	)

	if clause, ok := toneClauses[options.Tone]; ok {
		b.WriteString(" ")
		b.WriteString(clause)
	} else {
		b.WriteString(" Use a neutral register.")
	}

	if clause, ok := styleClauses[options.Style]; ok {
		b.WriteString(" ")
		b.WriteString(clause)
	}

	if options.PreserveFormatting {
		b.WriteString(" Preserve the original formatting exactly: line breaks, lists, indentation and punctuation layout.")
	}

	if hint, ok := languageHints[strings.ToLower(targetLang)]; ok {
		b.WriteString(" ")
		b.WriteString(hint)
	}

	b.WriteString(" Return only the translated text, without commentary or code blocks.")

	return b.String()
}

// modelParams are the completion parameters derived from the style option.
type modelParams struct {
	Temperature float32
	MaxTokens   int
}

var styleParams = map[types.TranslationStyle]modelParams{
	types.StyleDetailed:   {Temperature: 0.7, MaxTokens: 4096},
	types.StyleSimplified: {Temperature: 0.2, MaxTokens: 1024},
}

var defaultParams = modelParams{Temperature: 0.4, MaxTokens: 2048}

// paramsForStyle is a pure function of the style option.
func paramsForStyle(style types.TranslationStyle) modelParams {
	if params, ok := styleParams[style]; ok {
		return params
	}
	return defaultParams
}
