package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tejashreee29/travellai/internal/models"
)

// Languages offered by the translator.
var Languages = []struct {
	Code string `json:"code"`
	Name string `json:"name"`
}{
	{"en", "English"}, {"es", "Spanish"}, {"fr", "French"}, {"de", "German"},
	{"it", "Italian"}, {"pt", "Portuguese"}, {"ru", "Russian"}, {"ja", "Japanese"},
	{"ko", "Korean"}, {"zh", "Chinese"}, {"ar", "Arabic"}, {"hi", "Hindi"},
}

const translatePrompt = `Translate the following text from %s to %s.

Provide your response in this exact format:
TRANSLATION: [the translation in %s]
PRONUNCIATION: [how to pronounce it in English using Latin alphabet]

Text to translate: %s`

var reTranslateMarkers = regexp.MustCompile(`(?i)(TRANSLATION:|PRONUNCIATION:)`)

// TranslatorService translates text via the model, falling back to the
// LibreTranslate HTTP API.
type TranslatorService struct {
	model   Responder
	client  *http.Client
	timeout time.Duration

	// Overridable for tests.
	LibreURL string
}

func NewTranslatorService(model Responder, timeout time.Duration) *TranslatorService {
	return &TranslatorService{
		model:    model,
		client:   &http.Client{Timeout: 10 * time.Second},
		timeout:  timeout,
		LibreURL: "https://libretranslate.de/translate",
	}
}

func (s *TranslatorService) Translate(ctx context.Context, text, fromLang, toLang string) (*models.Translation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	if s.model != nil {
		genCtx, cancel := context.WithTimeout(ctx, s.timeout)
		result, err := s.fromModel(genCtx, text, fromLang, toLang)
		cancel()
		if err == nil {
			return result, nil
		}
		slog.Warn("Model translation failed, using LibreTranslate", "error", err)
	}

	return s.fromLibreTranslate(ctx, text, fromLang, toLang)
}

func (s *TranslatorService) fromModel(ctx context.Context, text, fromLang, toLang string) (*models.Translation, error) {
	prompt := fmt.Sprintf(translatePrompt, languageName(fromLang), languageName(toLang), languageName(toLang), text)
	raw, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	translation, pronunciation := parseTranslation(raw)
	if translation == "" {
		return nil, fmt.Errorf("model returned no translation")
	}
	// Same text back usually means the model refused or failed.
	if strings.EqualFold(translation, text) {
		return nil, fmt.Errorf("model echoed the input")
	}

	return &models.Translation{Text: translation, Pronunciation: pronunciation}, nil
}

// parseTranslation extracts the TRANSLATION/PRONUNCIATION sections. Without
// markers the first line is taken as the translation and the second, if any,
// as the pronunciation.
func parseTranslation(raw string) (translation, pronunciation string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	if reTranslateMarkers.MatchString(raw) {
		parts := reTranslateMarkers.Split(raw, -1)
		markers := reTranslateMarkers.FindAllString(raw, -1)

		section := ""
		var translationParts, pronunciationParts []string
		// Split yields a leading segment before the first marker; skip it.
		for i, marker := range markers {
			section = strings.ToUpper(strings.TrimSuffix(marker, ":"))
			body := strings.TrimSpace(parts[i+1])
			if body == "" {
				continue
			}
			switch section {
			case "TRANSLATION":
				translationParts = append(translationParts, body)
			case "PRONUNCIATION":
				pronunciationParts = append(pronunciationParts, body)
			}
		}
		return strings.Join(translationParts, " "), cleanPronunciation(strings.Join(pronunciationParts, " "))
	}

	lines := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return "", ""
	}
	translation = lines[0]
	if len(lines) > 1 {
		pronunciation = cleanPronunciation(lines[1])
	}
	return translation, pronunciation
}

func cleanPronunciation(p string) string {
	p = strings.TrimSpace(p)
	for _, prefix := range []string{"pronunciation:", "pronounced:", "sounds like:", "read as:"} {
		if strings.HasPrefix(strings.ToLower(p), prefix) {
			p = strings.TrimSpace(p[len(prefix):])
		}
	}
	return p
}

func (s *TranslatorService) fromLibreTranslate(ctx context.Context, text, fromLang, toLang string) (*models.Translation, error) {
	form := url.Values{}
	form.Set("q", text)
	form.Set("source", fromLang)
	form.Set("target", toLang)
	form.Set("format", "text")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.LibreURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation service status %d", resp.StatusCode)
	}

	var data struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode translation: %w", err)
	}
	if data.TranslatedText == "" {
		return nil, fmt.Errorf("translation service returned no text")
	}

	return &models.Translation{Text: data.TranslatedText}, nil
}

func languageName(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}
