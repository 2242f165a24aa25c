package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseTranslationWithMarkers(t *testing.T) {
	translation, pronunciation := parseTranslation("TRANSLATION: Bonjour le monde\nPRONUNCIATION: bon-ZHOOR luh mond")

	if translation != "Bonjour le monde" {
		t.Errorf("Wrong translation: %q", translation)
	}
	if pronunciation != "bon-ZHOOR luh mond" {
		t.Errorf("Wrong pronunciation: %q", pronunciation)
	}
}

func TestParseTranslationMarkersCaseInsensitive(t *testing.T) {
	translation, pronunciation := parseTranslation("translation: Hola\npronunciation: OH-lah")

	if translation != "Hola" {
		t.Errorf("Wrong translation: %q", translation)
	}
	if pronunciation != "OH-lah" {
		t.Errorf("Wrong pronunciation: %q", pronunciation)
	}
}

func TestParseTranslationWithoutMarkers(t *testing.T) {
	translation, pronunciation := parseTranslation("Guten Tag\ngooten tahk")

	if translation != "Guten Tag" {
		t.Errorf("First line should be the translation: %q", translation)
	}
	if pronunciation != "gooten tahk" {
		t.Errorf("Second line should be the pronunciation: %q", pronunciation)
	}
}

func TestParseTranslationSingleLine(t *testing.T) {
	translation, pronunciation := parseTranslation("Ciao")

	if translation != "Ciao" {
		t.Errorf("Wrong translation: %q", translation)
	}
	if pronunciation != "" {
		t.Errorf("No pronunciation expected, got: %q", pronunciation)
	}
}

func TestParseTranslationEmpty(t *testing.T) {
	translation, pronunciation := parseTranslation("   ")
	if translation != "" || pronunciation != "" {
		t.Errorf("Blank input should yield nothing, got %q / %q", translation, pronunciation)
	}
}

func TestCleanPronunciationStripsPrefixes(t *testing.T) {
	if got := cleanPronunciation("Pronounced: oh-LAH"); got != "oh-LAH" {
		t.Errorf("Prefix should be stripped, got: %q", got)
	}
	if got := cleanPronunciation("sounds like: nee-HOW"); got != "nee-HOW" {
		t.Errorf("Prefix should be stripped, got: %q", got)
	}
}

func TestTranslateUsesModel(t *testing.T) {
	model := &stubResponder{reply: "TRANSLATION: Bonjour\nPRONUNCIATION: bon-ZHOOR"}
	svc := NewTranslatorService(model, time.Second)

	result, err := svc.Translate(context.Background(), "Hello", "en", "fr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Text != "Bonjour" {
		t.Errorf("Wrong translation: %q", result.Text)
	}
	if result.Pronunciation != "bon-ZHOOR" {
		t.Errorf("Wrong pronunciation: %q", result.Pronunciation)
	}
}

func TestTranslateFallsBackWhenModelEchoes(t *testing.T) {
	libre := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Bad form: %v", err)
		}
		if r.PostForm.Get("q") != "Hello" {
			t.Errorf("Wrong text: %q", r.PostForm.Get("q"))
		}
		if r.PostForm.Get("target") != "es" {
			t.Errorf("Wrong target: %q", r.PostForm.Get("target"))
		}
		fmt.Fprint(w, `{"translatedText": "Hola"}`)
	}))
	defer libre.Close()

	// Model echoes the input, which counts as a failure.
	svc := NewTranslatorService(&stubResponder{reply: "TRANSLATION: Hello"}, time.Second)
	svc.LibreURL = libre.URL

	result, err := svc.Translate(context.Background(), "Hello", "en", "es")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Text != "Hola" {
		t.Errorf("Expected fallback translation, got: %q", result.Text)
	}
}

func TestTranslateWithoutModel(t *testing.T) {
	libre := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"translatedText": "Hallo"}`)
	}))
	defer libre.Close()

	svc := NewTranslatorService(nil, time.Second)
	svc.LibreURL = libre.URL

	result, err := svc.Translate(context.Background(), "Hello", "en", "de")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Text != "Hallo" {
		t.Errorf("Wrong translation: %q", result.Text)
	}
}

func TestTranslateRequiresText(t *testing.T) {
	svc := NewTranslatorService(nil, time.Second)

	if _, err := svc.Translate(context.Background(), "  ", "en", "fr"); err == nil {
		t.Error("Expected error for empty text")
	}
}

func TestLanguageName(t *testing.T) {
	if got := languageName("fr"); got != "French" {
		t.Errorf("languageName(fr) = %q", got)
	}
	if got := languageName("xx"); got != "xx" {
		t.Errorf("Unknown code should pass through, got %q", got)
	}
}
