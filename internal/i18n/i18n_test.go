package i18n

import "testing"

func TestLoad(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, locale := range []string{"en", "vi"} {
		if _, ok := b.messages[locale]; !ok {
			t.Errorf("locale %q not loaded", locale)
		}
	}
}

func TestTranslate(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	en := b.T("en", "time_conflict")
	vi := b.T("vi", "time_conflict")

	if en == "time_conflict" {
		t.Error("en table missing time_conflict")
	}
	if vi == "time_conflict" {
		t.Error("vi table missing time_conflict")
	}
	if en == vi {
		t.Errorf("expected distinct translations, both %q", en)
	}
}

func TestTranslateFallback(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Unknown locale falls back to English.
	if got := b.T("fr", "time_conflict"); got != b.T("en", "time_conflict") {
		t.Errorf("fr fallback = %q", got)
	}

	// Unknown key falls back to the key itself.
	if got := b.T("en", "no_such_key"); got != "no_such_key" {
		t.Errorf("missing key = %q, want the key back", got)
	}
}
