package i18n

import "testing"

func TestLoad_English(t *testing.T) {
	if err := Load("en"); err != nil {
		t.Fatalf("Load(en): %v", err)
	}
	if got := Get("OBJECTIVE_FIND_KEY"); got != "Find the key" {
		t.Errorf("OBJECTIVE_FIND_KEY = %q", got)
	}
	if got := Getf("LEVEL_NUMBER", 3); got != "Level 3" {
		t.Errorf("LEVEL_NUMBER(3) = %q", got)
	}
}

func TestLoad_German(t *testing.T) {
	if err := Load("de"); err != nil {
		t.Fatalf("Load(de): %v", err)
	}
	t.Cleanup(func() { Load(DefaultLanguage) })
	if got := Get("OBJECTIVE_FIND_EXIT"); got != "Finde den Ausgang" {
		t.Errorf("OBJECTIVE_FIND_EXIT = %q", got)
	}
}

func TestLoad_FallsBack(t *testing.T) {
	if err := Load("xx"); err != nil {
		t.Fatalf("Load(xx): %v", err)
	}
	if got := Get("OBJECTIVE_FIND_EXIT"); got != "Find the Way Out" {
		t.Errorf("fallback OBJECTIVE_FIND_EXIT = %q", got)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	Load("en")
	if got := Get("NO_SUCH_KEY"); got != "NO_SUCH_KEY" {
		t.Errorf("unknown key = %q, want it unchanged", got)
	}
}

func TestGetf_FormatsUntranslatedKey(t *testing.T) {
	saved := lookup
	lookup = nil
	t.Cleanup(func() { lookup = saved })

	if got := Getf("level %d", 4); got != "level 4" {
		t.Errorf("Getf without catalog = %q, want %q", got, "level 4")
	}
	if got := Get("LEVEL_NUMBER"); got != "LEVEL_NUMBER" {
		t.Errorf("Get without catalog = %q, want the key", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	found := map[string]bool{}
	for _, l := range langs {
		found[l] = true
	}
	if !found["en"] || !found["de"] {
		t.Errorf("Languages() = %v, want en and de", langs)
	}
}
