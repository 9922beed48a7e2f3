package services

import (
	"context"
	"errors"
	"testing"

	"clutchzone/internal/models"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettingsService(context.Background(), nil, nil)

	all := s.GetAll()
	if got := all[models.SettingsContact]["whatsapp"]; got != "01500978111" {
		t.Errorf("contact.whatsapp = %q; want 01500978111", got)
	}
	if got := all[models.SettingsTheme]["primaryColor"]; got == "" {
		t.Errorf("theme.primaryColor missing from defaults")
	}
}

func TestSettingsUpdateCategoryPartial(t *testing.T) {
	s := NewSettingsService(context.Background(), nil, nil)
	before := s.GetAll()[models.SettingsContact]

	updated, err := s.UpdateCategory(context.Background(), models.SettingsContact, map[string]string{
		"phone": "01000000000",
	})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if updated["phone"] != "01000000000" {
		t.Errorf("phone = %q; want 01000000000", updated["phone"])
	}
	// Untouched keys in the same category survive a partial update.
	if updated["whatsapp"] != before["whatsapp"] {
		t.Errorf("whatsapp changed: %q -> %q", before["whatsapp"], updated["whatsapp"])
	}

	// Other categories are untouched.
	all := s.GetAll()
	if all[models.SettingsTheme]["primaryColor"] == "" {
		t.Errorf("theme category affected by contact update")
	}
}

func TestSettingsUpdateCategoryUnknown(t *testing.T) {
	s := NewSettingsService(context.Background(), nil, nil)

	if _, err := s.UpdateCategory(context.Background(), "unknown", map[string]string{"a": "b"}); !errors.Is(err, models.ErrSettingsCategoryNotFound) {
		t.Errorf("err = %v; want ErrSettingsCategoryNotFound", err)
	}
	if _, err := s.UpdateKey(context.Background(), "nope", "k", "v"); !errors.Is(err, models.ErrSettingsCategoryNotFound) {
		t.Errorf("err = %v; want ErrSettingsCategoryNotFound", err)
	}
}

func TestSettingsUpdateKey(t *testing.T) {
	s := NewSettingsService(context.Background(), nil, nil)

	updated, err := s.UpdateKey(context.Background(), models.SettingsSocialMedia, "tiktok", "https://tiktok.com/@clutchzone")
	if err != nil {
		t.Fatalf("UpdateKey: %v", err)
	}
	if updated["tiktok"] != "https://tiktok.com/@clutchzone" {
		t.Errorf("tiktok = %q", updated["tiktok"])
	}
}

func TestSettingsGetAllReturnsCopy(t *testing.T) {
	s := NewSettingsService(context.Background(), nil, nil)

	all := s.GetAll()
	all[models.SettingsContact]["phone"] = "tampered"

	if got := s.GetAll()[models.SettingsContact]["phone"]; got == "tampered" {
		t.Errorf("GetAll leaked internal map")
	}
}
