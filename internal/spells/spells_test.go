package spells

import (
	"strings"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"flash", "점멸"},
		{" Flash ", "점멸"},
		{"FLASH", "점멸"},
		{"점멸", "점멸"},
		{"snowball", "표식"},
		{"눈덩이", "표식"},
		{"haste", "유체화"},
		{"Ghost", "유체화"},
		{"teleport", "순간이동"},
		{"Smite", "Smite"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Canonical(tt.raw); got != tt.want {
				t.Fatalf("Canonical(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIconURLFlash(t *testing.T) {
	got := IconURL("flash", "15.16.1")
	want := "https://ddragon.leagueoflegends.com/cdn/15.16.1/img/spell/SummonerFlash.png"
	if got != want {
		t.Fatalf("IconURL(flash) = %q, want %q", got, want)
	}
}

func TestIconURLDefaultsVersion(t *testing.T) {
	got := IconURL("점화", "")
	if !strings.Contains(got, DefaultDDragonVersion) || !strings.HasSuffix(got, "/SummonerDot.png") {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestIconURLUnknown(t *testing.T) {
	if got := IconURL("Smite", "15.16.1"); got != "" {
		t.Fatalf("expected empty url for unknown spell, got %q", got)
	}
}

func TestIconURLVersion(t *testing.T) {
	if got := IconURL("heal", "14.1.1"); !strings.Contains(got, "/14.1.1/") || !strings.Contains(got, "SummonerHeal") {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestEveryCanonicalNameHasKey(t *testing.T) {
	for _, name := range Names() {
		if _, ok := Key(name); !ok {
			t.Fatalf("canonical name %q has no Data Dragon key", name)
		}
		if Canonical(name) != name {
			t.Fatalf("canonical name %q is not a fixed point", name)
		}
	}
}
