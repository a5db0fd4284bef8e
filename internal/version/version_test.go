package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(Version, "\x1b") {
		t.Error("Version must be plain text")
	}
}

func TestBanner(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version, GitCommit, BuildDate = "1.2.3-rc.1", "", ""
	if got := Banner(false); got != "rolint 1.2.3-rc.1" {
		t.Errorf("Banner = %q", got)
	}
	GitCommit, BuildDate = "abc123", "2026-01-15"
	if got := Banner(false); got != "rolint 1.2.3-rc.1 (abc123, 2026-01-15)" {
		t.Errorf("Banner = %q", got)
	}
}

func TestColored(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = origVersion, origNoColor }()

	Version = "2.0.1-dev"
	color.NoColor = true
	if got := Colored(); got != "2.0.1-dev" {
		t.Errorf("Colored without color = %q", got)
	}
	color.NoColor = false
	got := Colored()
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Errorf("Colored = %q", got)
	}

	Version = "weird"
	if Colored() != "weird" {
		t.Error("non-semver version must pass through")
	}
}
