package updatecheck

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestChecker_CheckNow(t *testing.T) {
	logger := zaptest.NewLogger(t)

	checker := New(logger, "v1.0.0")

	// Mock check function to avoid hitting GitHub
	mockRelease := &GitHubRelease{
		TagName:    "v1.1.0",
		HTMLURL:    "https://github.com/readmaster/readmaster-desktop/releases/tag/v1.1.0",
		Prerelease: false,
	}
	checker.SetCheckFunc(func() (*GitHubRelease, error) {
		return mockRelease, nil
	})

	info := checker.CheckNow()

	if info == nil {
		t.Fatal("CheckNow returned nil")
		return // unreachable but satisfies staticcheck SA5011
	}

	if info.CurrentVersion != "v1.0.0" {
		t.Errorf("CurrentVersion = %q, want %q", info.CurrentVersion, "v1.0.0")
	}

	if info.LatestVersion != "v1.1.0" {
		t.Errorf("LatestVersion = %q, want %q", info.LatestVersion, "v1.1.0")
	}

	if !info.UpdateAvailable {
		t.Error("UpdateAvailable = false, want true")
	}

	if info.CheckError != "" {
		t.Errorf("CheckError = %q, want empty", info.CheckError)
	}
}

func TestChecker_CheckNow_NoUpdate(t *testing.T) {
	logger := zaptest.NewLogger(t)

	checker := New(logger, "v1.1.0")

	mockRelease := &GitHubRelease{
		TagName:    "v1.1.0",
		HTMLURL:    "https://github.com/readmaster/readmaster-desktop/releases/tag/v1.1.0",
		Prerelease: false,
	}
	checker.SetCheckFunc(func() (*GitHubRelease, error) {
		return mockRelease, nil
	})

	info := checker.CheckNow()

	if info == nil {
		t.Fatal("CheckNow returned nil")
		return // unreachable but satisfies staticcheck SA5011
	}

	if info.UpdateAvailable {
		t.Error("UpdateAvailable = true, want false (same version)")
	}
}

func TestChecker_CheckNow_Unreachable(t *testing.T) {
	logger := zaptest.NewLogger(t)

	checker := New(logger, "v1.0.0")
	checker.SetCheckFunc(func() (*GitHubRelease, error) {
		return nil, fmt.Errorf("dial tcp: no route to host")
	})

	info := checker.CheckNow()

	if info.CheckError == "" {
		t.Error("CheckError is empty, want the transport error")
	}
	if info.UpdateAvailable {
		t.Error("UpdateAvailable = true after a failed check")
	}
}

func TestChecker_CompareVersions(t *testing.T) {
	logger := zap.NewNop()
	checker := New(logger, "v1.0.0")

	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"v1.0.0", "v1.1.0", true},
		{"v1.1.0", "v1.0.0", false},
		{"v1.0.0", "v1.0.0", false},
		{"1.0.0", "1.1.0", true}, // Without v prefix
		{"v0.3.1", "v0.3.3", true},
		{"v0.3.2", "v0.3.2", false},
	}

	for _, tc := range tests {
		t.Run(tc.current+"_vs_"+tc.latest, func(t *testing.T) {
			got := checker.compareVersions(tc.current, tc.latest)
			if got != tc.want {
				t.Errorf("compareVersions(%q, %q) = %v, want %v", tc.current, tc.latest, got, tc.want)
			}
		})
	}
}

func TestChecker_IsValidSemver(t *testing.T) {
	logger := zap.NewNop()

	for version, want := range map[string]bool{
		"v1.0.0":      true,
		"1.2.3":       true,
		"dev":         false,
		"development": false,
		"":            false,
	} {
		checker := New(logger, version)
		if got := checker.isValidSemver(); got != want {
			t.Errorf("isValidSemver(%q) = %v, want %v", version, got, want)
		}
	}
}
