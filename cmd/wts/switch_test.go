package main

import (
	"path/filepath"
	"testing"

	"github.com/wtsdev/wts/internal/config"
)

func TestJoinInit(t *testing.T) {
	tests := []struct {
		name        string
		sessionInit string
		afterInit   string
		want        string
	}{
		{"both", "nvm use", "npm install", "nvm use; npm install"},
		{"session only", "nvm use", "", "nvm use"},
		{"after only", "", "npm install", "npm install"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinInit(tt.sessionInit, tt.afterInit); got != tt.want {
				t.Errorf("joinInit(%q, %q) = %q, want %q", tt.sessionInit, tt.afterInit, got, tt.want)
			}
		})
	}
}

func TestSwitchTargetPath(t *testing.T) {
	cfg := config.Default()
	cfg.WorktreeFormat = "../{repo}-{branch}"

	got, err := switchTargetPath("/home/user/repos/myrepo", "myrepo", switchOptions{
		branch: "feature",
		cfg:    &cfg,
	})
	if err != nil {
		t.Fatalf("switchTargetPath: %v", err)
	}
	if got != "/home/user/repos/myrepo-feature" {
		t.Errorf("switchTargetPath = %q", got)
	}
}

func TestSwitchTargetPathExplicitDir(t *testing.T) {
	cfg := config.Default()

	got, err := switchTargetPath("/home/user/repos/myrepo", "myrepo", switchOptions{
		branch: "feature",
		dir:    "/tmp/custom",
		cfg:    &cfg,
	})
	if err != nil {
		t.Fatalf("switchTargetPath: %v", err)
	}
	if got != filepath.Clean("/tmp/custom") {
		t.Errorf("switchTargetPath = %q, want /tmp/custom", got)
	}
}

func TestListFlags(t *testing.T) {
	tests := []struct {
		name  string
		entry listEntry
		want  string
	}{
		{"clean with remote", listEntry{HasRemote: true}, ""},
		{"merged", listEntry{Merged: true, HasRemote: true}, "  [merged]"},
		{"everything", listEntry{Merged: true, Dirty: true, Unpushed: true}, "  [merged, no remote, dirty, unpushed]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listFlags(tt.entry); got != tt.want {
				t.Errorf("listFlags = %q, want %q", got, tt.want)
			}
		})
	}
}
