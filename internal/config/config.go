// Package config reads the user's wts configuration from
// ~/.config/wts/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wtsdev/wts/internal/terminal"
	"github.com/wtsdev/wts/internal/worktree"
)

// Hooks holds the shell snippets run around worktree creation.
type Hooks struct {
	// PreCreate runs in the repository root before the worktree is made.
	PreCreate string `toml:"pre_create"`
	// PostCreate runs in the new worktree and is waited on.
	PostCreate string `toml:"post_create"`
	// PostCreateAsync runs in the new worktree without being waited on.
	PostCreateAsync string `toml:"post_create_async"`
}

// Config holds the wts configuration.
type Config struct {
	// WorktreeFormat is the path template for new worktrees. See
	// worktree.ResolvePath for the supported placeholders.
	WorktreeFormat string `toml:"worktree_format"`
	// Terminal is the default terminal mode for opening worktrees.
	Terminal string `toml:"terminal"`
	// SessionInit is a shell snippet run at the start of every opened
	// worktree session.
	SessionInit string `toml:"session_init"`
	Hooks       Hooks  `toml:"hooks"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		WorktreeFormat: worktree.DefaultFormat,
		Terminal:       string(terminal.ModeTab),
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wts", "config.toml"), nil
}

// Load reads config from ~/.config/wts/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a config file at an explicit path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.WorktreeFormat == "" {
		cfg.WorktreeFormat = worktree.DefaultFormat
	}
	if cfg.Terminal == "" {
		cfg.Terminal = string(terminal.ModeTab)
	}
	if _, err := terminal.ParseMode(cfg.Terminal); err != nil {
		return Default(), fmt.Errorf("invalid terminal setting: %w", err)
	}

	return cfg, nil
}

const defaultConfig = `# wts configuration

# Path template for new worktrees.
# Placeholders:
#   {repo}    - repo name from the origin URL (folder name if no origin)
#   {branch}  - branch name, slashes replaced with dashes
# Environment variables are expanded; ~/ and relative paths work too.
# Examples:
#   "../{repo}-{branch}"          - sibling to the repo (default)
#   "~/worktrees/{repo}-{branch}" - centralized folder
#   "{branch}"                    - nested inside the repo
worktree_format = "../{repo}-{branch}"

# Default terminal mode: tab, window, inplace, echo, vscode, cursor
terminal = "tab"

# Shell snippet run at the start of every opened worktree session
# session_init = "nvm use && npm install"

# Hooks - run around worktree creation
# Placeholders: {path}, {branch}, {repo}
[hooks]
# pre_create = "echo 'creating worktree for {branch}'"
# post_create = "cp .env {path}/.env"
# post_create_async = "code {path}"
`

// Init creates a default config file at ~/.config/wts/config.toml.
// If force is true, an existing file is overwritten.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
