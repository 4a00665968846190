package github

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wtsdev/wts/internal/cmd"
)

// PRStatus classifies a branch's most recent pull request.
type PRStatus string

const (
	// PRStatusOpen means a PR exists and is still open.
	PRStatusOpen PRStatus = "open"
	// PRStatusClosed means the most recent PR was closed without merging.
	PRStatusClosed PRStatus = "closed"
	// PRStatusMerged means the most recent PR was merged.
	PRStatusMerged PRStatus = "merged"
	// PRStatusNone means no PR exists for the branch.
	PRStatusNone PRStatus = "none"
)

// DefaultTimeout bounds each gh invocation. Hitting it kills the process
// and surfaces a timeout error instead of hanging the cleanup pass.
const DefaultTimeout = 30 * time.Second

// PullRequestStatus queries gh for the state of the most recent PR whose
// head is branch. Lookups run with DefaultTimeout.
func PullRequestStatus(ctx context.Context, repoPath, branch string) (PRStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	out, err := cmd.OutputContext(ctx, repoPath, "gh", "pr", "list",
		"--head", branch,
		"--state", "all",
		"--json", "state",
		"--limit", "1")
	if err != nil {
		return PRStatusNone, fmt.Errorf("gh pr list failed for %s: %w", branch, err)
	}

	return parsePRState(out)
}

// parsePRState maps gh's JSON state values onto the PRStatus variants.
func parsePRState(out []byte) (PRStatus, error) {
	var prs []struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(out, &prs); err != nil {
		return PRStatusNone, fmt.Errorf("failed to parse gh output: %w", err)
	}

	if len(prs) == 0 {
		return PRStatusNone, nil
	}

	switch prs[0].State {
	case "OPEN":
		return PRStatusOpen, nil
	case "CLOSED":
		return PRStatusClosed, nil
	case "MERGED":
		return PRStatusMerged, nil
	default:
		return PRStatusNone, fmt.Errorf("unknown PR state %q", prs[0].State)
	}
}
