package cleanup

import (
	"context"
	"fmt"

	"github.com/wtsdev/wts/internal/git"
	"github.com/wtsdev/wts/internal/github"
	"github.com/wtsdev/wts/internal/log"
)

// Candidate pairs a worktree with its resolved branch status.
type Candidate struct {
	Worktree git.Worktree
	Status   git.BranchStatus
}

// Skip records a candidate that was excluded along with the reason
// shown to the user.
type Skip struct {
	Candidate Candidate
	Reason    string
}

// Result is the outcome of a filter pass. Selected preserves the input
// candidate order.
type Result struct {
	Selected []Candidate
	Skipped  []Skip
}

// Pipeline filters cleanup candidates for one mode. The function fields
// default to the real gh-backed implementations and exist so tests can
// substitute them.
type Pipeline struct {
	RepoPath string
	Mode     Mode
	Force    bool

	// CheckCLI reports whether the GitHub CLI is installed and
	// authenticated. Used by ModeGitHub only.
	CheckCLI func() error

	// PRStatus looks up the state of a branch's most recent pull request.
	PRStatus func(ctx context.Context, repoPath, branch string) (github.PRStatus, error)

	// Pick returns the user-selected subset of candidates. Must be set
	// by the caller for ModeInteractive.
	Pick func(ctx context.Context, candidates []Candidate) ([]Candidate, error)
}

// NewPipeline creates a pipeline wired to the gh CLI.
func NewPipeline(repoPath string, mode Mode, force bool) *Pipeline {
	return &Pipeline{
		RepoPath: repoPath,
		Mode:     mode,
		Force:    force,
		CheckCLI: github.CheckCLI,
		PRStatus: github.PullRequestStatus,
	}
}

// Filter narrows candidates to the removable subset for the pipeline's
// mode. Candidate order is preserved; filtering removes, never reorders.
func (p *Pipeline) Filter(ctx context.Context, candidates []Candidate) (*Result, error) {
	switch p.Mode {
	case ModeAll, ModeRemoteless, ModeMerged:
		return p.filterByStatus(candidates), nil
	case ModeGitHub:
		return p.filterByPR(ctx, candidates)
	case ModeInteractive:
		return p.filterInteractive(ctx, candidates)
	default:
		return nil, fmt.Errorf("unknown cleanup mode %q", p.Mode)
	}
}

func (p *Pipeline) filterByStatus(candidates []Candidate) *Result {
	res := &Result{}
	for _, c := range candidates {
		if skip, reason := p.gate(c); skip {
			res.Skipped = append(res.Skipped, Skip{Candidate: c, Reason: reason})
			continue
		}

		switch p.Mode {
		case ModeRemoteless:
			if c.Status.HasRemote {
				res.Skipped = append(res.Skipped, Skip{Candidate: c, Reason: "has a remote branch"})
				continue
			}
		case ModeMerged:
			if !c.Status.IsMerged && !c.Status.IsIdentical {
				res.Skipped = append(res.Skipped, Skip{Candidate: c, Reason: "not merged into the default branch"})
				continue
			}
		}

		res.Selected = append(res.Selected, c)
	}
	return res
}

func (p *Pipeline) filterByPR(ctx context.Context, candidates []Candidate) (*Result, error) {
	if err := p.CheckCLI(); err != nil {
		return &Result{}, err
	}

	logger := log.FromContext(ctx)
	res := &Result{}

	// PR lookups run one branch at a time; a failed lookup skips that
	// branch and the pass continues.
	for _, c := range candidates {
		if skip, reason := p.gate(c); skip {
			res.Skipped = append(res.Skipped, Skip{Candidate: c, Reason: reason})
			continue
		}

		status, err := p.PRStatus(ctx, p.RepoPath, c.Worktree.Branch)
		if err != nil {
			logger.Warnf("skipping %s: %v\n", c.Worktree.Branch, err)
			res.Skipped = append(res.Skipped, Skip{Candidate: c, Reason: "PR lookup failed"})
			continue
		}

		switch status {
		case github.PRStatusMerged, github.PRStatusClosed:
			res.Selected = append(res.Selected, c)
		case github.PRStatusOpen:
			res.Skipped = append(res.Skipped, Skip{Candidate: c, Reason: "PR is still open"})
		case github.PRStatusNone:
			res.Skipped = append(res.Skipped, Skip{Candidate: c, Reason: "no PR found"})
		}
	}
	return res, nil
}

func (p *Pipeline) filterInteractive(ctx context.Context, candidates []Candidate) (*Result, error) {
	if p.Pick == nil {
		return nil, fmt.Errorf("interactive mode requires a picker")
	}
	// The user is the filter here: every worktree is offered, nothing is
	// excluded by merge or remote state.
	selected, err := p.Pick(ctx, candidates)
	if err != nil {
		return nil, err
	}
	return &Result{Selected: selected}, nil
}

// gate applies the uncommitted/unpushed safety check. Force bypasses it
// entirely. Remoteless and merged modes additionally require no unpushed
// commits.
func (p *Pipeline) gate(c Candidate) (bool, string) {
	if p.Force {
		return false, ""
	}
	if c.Status.HasUncommittedChanges {
		return true, "has uncommitted changes"
	}
	if (p.Mode == ModeRemoteless || p.Mode == ModeMerged) && c.Status.HasUnpushedCommits {
		return true, "has unpushed commits"
	}
	return false, ""
}
