package git

import (
	"context"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// BranchStatus is a read-only snapshot of one worktree's branch at one
// point in time. A zero value means "unknown": resolution errors never
// make a branch look merged, remote-tracked, or otherwise eligible for
// removal.
type BranchStatus struct {
	Branch                string
	HasRemote             bool
	IsMerged              bool
	IsIdentical           bool
	Path                  string
	HasUncommittedChanges bool
	HasUnpushedCommits    bool
}

// Resolver computes BranchStatus values for the worktrees of a single
// repository. The repository is opened once and the default branch is
// resolved once, then reused across all worktrees in a cleanup pass.
type Resolver struct {
	repoPath      string
	repo          *gogit.Repository
	defaultBranch string
	defaultTip    plumbing.Hash
}

// NewResolver opens the repository at repoPath. When the repository cannot
// be opened the resolver still works but reports all-false statuses.
func NewResolver(repoPath string) *Resolver {
	r := &Resolver{repoPath: repoPath, defaultBranch: "main"}

	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return r
	}
	r.repo = repo
	r.defaultBranch, r.defaultTip = resolveDefaultBranch(repo)
	return r
}

// DefaultBranch returns the default branch resolved when the resolver was
// created: local main, local master, the remote HEAD's branch, then the
// first local branch.
func (r *Resolver) DefaultBranch() string {
	return r.defaultBranch
}

// Resolve computes the status of one worktree's branch. Every failure mode
// degrades to an all-false status so that errors can never make a worktree
// look safe to remove.
func (r *Resolver) Resolve(ctx context.Context, wt Worktree) BranchStatus {
	status := BranchStatus{Branch: wt.Branch, Path: wt.Path}

	if r.repo == nil || wt.Branch == "" || wt.Branch == DetachedMarker {
		return status
	}

	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(wt.Branch), true)
	if err != nil {
		// Branch renamed or deleted out of band; unknown, not classifiable.
		return status
	}
	tip := ref.Hash()

	// Dirty check must inspect the worktree's own directory, not the
	// primary checkout. go-git's linked-worktree status support is
	// incomplete, so this one check shells out.
	status.HasUncommittedChanges = HasUncommittedChanges(ctx, wt.Path)

	if branchCfg, err := r.repo.Branch(wt.Branch); err == nil && branchCfg.Remote != "" && branchCfg.Merge != "" {
		status.HasRemote = true
		remoteRef := plumbing.NewRemoteReferenceName(branchCfg.Remote, branchCfg.Merge.Short())
		if rr, err := r.repo.Reference(remoteRef, true); err == nil {
			status.HasUnpushedCommits = !r.isAncestor(tip, rr.Hash())
		}
	}

	if r.defaultTip.IsZero() {
		return status
	}
	status.IsIdentical = tip == r.defaultTip
	status.IsMerged = r.isAncestor(tip, r.defaultTip)

	return status
}

// isAncestor reports whether ancestor is reachable from tip (equal hashes
// count as reachable).
func (r *Resolver) isAncestor(ancestor, tip plumbing.Hash) bool {
	if ancestor == tip {
		return true
	}
	ancestorCommit, err := r.repo.CommitObject(ancestor)
	if err != nil {
		return false
	}
	tipCommit, err := r.repo.CommitObject(tip)
	if err != nil {
		return false
	}
	ok, err := ancestorCommit.IsAncestor(tipCommit)
	return err == nil && ok
}

// resolveDefaultBranch probes in fixed priority order: local main, local
// master, the branch origin/HEAD points at, then the first local branch.
func resolveDefaultBranch(repo *gogit.Repository) (string, plumbing.Hash) {
	for _, name := range []string{"main", "master"} {
		if ref, err := repo.Reference(plumbing.NewBranchReferenceName(name), true); err == nil {
			return name, ref.Hash()
		}
	}

	if headRef, err := repo.Reference("refs/remotes/origin/HEAD", false); err == nil && headRef.Type() == plumbing.SymbolicReference {
		target := headRef.Target().String()
		name := target[strings.LastIndex(target, "/")+1:]
		if name != "" {
			if ref, err := repo.Reference(plumbing.NewBranchReferenceName(name), true); err == nil {
				return name, ref.Hash()
			}
			if ref, err := repo.Reference(headRef.Target(), true); err == nil {
				return name, ref.Hash()
			}
		}
	}

	if branches, err := repo.Branches(); err == nil {
		defer branches.Close()
		if ref, err := branches.Next(); err == nil {
			return ref.Name().Short(), ref.Hash()
		}
	}

	return "main", plumbing.ZeroHash
}
