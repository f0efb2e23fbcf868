package properties

import (
	"errors"
	"fmt"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"sort"
	"strconv"
)

const shortCommitLength = 7

// Git property names
const (
	GitCommit      = "git.commit"
	GitCommitShort = "git.commit.short"
	GitBranch      = "git.branch"
	GitTag         = "git.tag"
	GitDirty       = "git.dirty"
)

// Git exposes VCS metadata of the repository containing dir
func Git(dir string) (Map, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	commit := head.Hash().String()
	result := Map{
		GitCommit:      commit,
		GitCommitShort: commit[:shortCommitLength],
		GitBranch:      "",
		GitTag:         "",
		GitDirty:       "false",
	}
	if head.Name().IsBranch() {
		result[GitBranch] = head.Name().Short()
	}
	if result[GitTag], err = headTag(repo, head.Hash()); err != nil {
		return nil, err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}
	result[GitDirty] = strconv.FormatBool(!status.IsClean())
	return result, nil
}

// headTag returns the lexically greatest tag pointing at hash, lightweight or annotated
func headTag(repo *git.Repository, hash plumbing.Hash) (string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}
	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tag, err := repo.TagObject(target); err == nil {
			target = tag.Target
		}
		if target == hash {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to iterate tags: %w", err)
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	return names[len(names)-1], nil
}
