// Package gitliteerr defines the fixed, user-visible error taxonomy for
// Gitlite. Every command-boundary failure is one of these typed errors so
// that its message string is stable and testable verbatim.
package gitliteerr

import "fmt"

// Error is a taxonomy-tagged error with a fixed message.
type Error struct {
	Kind    string
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Is reports equality by taxonomy Kind, so a wrapped or reworded Error still
// satisfies errors.Is against the corresponding sentinel in this package.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Wrap returns a copy of e whose cause is err, for use with errors.Is/As
// while keeping the fixed, user-facing Message unchanged.
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, cause: err}
}

func newErr(kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Fixed, spec-mandated error values (§7).
var (
	AlreadyExists = newErr("AlreadyExists",
		"A Gitlite version-control system already exists in the current directory.")
	NotInitialized = newErr("NotInitialized",
		"Not a Gitlite repository (or any of the parent directories).")
	NotFound = newErr("NotFound",
		"File does not exist.")
	EmptyMessage = newErr("EmptyMessage",
		"Please enter a commit message.")
	NothingToCommit = newErr("NothingToCommit",
		"No changes added to the commit.")
	NotRemovable = newErr("NotRemovable",
		"No reason to remove the file.")
	NoSuchBranch = newErr("NoSuchBranch",
		"A branch with that name does not exist.")
	DuplicateBranch = newErr("DuplicateBranch",
		"A branch with that name already exists.")
	SelfCheckout = newErr("SelfCheckout",
		"No need to checkout the current branch.")
	CurrentBranchDelete = newErr("CurrentBranchDelete",
		"Cannot remove the current branch.")
	AmbiguousOrMissing = newErr("AmbiguousOrMissing",
		"No commit with that id exists.")
	NotInCommit = newErr("NotInCommit",
		"File does not exist in that commit.")
	NoCommitFound = newErr("NoCommitFound",
		"Found no commit with that message.")
	SelfMerge = newErr("SelfMerge",
		"Cannot merge a branch with itself.")
	UncommittedChanges = newErr("UncommittedChanges",
		"You have uncommitted changes.")
	UntrackedInTheWay = newErr("UntrackedInTheWay",
		"There is an untracked file in the way; delete it, or add and commit it first.")
	NoSuchRemote = newErr("NoSuchRemote",
		"A remote with that name does not exist.")
	DuplicateRemote = newErr("DuplicateRemote",
		"A remote with that name already exists.")
	NoSuchRemoteBranch = newErr("NoSuchRemoteBranch",
		"That remote does not have that branch.")
	PushRejected = newErr("PushRejected",
		"Please pull down remote changes before pushing.")
	Corrupt = newErr("Corrupt",
		"Gitlite object store is corrupt.")
)

// Corruptf builds a Corrupt error carrying extra context in its message
// while keeping the Kind stable for errors.Is-style checks against Corrupt.
func Corruptf(format string, args ...interface{}) *Error {
	return &Error{Kind: Corrupt.Kind, Message: fmt.Sprintf(format, args...)}
}
