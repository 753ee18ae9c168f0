// Package errors provides sentinel errors and custom error types for the gitmcp server.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the invocation failure kinds surfaced to MCP clients.
var (
	// ErrUnknownTool indicates that the requested tool identifier is not in the catalog
	ErrUnknownTool = errors.New("unknown tool")

	// ErrMissingArgument indicates that a required argument was not provided
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidArgument indicates that an argument failed schema validation
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidRepository indicates that a path is not a valid git repository root
	ErrInvalidRepository = errors.New("invalid repository")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists indicates that a branch with the requested name already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrRemoteNotFound indicates that a remote does not exist
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrDirtyWorkingTree indicates that uncommitted changes block the operation
	ErrDirtyWorkingTree = errors.New("dirty working tree")

	// ErrMergeConflict indicates that an automatic merge failed
	ErrMergeConflict = errors.New("merge conflict")
)

// UnknownToolError represents an invocation of a tool identifier outside the catalog
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// Is returns true if the target error is ErrUnknownTool
func (e *UnknownToolError) Is(target error) bool {
	return target == ErrUnknownTool
}

// NewUnknownToolError creates a new UnknownToolError
func NewUnknownToolError(name string) *UnknownToolError {
	return &UnknownToolError{Name: name}
}

// MissingArgumentError represents a required argument that was not supplied
type MissingArgumentError struct {
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Argument)
}

// Is returns true if the target error is ErrMissingArgument
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// NewMissingArgumentError creates a new MissingArgumentError
func NewMissingArgumentError(argument string) *MissingArgumentError {
	return &MissingArgumentError{Argument: argument}
}

// InvalidArgumentError represents an argument that failed schema validation
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

// Is returns true if the target error is ErrInvalidArgument
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Reason: reason}
}

// InvalidRepositoryError represents a path that is not a git repository root
type InvalidRepositoryError struct {
	Path string
	Err  error
}

func (e *InvalidRepositoryError) Error() string {
	return fmt.Sprintf("%s is not a valid git repository", e.Path)
}

// Is returns true if the target error is ErrInvalidRepository
func (e *InvalidRepositoryError) Is(target error) bool {
	return target == ErrInvalidRepository
}

func (e *InvalidRepositoryError) Unwrap() error {
	return e.Err
}

// NewInvalidRepositoryError creates a new InvalidRepositoryError
func NewInvalidRepositoryError(path string, err error) *InvalidRepositoryError {
	return &InvalidRepositoryError{Path: path, Err: err}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch '%s' not found", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// BranchExistsError represents an error when a branch with the requested name
// already exists
type BranchExistsError struct {
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("branch '%s' already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName}
}

// RemoteNotFoundError represents an error when a remote is not found
type RemoteNotFoundError struct {
	RemoteName string
}

func (e *RemoteNotFoundError) Error() string {
	return fmt.Sprintf("remote '%s' not found", e.RemoteName)
}

// Is returns true if the target error is ErrRemoteNotFound
func (e *RemoteNotFoundError) Is(target error) bool {
	return target == ErrRemoteNotFound
}

// NewRemoteNotFoundError creates a new RemoteNotFoundError
func NewRemoteNotFoundError(remoteName string) *RemoteNotFoundError {
	return &RemoteNotFoundError{RemoteName: remoteName}
}

// DirtyWorkingTreeError represents an operation blocked by uncommitted changes
type DirtyWorkingTreeError struct {
	Message string
}

func (e *DirtyWorkingTreeError) Error() string {
	return e.Message
}

// Is returns true if the target error is ErrDirtyWorkingTree
func (e *DirtyWorkingTreeError) Is(target error) bool {
	return target == ErrDirtyWorkingTree
}

// NewDirtyWorkingTreeError creates a new DirtyWorkingTreeError
func NewDirtyWorkingTreeError(message string) *DirtyWorkingTreeError {
	return &DirtyWorkingTreeError{Message: message}
}

// MergeConflictError represents an automatic merge that failed with conflicts
type MergeConflictError struct {
	Message string
}

func (e *MergeConflictError) Error() string {
	return e.Message
}

// Is returns true if the target error is ErrMergeConflict
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

// NewMergeConflictError creates a new MergeConflictError
func NewMergeConflictError(message string) *MergeConflictError {
	return &MergeConflictError{Message: message}
}

// GitCommandError represents an unclassified failure from a git command execution.
// The original toolchain message is preserved rather than masked so the calling
// agent keeps the diagnostic detail.
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Output returns the combined stdout and stderr of the failed command.
func (e *GitCommandError) Output() string {
	return strings.TrimSpace(e.Stdout + "\n" + e.Stderr)
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
