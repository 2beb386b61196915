// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/mfadhilr/contekan/models"
)

// OwnerFilter restricts the visible list to a subset of owners.
type OwnerFilter int

const (
	// FilterAll shows every loaded snippet regardless of owner.
	FilterAll OwnerFilter = iota
	// FilterMine shows only snippets owned by the signed-in user.
	FilterMine
)

// ListController holds the in-memory snippet collection for the current
// session, applies search/filter/sort on top of it, and tracks which single
// snippet is the active detail view.
//
// Reads are never row-filtered by owner on the server: every authenticated
// user sees every snippet, and the owner filter is a purely client-side
// projection.
type ListController interface {
	// Load fetches all snippets from the server and replaces the in-memory
	// collection. On failure it returns an error wrapping [ErrFetch] and
	// leaves the prior collection untouched. Loading an empty collection
	// clears the selection.
	Load(ctx context.Context) error

	// Visible returns the current projection of the collection: owner
	// filter and search query applied, ordered by the configured sort
	// direction. The returned slice is a copy.
	Visible() []models.Snippet

	// Search sets the query matched case-insensitively against each
	// snippet's title and, per configuration, body, description, and owner
	// display name. An empty query matches everything. Pure and
	// idempotent: it never re-queries the server.
	Search(query string)

	// Query returns the active search query.
	Query() string

	// SetOwnerFilter switches between showing everyone's snippets and
	// only the signed-in user's own. Composes with Search.
	SetOwnerFilter(filter OwnerFilter)

	// Filter returns the active owner filter.
	Filter() OwnerFilter

	// SetSortDirection orders the collection by creation time, ascending
	// or descending (config.SortAscending / config.SortDescending).
	// Snippets with identical timestamps keep their insertion order.
	SetSortDirection(direction string)

	// Select marks the snippet with the given id as the active detail
	// view. Selecting an unknown id leaves the current selection
	// unchanged.
	Select(id string)

	// CurrentSelection returns the selected snippet. The second return
	// value is false when nothing is selected.
	CurrentSelection() (models.Snippet, bool)

	// Get returns the snippet with the given id from the loaded
	// collection.
	Get(id string) (models.Snippet, bool)

	// MergeInserted adds a freshly created snippet to the collection, or
	// replaces it if the id is already present. Ignored when the id has
	// been deleted locally in the meantime.
	MergeInserted(snippet models.Snippet)

	// MergeUpdated replaces the stored snippet with the given server
	// response. A delete applied for the same id always wins, regardless
	// of the order the responses arrived in.
	MergeUpdated(snippet models.Snippet)

	// ApplyDelete removes the snippet with the given id and remembers the
	// deletion so that a racing update response for the same id cannot
	// resurrect it. When the deleted snippet was selected, the selection
	// moves to the next remaining snippet in list order, or to none.
	ApplyDelete(id string)
}

// SnippetEditor validates and stages user-entered fields for a create or an
// update, and performs the single corresponding server call on Submit.
type SnippetEditor interface {
	// StartCreate resets all staged fields and enters add mode.
	StartCreate()

	// StartEdit pre-populates the staged fields from the snippet and
	// enters edit mode. Returns an error wrapping [ErrAuthorization] when
	// the signed-in user is not the snippet's owner; the UI hides the
	// entry point for non-owners, but the editor enforces it regardless.
	// The staged attachment starts empty: the stored attachment is kept
	// unless explicitly replaced.
	StartEdit(snippet models.Snippet) error

	// SetTitle, SetBody and SetDescription mutate one staged field each.
	// Nothing is persisted until Submit.
	SetTitle(title string)
	SetBody(body string)
	SetDescription(description string)

	// Title, Body and Description return the staged field values.
	Title() string
	Body() string
	Description() string

	// AttachFile stages the given file content as the snippet attachment.
	// Content larger than [models.MaxAttachmentSize] is rejected with an
	// error wrapping [ErrAttachmentTooLarge] and the previously staged
	// attachment is kept. The whole content is base64-encoded in memory
	// before Submit issues any write.
	AttachFile(fileName string, content []byte) error

	// Attachment returns the staged attachment, or nil when none is
	// staged.
	Attachment() *models.Attachment

	// Editing reports whether the editor is in edit mode and, if so, the
	// id of the snippet being edited.
	Editing() (id string, editing bool)

	// Submit validates the staged fields and issues a single insert (add
	// mode) or update (edit mode) to the server, returning the
	// materialized record for the caller to merge into the list and
	// select. A [*ValidationError] is returned without any server call
	// when title or body is empty. On a server failure the staged fields
	// are preserved unchanged so the user can retry.
	Submit(ctx context.Context) (models.Snippet, error)
}

// FlowState is the deletion confirmation state machine's current state.
type FlowState int

const (
	// FlowIdle means no deletion is in progress.
	FlowIdle FlowState = iota
	// FlowPending means a deletion awaits confirmation, by countdown or
	// by explicit prompt.
	FlowPending
	// FlowExecuting means the delete call to the server is in flight.
	FlowExecuting
)

// DeleteEvent describes a state change of the deletion flow, delivered to
// the listener registered with SetListener.
type DeleteEvent struct {
	State     FlowState
	TargetID  string
	Remaining int
	Err       error
}

// DeleteFlow is the timed state machine guarding destructive deletes.
//
// Two configured variants exist: countdown (a per-second countdown that
// auto-executes the delete at zero) and prompt (an explicit Confirm with no
// time pressure). At most one deletion is pending or executing at a time; a
// second RequestDelete while one is pending cancels the prior countdown and
// replaces it.
type DeleteFlow interface {
	// RequestDelete moves the flow from Idle (or Pending) to Pending for
	// the given snippet id. In countdown mode it starts the countdown
	// timer. Returns an error wrapping [ErrDeleteInFlight] while a delete
	// call is executing.
	RequestDelete(ctx context.Context, id string) error

	// Confirm executes the pending delete immediately, cancelling any
	// running countdown first. Returns an error wrapping
	// [ErrNothingToConfirm] when no delete is pending.
	Confirm() error

	// Cancel aborts the pending deletion. The countdown timer is stopped
	// by handle, so a cancelled countdown can never fire late. Cancelling
	// an executing or idle flow is a no-op.
	Cancel()

	// State returns the current state, the pending target id, and the
	// remaining countdown seconds (countdown mode only).
	State() (state FlowState, targetID string, remaining int)

	// SetListener registers a callback invoked on every state change,
	// including countdown ticks and the final outcome of the delete call.
	// Pass nil to remove the listener.
	SetListener(fn func(DeleteEvent))
}
