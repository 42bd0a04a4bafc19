package client

import (
	"context"
	"sync"
	"time"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/pkg/optimistic"
)

// Outcome tells the caller what to do after an editor mutation settles.
type Outcome int

const (
	// OutcomeNone means the mutation failed and the state was rolled back.
	OutcomeNone Outcome = iota
	// OutcomeNavigate follows a successful publish: leave the editor for the
	// published post.
	OutcomeNavigate
	// OutcomeCloseDialog follows a visibility change made from the settings
	// dialog.
	OutcomeCloseDialog
	// OutcomeToast follows a draft save: stay in place and show a toast.
	OutcomeToast
)

// PostEditor drives the editor screen for one post. Each mutation is a named
// operation rather than a bag of fields, so publishing, changing visibility
// and saving content can never be conflated, and each carries its own
// post-settle outcome.
type PostEditor struct {
	client *Client

	mu     sync.Mutex
	holder *optimistic.Holder[entity.Post]
}

func NewPostEditor(client *Client, post entity.Post) *PostEditor {
	return &PostEditor{
		client: client,
		holder: optimistic.NewHolder(post),
	}
}

// Post returns the post to render, predicted or confirmed.
func (e *PostEditor) Post() entity.Post {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.holder.State()
}

// Publish marks the draft as published. On success the caller navigates to
// the published post.
func (e *PostEditor) Publish(ctx context.Context) (entity.Post, Outcome, error) {
	return e.mutate(ctx,
		func(p entity.Post) entity.Post {
			p.Published = true
			p.UpdatedAt = time.Now()
			return p
		},
		func(ctx context.Context) (*entity.Post, error) {
			return e.client.PublishPost(ctx, e.postID())
		},
		OutcomeNavigate,
	)
}

// SetVisibility switches the post between public and private. On success the
// settings dialog closes.
func (e *PostEditor) SetVisibility(ctx context.Context, visibility entity.Visibility) (entity.Post, Outcome, error) {
	return e.mutate(ctx,
		func(p entity.Post) entity.Post {
			p.Visibility = visibility
			p.UpdatedAt = time.Now()
			return p
		},
		func(ctx context.Context) (*entity.Post, error) {
			return e.client.SetPostVisibility(ctx, e.postID(), visibility)
		},
		OutcomeCloseDialog,
	)
}

// SaveDraft updates content fields only. Publish state and visibility are
// untouched regardless of what the editor holds locally.
func (e *PostEditor) SaveDraft(ctx context.Context, update entity.PostUpdate) (entity.Post, Outcome, error) {
	return e.mutate(ctx,
		func(p entity.Post) entity.Post {
			if update.Title != nil {
				p.Title = *update.Title
			}
			if update.Description != nil {
				p.Description = *update.Description
			}
			if update.Content != nil {
				p.Content = *update.Content
			}
			p.UpdatedAt = time.Now()
			return p
		},
		func(ctx context.Context) (*entity.Post, error) {
			return e.client.SavePostDraft(ctx, e.postID(), update)
		},
		OutcomeToast,
	)
}

func (e *PostEditor) postID() string {
	return e.holder.Confirmed().ID
}

// mutate is the shared settle loop: predict, send, then confirm with server
// truth or roll back. The outcome is reported only when the server accepted
// the mutation.
func (e *PostEditor) mutate(
	ctx context.Context,
	predict func(entity.Post) entity.Post,
	send func(context.Context) (*entity.Post, error),
	onSuccess Outcome,
) (entity.Post, Outcome, error) {
	e.mu.Lock()
	if !e.client.Authenticated() {
		state := e.holder.State()
		e.mu.Unlock()
		return state, OutcomeNone, entity.ErrUnauthenticated
	}
	e.holder.Predict(predict)
	e.mu.Unlock()

	updated, err := send(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		return e.holder.Rollback(), OutcomeNone, err
	}
	e.holder.Confirm(*updated)
	return e.holder.State(), onSuccess, nil
}
