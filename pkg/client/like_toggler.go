package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/pkg/optimistic"
)

// LikeToggler drives the like button for one post. Taps flip the local like
// set immediately through an optimistic holder while the request runs; the
// server's like set confirms the prediction, and any failure rolls it back.
type LikeToggler struct {
	client *Client
	postID string
	userID string

	mu       sync.Mutex
	inFlight bool
	holder   *optimistic.Holder[[]entity.Like]
}

func NewLikeToggler(client *Client, postID, userID string, likes []entity.Like) *LikeToggler {
	return &LikeToggler{
		client: client,
		postID: postID,
		userID: userID,
		holder: optimistic.NewHolder(likes),
	}
}

// Likes returns the like set to render, predicted or confirmed.
func (t *LikeToggler) Likes() []entity.Like {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.holder.State()
}

// Liked reports whether the current user appears in the rendered like set.
func (t *LikeToggler) Liked() bool {
	return entity.LikedBy(t.Likes(), t.userID)
}

// Count returns the rendered like count.
func (t *LikeToggler) Count() int {
	return len(t.Likes())
}

// IsExecuting reports whether a toggle request is outstanding. Taps that land
// while it returns true compose onto the prediction without sending another
// request.
func (t *LikeToggler) IsExecuting() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight
}

// Toggle handles one tap. Unauthenticated taps are rejected before any
// prediction, so the rendered state never moves for a user who cannot like.
//
// While a request is in flight further taps only compose their prediction
// onto the rendered state; a single request stays outstanding and its
// response settles everything.
func (t *LikeToggler) Toggle(ctx context.Context) ([]entity.Like, error) {
	t.mu.Lock()
	if !t.client.Authenticated() {
		state := t.holder.State()
		t.mu.Unlock()
		return state, entity.ErrUnauthenticated
	}

	predicted := t.holder.Predict(t.flip)
	if t.inFlight {
		t.mu.Unlock()
		return predicted, nil
	}
	t.inFlight = true
	t.mu.Unlock()

	resp, err := t.client.ToggleLike(ctx, t.postID)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.inFlight = false
	if err != nil {
		return t.holder.Rollback(), err
	}
	t.holder.Confirm(resp.Likes)
	return t.holder.State(), nil
}

// flip is the pure prediction: remove the user's like if present, otherwise
// append a placeholder like. The placeholder ID is replaced by the server's
// row on confirm.
func (t *LikeToggler) flip(likes []entity.Like) []entity.Like {
	if entity.LikedBy(likes, t.userID) {
		next := make([]entity.Like, 0, len(likes))
		for _, like := range likes {
			if like.UserID != t.userID {
				next = append(next, like)
			}
		}
		return next
	}

	next := make([]entity.Like, len(likes), len(likes)+1)
	copy(next, likes)
	return append(next, entity.Like{
		ID:        "optimistic-" + uuid.NewString(),
		UserID:    t.userID,
		PostID:    t.postID,
		CreatedAt: time.Now(),
	})
}
