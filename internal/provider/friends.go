package provider

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmynk/splitbeam/internal/middleware"
	"github.com/mmynk/splitbeam/internal/models"
)

// FriendService manages the current user's friend list.
type FriendService struct {
	*core
}

// SearchByEmail returns the first friend whose email equals email exactly.
func (s *FriendService) SearchByEmail(ctx context.Context, email string) (models.Friend, bool, error) {
	type result struct {
		friend models.Friend
		ok     bool
	}
	r, err := middleware.Observe(ctx, "friends", "search_by_email", func(ctx context.Context) (result, error) {
		for _, f := range s.store.Snapshot().Friends {
			if f.Email == email {
				return result{f, true}, nil
			}
		}
		return result{}, nil
	})
	return r.friend, r.ok, err
}

// Invite adds a friend with status invited. No activity is recorded and
// duplicates are not checked.
func (s *FriendService) Invite(ctx context.Context, email string) (models.Friend, error) {
	return middleware.Observe(ctx, "friends", "invite", func(ctx context.Context) (models.Friend, error) {
		if strings.TrimSpace(email) == "" {
			return models.Friend{}, invalidArgument("email required")
		}

		now := s.clock()
		friend := models.Friend{
			ID:        s.newID("friend"),
			Email:     email,
			Status:    models.FriendInvited,
			InvitedAt: &now,
		}

		if _, err := s.store.Update(ctx, func(st *models.State) error {
			st.Friends = append(st.Friends, friend)
			return nil
		}); err != nil {
			return models.Friend{}, err
		}

		slog.Info("Friend invited", "friend_id", friend.ID, "email", email)
		return friend, nil
	})
}

// List returns every friend in insertion order.
func (s *FriendService) List(ctx context.Context) ([]models.Friend, error) {
	return middleware.Observe(ctx, "friends", "list", func(ctx context.Context) ([]models.Friend, error) {
		return s.store.Snapshot().Friends, nil
	})
}
