package services

import (
	"context"
	"strings"
	"testing"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage/inmemory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedFixture(t *testing.T) (*FeedService, *inmemory.Store, uuid.UUID, uuid.UUID) {
	store := inmemory.New()
	ctx := context.Background()

	alice := &models.User{}
	require.NoError(t, store.CreateUser(ctx, alice))
	bob := &models.User{}
	require.NoError(t, store.CreateUser(ctx, bob))

	return NewFeedService(store, NewContentPolicy()), store, alice.ID, bob.ID
}

func TestFeedService_CreatePost(t *testing.T) {
	svc, _, alice, _ := newFeedFixture(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: "  <b>one week</b> & counting "})
	require.NoError(t, err)
	assert.Equal(t, "one week & counting", post.Content)
	assert.Equal(t, models.PostTypeText, post.PostType)
	assert.Equal(t, int64(0), post.Reactions[models.ReactionProud])
	assert.Empty(t, post.MyReactions)

	post, err = svc.CreatePost(ctx, alice, &dto.CreatePostRequest{ImageURL: "https://cdn.example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, models.PostTypeImage, post.PostType)

	_, err = svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: "<script></script>"})
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: strings.Repeat("a", MaxPostLength+1)})
	assert.ErrorIs(t, err, ErrContentTooLong)

	_, err = svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: "hi", PostType: "poll"})
	assert.ErrorIs(t, err, ErrInvalidPostType)

	_, err = svc.CreatePost(ctx, uuid.New(), &dto.CreatePostRequest{Content: "hi"})
	assert.ErrorIs(t, err, ErrUnknownReference)

	missing := uuid.New()
	_, err = svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: "hi", AddictionID: &missing})
	assert.ErrorIs(t, err, ErrUnknownReference)
}

func TestFeedService_TogglePostReaction(t *testing.T) {
	svc, _, alice, bob := newFeedFixture(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: "day one"})
	require.NoError(t, err)

	active, err := svc.TogglePostReaction(ctx, bob, post.ID, models.ReactionStayStrong)
	require.NoError(t, err)
	assert.True(t, active)

	view, err := svc.GetPost(ctx, &bob, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.Reactions[models.ReactionStayStrong])
	assert.Equal(t, []string{models.ReactionStayStrong}, view.MyReactions)

	active, err = svc.TogglePostReaction(ctx, bob, post.ID, models.ReactionStayStrong)
	require.NoError(t, err)
	assert.False(t, active)

	view, err = svc.GetPost(ctx, nil, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), view.Reactions[models.ReactionStayStrong])

	_, err = svc.TogglePostReaction(ctx, bob, post.ID, "like")
	assert.ErrorIs(t, err, ErrInvalidReactionType)

	_, err = svc.TogglePostReaction(ctx, bob, uuid.New(), models.ReactionProud)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestFeedService_DeletePostOwnerOnly(t *testing.T) {
	svc, _, alice, bob := newFeedFixture(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: "mine"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePost(ctx, bob, post.ID), ErrNotOwner)
	require.NoError(t, svc.DeletePost(ctx, alice, post.ID))

	_, err = svc.GetPost(ctx, nil, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, svc.DeletePost(ctx, alice, post.ID), ErrPostNotFound)

	feed, err := svc.ListFeed(ctx, nil, storage.PostFilter{})
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedService_Comments(t *testing.T) {
	svc, _, alice, bob := newFeedFixture(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: "rough night"})
	require.NoError(t, err)

	first, err := svc.AddComment(ctx, bob, post.ID, &dto.CreateCommentRequest{Content: "you got this"})
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, alice, post.ID, &dto.CreateCommentRequest{Content: "thanks"})
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, bob, post.ID, &dto.CreateCommentRequest{Content: "   "})
	assert.ErrorIs(t, err, ErrEmptyContent)
	_, err = svc.AddComment(ctx, bob, post.ID, &dto.CreateCommentRequest{Content: strings.Repeat("x", MaxCommentLength+1)})
	assert.ErrorIs(t, err, ErrContentTooLong)
	_, err = svc.AddComment(ctx, bob, uuid.New(), &dto.CreateCommentRequest{Content: "hello"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	active, err := svc.ToggleCommentReaction(ctx, alice, first.ID, "")
	require.NoError(t, err)
	assert.True(t, active)

	comments, err := svc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "you got this", comments[0].Content)
	assert.Equal(t, int64(1), comments[0].Reactions[models.ReactionHearYou])

	view, err := svc.GetPost(ctx, nil, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.CommentCount)

	assert.ErrorIs(t, svc.DeleteComment(ctx, alice, first.ID), ErrNotOwner)
	require.NoError(t, svc.DeleteComment(ctx, bob, first.ID))
	assert.ErrorIs(t, svc.DeleteComment(ctx, bob, first.ID), ErrCommentNotFound)

	_, err = svc.ToggleCommentReaction(ctx, alice, first.ID, "")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestFeedService_ListFeedFiltersAndClamps(t *testing.T) {
	svc, store, alice, _ := newFeedFixture(t)
	ctx := context.Background()

	addiction := &models.Addiction{Name: "Gambling"}
	require.NoError(t, store.CreateAddiction(ctx, addiction))
	addictionID := addiction.ID
	for i := 0; i < 3; i++ {
		_, err := svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: "general"})
		require.NoError(t, err)
	}
	tagged, err := svc.CreatePost(ctx, alice, &dto.CreatePostRequest{Content: "tagged", AddictionID: &addictionID})
	require.NoError(t, err)

	feed, err := svc.ListFeed(ctx, nil, storage.PostFilter{AddictionID: &addictionID})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, tagged.ID, feed[0].ID)

	feed, err = svc.ListFeed(ctx, nil, storage.PostFilter{Page: storage.Page{Limit: 2, Offset: 0}})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, tagged.ID, feed[0].ID)

	assert.Equal(t, storage.Page{Limit: DefaultFeedLimit}, clampPage(storage.Page{Limit: -1, Offset: -5}))
	assert.Equal(t, MaxFeedLimit, clampPage(storage.Page{Limit: 1000}).Limit)
}
