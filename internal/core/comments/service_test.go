package comments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Scoops/internal/core/posts"
	"Scoops/internal/core/updates"
	"Scoops/internal/core/votes"
)

// Mock repositories for testing
type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id string) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID string) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *mockCommentRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func (m *mockCommentRepository) ApplyVoteDeltas(ctx context.Context, id string, upDelta, downDelta int) (*Comment, error) {
	args := m.Called(ctx, id, upDelta, downDelta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *posts.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *mockPostRepository) List(ctx context.Context) ([]*posts.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *mockPostRepository) ApplyVoteDeltas(ctx context.Context, id string, upDelta, downDelta int) (*posts.Post, error) {
	args := m.Called(ctx, id, upDelta, downDelta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *mockPostRepository) SetReplies(ctx context.Context, id string, replies int) (*posts.Post, error) {
	args := m.Called(ctx, id, replies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func newTestService(repo Repository, postRepo posts.Repository) (*commentService, *votes.Store, *updates.Notifier) {
	store := votes.NewStore(votes.PolarityTernary)
	notifier := updates.NewNotifier()
	svc := NewCommentService(repo, postRepo, store, notifier, nil).(*commentService)
	return svc, store, notifier
}

func TestCreateComment_SyncsReplyCount(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	postRepo := new(mockPostRepository)

	postRepo.On("GetByID", mock.Anything, "post-1").Return(&posts.Post{ID: "post-1"}, nil)
	commentRepo.On("CountByPost", mock.Anything, "post-1").Return(2, nil).Once()
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*comments.Comment")).Return(nil)
	commentRepo.On("CountByPost", mock.Anything, "post-1").Return(3, nil).Once()
	postRepo.On("SetReplies", mock.Anything, "post-1", 3).Return(&posts.Post{ID: "post-1", Replies: 3}, nil)

	svc, _, notifier := newTestService(commentRepo, postRepo)

	var patches []updates.Patch
	notifier.Subscribe(func(entityID string, patch updates.Patch) {
		assert.Equal(t, "post-1", entityID)
		patches = append(patches, patch)
	})

	comment, err := svc.CreateComment(context.Background(), CreateCommentRequest{
		PostID:  "post-1",
		Content: "Agreed, the #Azure demos were great",
	})
	require.NoError(t, err)

	assert.Equal(t, "post-1", comment.PostID)
	assert.Equal(t, "Agreed, the demos were great", comment.Content)
	assert.Equal(t, []string{"#Azure"}, comment.Hashtags)
	assert.True(t, comment.IsUserComment)

	// The reply-count sync publishes the recomputed value
	require.Len(t, patches, 1)
	require.NotNil(t, patches[0].Replies)
	assert.Equal(t, 3, *patches[0].Replies)
	assert.Equal(t, updates.KindPost, patches[0].Kind)

	commentRepo.AssertExpectations(t)
	postRepo.AssertExpectations(t)
}

func TestCreateComment_RejectsUnknownPost(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	postRepo := new(mockPostRepository)
	postRepo.On("GetByID", mock.Anything, "missing").Return(nil, posts.ErrPostNotFound)

	svc, _, _ := newTestService(commentRepo, postRepo)

	_, err := svc.CreateComment(context.Background(), CreateCommentRequest{
		PostID:  "missing",
		Content: "hello",
	})
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
	commentRepo.AssertNotCalled(t, "Create")
}

func TestCreateComment_RejectsEmptyContent(t *testing.T) {
	svc, _, _ := newTestService(new(mockCommentRepository), new(mockPostRepository))

	_, err := svc.CreateComment(context.Background(), CreateCommentRequest{
		PostID:  "post-1",
		Content: "  ",
	})
	assert.ErrorIs(t, err, ErrEmptyContent)
}

// The eleventh comment is rejected before anything is written, so the
// collection and the reply count stay as they were.
func TestCreateComment_EnforcesCap(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	postRepo := new(mockPostRepository)

	postRepo.On("GetByID", mock.Anything, "post-1").Return(&posts.Post{ID: "post-1"}, nil)
	commentRepo.On("CountByPost", mock.Anything, "post-1").Return(MaxCommentsPerPost, nil)

	svc, _, notifier := newTestService(commentRepo, postRepo)

	calls := 0
	notifier.Subscribe(func(string, updates.Patch) { calls++ })

	_, err := svc.CreateComment(context.Background(), CreateCommentRequest{
		PostID:  "post-1",
		Content: "one too many",
	})
	assert.ErrorIs(t, err, ErrCommentLimitReached)
	assert.Equal(t, 0, calls)
	commentRepo.AssertNotCalled(t, "Create")
	postRepo.AssertNotCalled(t, "SetReplies")
}

func TestGetCommentsForPost_DecoratesWithVoteState(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	postRepo := new(mockPostRepository)

	now := time.Now().UTC()
	postRepo.On("GetByID", mock.Anything, "post-1").Return(&posts.Post{ID: "post-1"}, nil)
	commentRepo.On("ListByPost", mock.Anything, "post-1").Return([]*Comment{
		{ID: "comment-2", PostID: "post-1", CreatedAt: now},
		{ID: "comment-1", PostID: "post-1", CreatedAt: now.Add(-time.Minute)},
	}, nil)

	svc, store, _ := newTestService(commentRepo, postRepo)
	_, err := store.Toggle("comment-1", votes.DirectionUp)
	require.NoError(t, err)

	views, err := svc.GetCommentsForPost(context.Background(), "post-1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "comment-2", views[0].ID)
	assert.False(t, views[0].IsUpvoted)
	assert.Equal(t, "comment-1", views[1].ID)
	assert.True(t, views[1].IsUpvoted)
	assert.NotEmpty(t, views[0].Timestamp)
}

func TestToggleCommentVote_MirrorsPostContract(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	postRepo := new(mockPostRepository)

	commentRepo.On("GetByID", mock.Anything, "comment-1").Return(&Comment{ID: "comment-1"}, nil)
	commentRepo.On("ApplyVoteDeltas", mock.Anything, "comment-1", 0, 1).
		Return(&Comment{ID: "comment-1", Downvotes: 1}, nil)

	svc, _, notifier := newTestService(commentRepo, postRepo)

	var kinds []updates.EntityKind
	notifier.Subscribe(func(_ string, patch updates.Patch) { kinds = append(kinds, patch.Kind) })

	update, err := svc.ToggleDownvote(context.Background(), "comment-1")
	require.NoError(t, err)

	assert.True(t, update.IsDownvoted)
	assert.Equal(t, 1, update.Downvotes)
	assert.Equal(t, []updates.EntityKind{updates.KindComment}, kinds)
}

func TestToggleCommentVote_UnknownComment(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	commentRepo.On("GetByID", mock.Anything, "missing").Return(nil, ErrCommentNotFound)

	svc, store, _ := newTestService(commentRepo, new(mockPostRepository))

	_, err := svc.ToggleUpvote(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.Equal(t, votes.StateNone, store.State("missing"))
}

func TestSyncReplyCount_RecomputesFromLiveCollection(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	postRepo := new(mockPostRepository)

	commentRepo.On("CountByPost", mock.Anything, "post-1").Return(7, nil)
	postRepo.On("SetReplies", mock.Anything, "post-1", 7).Return(&posts.Post{ID: "post-1", Replies: 7}, nil)

	svc, _, _ := newTestService(commentRepo, postRepo)

	count, err := svc.SyncReplyCount(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	postRepo.AssertExpectations(t)
}
