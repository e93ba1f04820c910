package service

import (
	"WithTheLake/internal/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type purgeLog struct {
	order []string
}

type fakeCommentRepo struct {
	log      *purgeLog
	comments []*model.Comment
	purgeErr error
}

func (s *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	s.comments = append(s.comments, comment)
	return nil
}

func (s *fakeCommentRepo) GetComment(context.Context, uint64) (*model.Comment, error) {
	return nil, nil
}

func (s *fakeCommentRepo) GetCommentsByPostID(context.Context, uint64, int, int) ([]*model.Comment, error) {
	return s.comments, nil
}

func (s *fakeCommentRepo) CountCommentsByPostID(context.Context, uint64) (int64, error) {
	return int64(len(s.comments)), nil
}

func (s *fakeCommentRepo) SoftDeleteComment(context.Context, uint64) error {
	return nil
}

func (s *fakeCommentRepo) PurgeSoftDeleted(_ context.Context, before time.Time) (int64, error) {
	s.log.order = append(s.log.order, "comments")
	if s.purgeErr != nil {
		return 0, s.purgeErr
	}
	var deleted int64
	remain := s.comments[:0]
	for _, c := range s.comments {
		if !c.IsActive && c.DeletedAt != nil && c.DeletedAt.Before(before) {
			deleted++
			continue
		}
		remain = append(remain, c)
	}
	s.comments = remain
	return deleted, nil
}

type fakePostRepo struct {
	log   *purgeLog
	posts []*model.Post
}

func (s *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	s.posts = append(s.posts, post)
	return nil
}

func (s *fakePostRepo) GetPost(context.Context, uint64) (*model.Post, error) {
	return nil, nil
}

func (s *fakePostRepo) GetPostByIds(context.Context, []uint64) ([]*model.Post, error) {
	return s.posts, nil
}

func (s *fakePostRepo) GetPostsByBoard(context.Context, string, int, int) ([]*model.Post, error) {
	return s.posts, nil
}

func (s *fakePostRepo) UpdatePost(context.Context, *model.Post) error {
	return nil
}

func (s *fakePostRepo) UpdatePinned(context.Context, uint64, bool) error {
	return nil
}

func (s *fakePostRepo) IncrViewCount(context.Context, uint64, int64) error {
	return nil
}

func (s *fakePostRepo) SoftDeletePost(context.Context, uint64) error {
	return nil
}

func (s *fakePostRepo) PurgeSoftDeleted(_ context.Context, before time.Time) (int64, error) {
	s.log.order = append(s.log.order, "posts")
	var deleted int64
	remain := s.posts[:0]
	for _, p := range s.posts {
		if !p.IsActive && p.DeletedAt != nil && p.DeletedAt.Before(before) {
			deleted++
			continue
		}
		remain = append(remain, p)
	}
	s.posts = remain
	return deleted, nil
}

func (s *fakePostRepo) CountPosts(context.Context) (int64, error) {
	return int64(len(s.posts)), nil
}

func deletedAgo(days int) *time.Time {
	t := time.Now().AddDate(0, 0, -days)
	return &t
}

func TestPurgeExpiredDeletesCommentsBeforePosts(t *testing.T) {
	log := &purgeLog{}
	commentRepo := &fakeCommentRepo{log: log, comments: []*model.Comment{
		{ID: 1, IsActive: false, DeletedAt: deletedAgo(31)},
	}}
	postRepo := &fakePostRepo{log: log, posts: []*model.Post{
		{ID: 1, IsActive: false, DeletedAt: deletedAgo(31)},
	}}
	svc := NewCleanupService(commentRepo, postRepo)

	result, err := svc.PurgeExpired(context.Background(), 30)
	assert.NoError(t, err)
	assert.Equal(t, []string{"comments", "posts"}, log.order)
	assert.Equal(t, int64(1), result.DeletedComments)
	assert.Equal(t, int64(1), result.DeletedPosts)
	assert.Empty(t, result.Errors)
}

func TestPurgeExpiredRespectsRetention(t *testing.T) {
	log := &purgeLog{}
	commentRepo := &fakeCommentRepo{log: log}
	postRepo := &fakePostRepo{log: log, posts: []*model.Post{
		{ID: 1, IsActive: false, DeletedAt: deletedAgo(31)}, // 超期，删
		{ID: 2, IsActive: false, DeletedAt: deletedAgo(29)}, // 未超期，留
		{ID: 3, IsActive: true},                             // 活跃，留
	}}
	svc := NewCleanupService(commentRepo, postRepo)

	result, err := svc.PurgeExpired(context.Background(), 30)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedPosts)
	assert.Len(t, postRepo.posts, 2)
}

func TestPurgeExpiredContinuesAfterCommentError(t *testing.T) {
	log := &purgeLog{}
	commentRepo := &fakeCommentRepo{log: log, purgeErr: errors.New("lock wait timeout")}
	postRepo := &fakePostRepo{log: log, posts: []*model.Post{
		{ID: 1, IsActive: false, DeletedAt: deletedAgo(40)},
	}}
	svc := NewCleanupService(commentRepo, postRepo)

	result, err := svc.PurgeExpired(context.Background(), 30)
	assert.NoError(t, err)
	// 评论失败不阻断帖子清理，错误进入汇总
	assert.Equal(t, []string{"comments", "posts"}, log.order)
	assert.Equal(t, int64(0), result.DeletedComments)
	assert.Equal(t, int64(1), result.DeletedPosts)
	assert.Len(t, result.Errors, 1)
}

func TestPurgeExpiredDefaultRetention(t *testing.T) {
	log := &purgeLog{}
	commentRepo := &fakeCommentRepo{log: log}
	postRepo := &fakePostRepo{log: log, posts: []*model.Post{
		{ID: 1, IsActive: false, DeletedAt: deletedAgo(29)},
	}}
	svc := NewCleanupService(commentRepo, postRepo)

	// 非法保留期回落到 30 天
	result, err := svc.PurgeExpired(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedPosts)
}
