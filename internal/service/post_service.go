package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/model"
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/es"
	"WithTheLake/internal/pkg/redis"
	"WithTheLake/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// ViewTracker 浏览事件投递，实现方异步化，不阻塞读路径
type ViewTracker interface {
	TrackPostView(postID uint64)
}

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	GetPostsByBoard(ctx context.Context, boardType string, page, pageSize int) (*dto.PostListDTO, error)
	SearchPosts(ctx context.Context, keyword, boardType string, page, pageSize int) ([]*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, isAdmin bool, req *dto.UpdatePostDTO) (*dto.PostDTO, error)
	PinPost(ctx context.Context, postID uint64, pinned bool) error
	DeletePost(ctx context.Context, userID, postID uint64, isAdmin bool) error
}

type postServiceImpl struct {
	postRepo   repository.PostRepo
	postESRepo es.PostRepo
	tracker    ViewTracker
}

func NewPostService(postRepo repository.PostRepo, postESRepo es.PostRepo, tracker ViewTracker) PostService {
	return &postServiceImpl{
		postRepo:   postRepo,
		postESRepo: postESRepo,
		tracker:    tracker,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	if !isBoardType(req.BoardType) {
		return nil, ErrParamInvalid
	}

	post := &model.Post{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		BoardType: req.BoardType,
		IsActive:  true,
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	// 带作者信息重查，索引与返回都要昵称
	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	s.indexPost(ctx, created)

	return s.toPostDTO(ctx, created, false), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if !post.IsActive {
		return nil, ErrPostNotFound
	}

	if s.tracker != nil {
		s.tracker.TrackPostView(id)
	}

	return s.toPostDTO(ctx, post, true), nil
}

func (s *postServiceImpl) GetPostsByBoard(ctx context.Context, boardType string, page, pageSize int) (*dto.PostListDTO, error) {
	if boardType != "" && !isBoardType(boardType) {
		return nil, ErrParamInvalid
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}

	posts, err := s.postRepo.GetPostsByBoard(ctx, boardType, page, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.CountPosts(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, s.toPostDTO(ctx, post, true))
	}
	return &dto.PostListDTO{Total: total, Posts: list}, nil
}

// SearchPosts 先查 ES 拿 ID，再回表取权威数据，过滤检索后刚被删除的帖子
func (s *postServiceImpl) SearchPosts(ctx context.Context, keyword, boardType string, page, pageSize int) ([]*dto.PostDTO, error) {
	if keyword == "" {
		return []*dto.PostDTO{}, nil
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}

	docs, err := s.postESRepo.SearchPosts(ctx, keyword, boardType, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return []*dto.PostDTO{}, nil
	}

	ids := make([]uint64, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	posts, err := s.postRepo.GetPostByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	postMap := make(map[uint64]*model.Post, len(posts))
	for _, post := range posts {
		if post.IsActive {
			postMap[post.ID] = post
		}
	}

	// 保持 ES 相关度顺序
	result := make([]*dto.PostDTO, 0, len(docs))
	for _, doc := range docs {
		if post, ok := postMap[doc.ID]; ok {
			result = append(result, s.toPostDTO(ctx, post, true))
		}
	}
	return result, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, isAdmin bool, req *dto.UpdatePostDTO) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if !post.IsActive {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID && !isAdmin {
		return nil, UnauthorizedError
	}

	post.Title = req.Title
	post.Content = req.Content
	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	s.indexPost(ctx, post)

	return s.toPostDTO(ctx, post, true), nil
}

func (s *postServiceImpl) PinPost(ctx context.Context, postID uint64, pinned bool) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if !post.IsActive {
		return ErrPostNotFound
	}
	return s.postRepo.UpdatePinned(ctx, postID, pinned)
}

// DeletePost 软删除：标记 + 撤出索引，物理删除由清理任务完成
func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID uint64, isAdmin bool) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if !post.IsActive {
		return ErrPostNotFound
	}
	if post.UserID != userID && !isAdmin {
		return UnauthorizedError
	}

	if err = s.postRepo.SoftDeletePost(ctx, postID); err != nil {
		return err
	}

	if s.postESRepo != nil {
		if err = s.postESRepo.DeletePost(ctx, postID); err != nil {
			log.WarnContext(ctx, "删除帖子索引失败", "postID", postID, "err", err)
		}
	}
	return nil
}

func (s *postServiceImpl) indexPost(ctx context.Context, post *model.Post) {
	if s.postESRepo == nil {
		return
	}
	doc := &es.PostES{
		ID:           post.ID,
		UserID:       post.UserID,
		BoardType:    post.BoardType,
		Title:        post.Title,
		Content:      post.Content,
		UserNickname: post.User.Nickname,
		IsActive:     post.IsActive,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
	if err := s.postESRepo.IndexPost(ctx, doc, post.UpdatedAt.UnixMilli()); err != nil {
		log.WarnContext(ctx, "写入帖子索引失败", "postID", post.ID, "err", err)
	}
}

// toPostDTO withPending 时叠加 Redis 中尚未落库的浏览增量
func (s *postServiceImpl) toPostDTO(ctx context.Context, post *model.Post, withPending bool) *dto.PostDTO {
	viewCount := post.ViewCount
	if withPending {
		delta, err := redis.GetInt64(ctx, consts.PostViewKey+strconv.FormatUint(post.ID, 10))
		if err == nil {
			viewCount += delta
		}
	}

	return &dto.PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		BoardType: post.BoardType,
		IsPinned:  post.IsPinned,
		ViewCount: viewCount,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		UpdatedAt: post.UpdatedAt.Format(time.RFC3339),
		UserID:    post.UserID,
		Nickname:  post.User.Nickname,
		AvatarURL: post.User.AvatarURL,
	}
}

func isBoardType(boardType string) bool {
	switch boardType {
	case consts.BoardTypeNotice, consts.BoardTypeFree, consts.BoardTypeEvent, consts.BoardTypeReview:
		return true
	}
	return false
}
