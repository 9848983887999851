package services

import (
	"errors"

	"socialink_backend/internal/models"
	"socialink_backend/internal/repositories"
	"socialink_backend/internal/services/dto"
	"socialink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	defaultFeedPage  = 1
	defaultFeedLimit = 10
)

type PostService interface {
	GetPosts(query dto.FeedQuery, requesterID *uint) (*dto.FeedResponse, error)
	GetPostByID(postID uint, requesterID *uint) (*dto.PostDetailResponse, error)
	CreatePost(userID uint, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	DeletePost(userID, postID uint) error
	ToggleLike(userID, postID uint) (*dto.ToggleResponse, error)
}

type PostServiceImpl struct {
	postRepo      repositories.PostRepository
	commentRepo   repositories.CommentRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) PostService {
	return &PostServiceImpl{
		postRepo:      postRepo,
		commentRepo:   commentRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// GetPosts runs the hybrid cursor/offset feed query. A cursor filters
// id < cursor and ignores the page offset; otherwise the offset is
// (page-1)*limit. One extra row is fetched to probe for a next page.
func (s *PostServiceImpl) GetPosts(query dto.FeedQuery, requesterID *uint) (*dto.FeedResponse, error) {
	page := query.Page
	if page < 1 {
		page = defaultFeedPage
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	listQuery := repositories.PostListQuery{
		UserID: query.UserID,
		Cursor: query.Cursor,
		Limit:  limit + 1,
	}
	if query.Cursor == nil {
		listQuery.Offset = (page - 1) * limit
	}

	posts, err := s.postRepo.List(listQuery)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	hasNextPage := len(posts) > limit
	if hasNextPage {
		posts = posts[:limit]
	}

	var nextCursor *uint
	if hasNextPage {
		id := posts[len(posts)-1].ID
		nextCursor = &id
	}

	// The total is counted without the cursor filter so it stays stable
	// across a cursor walk.
	totalCount, err := s.postRepo.Count(query.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	items, err := s.buildPostResponses(posts, requesterID)
	if err != nil {
		return nil, err
	}

	return &dto.FeedResponse{
		Posts:       items,
		HasNextPage: hasNextPage,
		NextCursor:  nextCursor,
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}

func (s *PostServiceImpl) GetPostByID(postID uint, requesterID *uint) (*dto.PostDetailResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	items, err := s.buildPostResponses([]models.Post{*post}, requesterID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	commentItems, err := s.buildCommentResponses(comments, requesterID)
	if err != nil {
		return nil, err
	}

	return &dto.PostDetailResponse{
		PostResponse: items[0],
		Comments:     commentItems,
	}, nil
}

func (s *PostServiceImpl) CreatePost(userID uint, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	post := &models.Post{
		Content: req.Content,
		Image:   req.Image,
		UserID:  userID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	post.User = user

	response := dto.NewPostResponse(post, 0, 0, false)
	return &response, nil
}

func (s *PostServiceImpl) DeletePost(userID, postID uint) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}
	if post.UserID != userID {
		return apperrors.ErrNotPostOwner
	}
	if err := s.postRepo.Delete(postID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ToggleLike flips the like state for (userID, postID). The first transition
// to liked notifies the post owner unless the actor owns the post.
func (s *PostServiceImpl) ToggleLike(userID, postID uint) (*dto.ToggleResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	_, err = s.postRepo.FindLike(postID, userID)
	if err == nil {
		if err := s.postRepo.DeleteLike(postID, userID); err != nil &&
			!apperrors.Is(err, repositories.ErrLikeNotFound) {
			return nil, apperrors.InternalError(err)
		}
		return &dto.ToggleResponse{Active: false}, nil
	}
	if !apperrors.Is(err, repositories.ErrLikeNotFound) {
		return nil, apperrors.InternalError(err)
	}

	err = s.postRepo.CreateLike(&models.Like{PostID: postID, UserID: userID})
	if err != nil {
		// A concurrent toggle already inserted the row. Idempotent outcome,
		// no second notification.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &dto.ToggleResponse{Active: true}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	if post.UserID != userID {
		actor, err := s.userRepo.FindByID(userID)
		if err == nil {
			s.notifications.NotifyPostLike(actor, post)
		}
	}

	return &dto.ToggleResponse{Active: true}, nil
}

func (s *PostServiceImpl) buildPostResponses(posts []models.Post, requesterID *uint) ([]dto.PostResponse, error) {
	items := make([]dto.PostResponse, 0, len(posts))
	if len(posts) == 0 {
		return items, nil
	}

	ids := make([]uint, 0, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].ID)
	}

	likeCounts, err := s.postRepo.LikeCounts(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	commentCounts, err := s.postRepo.CommentCounts(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	liked := map[uint]bool{}
	if requesterID != nil {
		liked, err = s.postRepo.LikedByUser(*requesterID, ids)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	for i := range posts {
		post := &posts[i]
		items = append(items, dto.NewPostResponse(post,
			likeCounts[post.ID], commentCounts[post.ID], liked[post.ID]))
	}
	return items, nil
}

func (s *PostServiceImpl) buildCommentResponses(comments []models.Comment, requesterID *uint) ([]dto.CommentResponse, error) {
	items := make([]dto.CommentResponse, 0, len(comments))
	if len(comments) == 0 {
		return items, nil
	}

	ids := make([]uint, 0, len(comments))
	for i := range comments {
		ids = append(ids, comments[i].ID)
	}

	likeCounts, err := s.commentRepo.LikeCounts(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	liked := map[uint]bool{}
	if requesterID != nil {
		liked, err = s.commentRepo.LikedByUser(*requesterID, ids)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	for i := range comments {
		comment := &comments[i]
		items = append(items, dto.NewCommentResponse(comment,
			likeCounts[comment.ID], liked[comment.ID]))
	}
	return items, nil
}
