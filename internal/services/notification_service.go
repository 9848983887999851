package services

import (
	"encoding/json"

	"socialink_backend/internal/logger"
	"socialink_backend/internal/models"
	"socialink_backend/internal/repositories"
	"socialink_backend/internal/services/dto"
	"socialink_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type NotificationService interface {
	List(userID uint, page, limit int) (*dto.NotificationListResponse, error)
	MarkRead(userID uint, req *dto.MarkReadRequest) (*dto.MessageResponse, error)
	Delete(userID uint, req *dto.MarkReadRequest) (*dto.MessageResponse, error)

	// Creation helpers are best-effort: failures are logged and swallowed so
	// a broken notification never fails the action it is attached to.
	NotifyPostLike(actor *models.User, post *models.Post)
	NotifyComment(actor *models.User, post *models.Post, commentID uint)
	NotifyCommentLike(actor *models.User, comment *models.Comment)
	NotifyFollow(actor *models.User, targetID uint)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) List(userID uint, page, limit int) (*dto.NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	notifications, err := s.notificationRepo.ListByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.notificationRepo.CountByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.NewNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: items,
		TotalCount:    total,
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationServiceImpl) MarkRead(userID uint, req *dto.MarkReadRequest) (*dto.MessageResponse, error) {
	var err error
	if req.All {
		err = s.notificationRepo.MarkAllRead(userID)
	} else {
		if len(req.IDs) == 0 {
			return nil, apperrors.NewBadRequestError("No notification ids provided")
		}
		err = s.notificationRepo.MarkRead(userID, req.IDs)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MessageResponse{Message: "Notifications marked as read"}, nil
}

func (s *NotificationServiceImpl) Delete(userID uint, req *dto.MarkReadRequest) (*dto.MessageResponse, error) {
	var err error
	if req.All {
		err = s.notificationRepo.DeleteAll(userID)
	} else {
		if len(req.IDs) == 0 {
			return nil, apperrors.NewBadRequestError("No notification ids provided")
		}
		err = s.notificationRepo.Delete(userID, req.IDs)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MessageResponse{Message: "Notifications deleted"}, nil
}

func (s *NotificationServiceImpl) NotifyPostLike(actor *models.User, post *models.Post) {
	s.create(&models.Notification{
		UserID:     post.UserID,
		Type:       models.NotificationTypeLike,
		Content:    actor.DisplayName() + " liked your post",
		FromUserID: actor.ID,
		PostID:     &post.ID,
		Data:       actorSnapshot(actor),
	})
}

func (s *NotificationServiceImpl) NotifyComment(actor *models.User, post *models.Post, commentID uint) {
	s.create(&models.Notification{
		UserID:     post.UserID,
		Type:       models.NotificationTypeComment,
		Content:    actor.DisplayName() + " commented on your post",
		FromUserID: actor.ID,
		PostID:     &post.ID,
		CommentID:  &commentID,
		Data:       actorSnapshot(actor),
	})
}

func (s *NotificationServiceImpl) NotifyCommentLike(actor *models.User, comment *models.Comment) {
	s.create(&models.Notification{
		UserID:     comment.UserID,
		Type:       models.NotificationTypeCommentLike,
		Content:    actor.DisplayName() + " liked your comment",
		FromUserID: actor.ID,
		PostID:     &comment.PostID,
		CommentID:  &comment.ID,
		Data:       actorSnapshot(actor),
	})
}

func (s *NotificationServiceImpl) NotifyFollow(actor *models.User, targetID uint) {
	s.create(&models.Notification{
		UserID:     targetID,
		Type:       models.NotificationTypeFollow,
		Content:    actor.DisplayName() + " started following you",
		FromUserID: actor.ID,
		Data:       actorSnapshot(actor),
	})
}

func (s *NotificationServiceImpl) create(notification *models.Notification) {
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.WithError(err).Error("failed to create notification",
			"type", notification.Type,
			"user_id", notification.UserID,
			"from_user_id", notification.FromUserID)
	}
}

// actorSnapshot freezes the actor's display fields at event time so clients
// can render the notification even if the actor later renames.
func actorSnapshot(actor *models.User) datatypes.JSON {
	snapshot, err := json.Marshal(dto.NewUserResponse(actor))
	if err != nil {
		return nil
	}
	return datatypes.JSON(snapshot)
}
