package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"merowoda-service/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentUploader stores a notice image and returns its public URL.
type AttachmentUploader interface {
	UploadNoticeImage(ctx context.Context, file io.Reader, originalFileName string) (string, error)
}

// NoticeService manages the public event announcements behind the
// announcements page.
type NoticeService struct {
	store    Store
	uploader AttachmentUploader // nil when object storage is not configured
}

func NewNoticeService(store Store, uploader AttachmentUploader) *NoticeService {
	return &NoticeService{store: store, uploader: uploader}
}

// Create validates and persists a new announcement. Every field is required.
func (n *NoticeService) Create(ctx context.Context, req *models.NoticeRequest) (*models.Notice, error) {
	cat, ok := models.ParseCategory(req.TypeOfNotice)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, req.TypeOfNotice)
	}
	if req.PublishedDate == nil || req.StartDate == nil || req.EndDate == nil {
		return nil, fmt.Errorf("publishedDate, startDate and endDate are required")
	}
	if req.StartTime == "" || req.EndTime == "" || req.Details == "" || req.ViewPage == "" {
		return nil, fmt.Errorf("startTime, endTime, details and viewPage are required")
	}

	notice := &models.Notice{
		ID:            uuid.New(),
		TypeOfNotice:  cat,
		PublishedDate: *req.PublishedDate,
		StartDate:     *req.StartDate,
		StartTime:     req.StartTime,
		EndDate:       *req.EndDate,
		EndTime:       req.EndTime,
		Details:       req.Details,
		ViewPage:      req.ViewPage,
	}
	if err := n.store.CreateNotice(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// List returns announcements, newest published first, optionally filtered
// by category.
func (n *NoticeService) List(ctx context.Context, typeOf string) ([]*models.Notice, error) {
	var filter *models.Category
	if typeOf != "" {
		cat, ok := models.ParseCategory(typeOf)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, typeOf)
		}
		filter = &cat
	}
	return n.store.Notices(ctx, filter)
}

func (n *NoticeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := n.store.DeleteNotice(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoticeNotFound
	}
	return err
}

// UploadAttachment stores a notice image in object storage and returns its
// public URL. Fails when storage was not configured at startup.
func (n *NoticeService) UploadAttachment(ctx context.Context, file io.Reader, filename string) (string, error) {
	if n.uploader == nil {
		return "", fmt.Errorf("attachment storage is not configured")
	}
	return n.uploader.UploadNoticeImage(ctx, file, filename)
}
