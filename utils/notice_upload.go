// utils/notice_upload.go
package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type NoticeR2Config struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	PublicURL       string
}

// Configured reports whether every required R2 parameter is present.
func (c NoticeR2Config) Configured() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.AccessKeySecret != "" && c.BucketName != ""
}

// NoticeR2Client uploads notice announcement images to Cloudflare R2 via
// the S3 API.
type NoticeR2Client struct {
	client *s3.Client
	config NoticeR2Config
}

func NewNoticeR2Client(cfg NoticeR2Config) (*NoticeR2Client, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("missing required R2 configuration parameters")
	}

	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.AccessKeySecret,
			"",
		)),
		config.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	// Verify bucket exists and we have permissions
	_, err = client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: aws.String(cfg.BucketName),
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") {
			return nil, fmt.Errorf("bucket %s not found or you don't have permission to access it", cfg.BucketName)
		}
		return nil, fmt.Errorf("failed to access bucket: %w", err)
	}

	return &NoticeR2Client{
		client: client,
		config: cfg,
	}, nil
}

func (r *NoticeR2Client) Upload(ctx context.Context, key string, content []byte, contentType string) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}
	return nil
}

func (r *NoticeR2Client) GetPublicURL() string {
	return r.config.PublicURL
}

// UploadNoticeImage uploads an announcement image to R2 under the
// "notice_images/" folder and returns its public URL.
func (r *NoticeR2Client) UploadNoticeImage(ctx context.Context, file io.Reader, originalFileName string) (string, error) {
	if file == nil {
		return "", fmt.Errorf("file reader cannot be nil")
	}
	if originalFileName == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	ext := filepath.Ext(originalFileName)
	uniqueName := fmt.Sprintf("notice_images/%s_%d%s", uuid.New().String(), time.Now().Unix(), ext)

	if err := r.Upload(ctx, uniqueName, content, getContentType(originalFileName)); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", r.config.PublicURL, uniqueName), nil
}

// DeleteNoticeFile deletes a file from R2.
func (r *NoticeR2Client) DeleteNoticeFile(ctx context.Context, fileName string) error {
	if fileName == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Extract just the filename part if a full URL is provided
	if strings.Contains(fileName, "/") {
		fileName = fileName[strings.LastIndex(fileName, "/")+1:]
	}

	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.config.BucketName),
		Key:    aws.String(fileName),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from R2: %w", err)
	}

	return nil
}

func getContentType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
