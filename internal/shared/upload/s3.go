package upload

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	appconfig "github.com/harulog/haru-diary/go-api-server/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Storage uploads post photos to an S3-compatible bucket
// (AWS S3 or MinIO with a custom endpoint).
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Storage(ctx context.Context, cfg appconfig.UploadConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("upload: AWS 설정 로드 실패: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			// MinIO 등 커스텀 엔드포인트는 path-style 접근 필요
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: cfg.BaseURL,
	}, nil
}

// objectKey partitions uploads by date to keep bucket listings usable.
func objectKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("diary/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), filepath.Ext(filename))
}

func (s *S3Storage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	key := objectKey(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("upload: 파일 열기 실패: %w", err)
	}
	defer src.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(file.Size),
		ContentType:   aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("upload: S3 업로드 실패: %w", err)
	}

	if s.baseURL != "" {
		return s.baseURL + "/" + key, nil
	}
	return key, nil
}
