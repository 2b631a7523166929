package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/content-planner/configs"
)

// ObjectStorage stores generated media and returns where it can be read.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// R2Service uploads to a Cloudflare R2 bucket through the S3 API.
type R2Service struct {
	config cfg.Config

	once   sync.Once
	client putObjectAPI
	err    error
}

func NewR2Service(c cfg.Config) *R2Service {
	return &R2Service{config: c}
}

func (r *R2Service) r2Client(ctx context.Context) (putObjectAPI, error) {
	r.once.Do(func() {
		if r.client != nil {
			return
		}
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.R2.AccessKey, r.config.R2.SecretKey, "")),
			config.WithRegion("auto"),
		)
		if err != nil {
			slog.Info(err.Error())
			r.err = fmt.Errorf("loading storage config: %w", err)
			return
		}

		r.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.R2.AccountID))
		})
	})
	return r.client, r.err
}

func (r *R2Service) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	client, err := r.r2Client(ctx)
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	return r.location(key), nil
}

// location is the public URL of key when one is configured, the key itself
// otherwise.
func (r *R2Service) location(key string) string {
	base := strings.TrimRight(r.config.R2.PublicURL, "/")
	if base == "" {
		return key
	}
	return base + "/" + key
}
