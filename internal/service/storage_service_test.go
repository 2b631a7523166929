package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/content-planner/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutObject struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutObject) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func newTestR2(put *fakePutObject, publicURL string) *R2Service {
	r := NewR2Service(cfg.Config{R2: cfg.R2{BucketName: "media", PublicURL: publicURL}})
	r.client = put
	return r
}

func TestR2Service_Upload(t *testing.T) {
	put := &fakePutObject{}
	r := newTestR2(put, "https://cdn.example.com/")

	loc, err := r.Upload(context.Background(), "content/videos/a.mp4", []byte("data"), "video/mp4")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/content/videos/a.mp4", loc)
	assert.Equal(t, "media", aws.ToString(put.input.Bucket))
	assert.Equal(t, "content/videos/a.mp4", aws.ToString(put.input.Key))
	assert.Equal(t, "video/mp4", aws.ToString(put.input.ContentType))
	assert.Equal(t, []byte("data"), put.body)
}

func TestR2Service_UploadWithoutPublicURL(t *testing.T) {
	r := newTestR2(&fakePutObject{}, "")

	loc, err := r.Upload(context.Background(), "k", []byte("x"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "k", loc)
}

func TestR2Service_UploadError(t *testing.T) {
	r := newTestR2(&fakePutObject{err: errors.New("denied")}, "")

	_, err := r.Upload(context.Background(), "k", []byte("x"), "image/png")
	assert.ErrorContains(t, err, "denied")
}
