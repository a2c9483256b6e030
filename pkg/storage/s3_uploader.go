package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/thatboywest/elearningbackend/pkg/config"
)

// S3Uploader stores chapter assets on S3-compatible object storage and
// serves them through a public bucket URL.
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Uploader connects to object storage and makes sure the asset
// bucket exists with a public read policy.
func NewS3Uploader(cfg *config.Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = cfg.S3PathStyle // Enable path-style URLs for MinIO
	})

	uploader := &S3Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
	}

	if err := uploader.ensureBucket(); err != nil {
		return nil, err
	}

	return uploader, nil
}

// Upload writes the object and returns its durable public URL.
func (u *S3Uploader) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", u.publicURL, key), nil
}

func (u *S3Uploader) ensureBucket() error {
	_, err := u.client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: &u.bucket,
	})
	if err == nil {
		return nil
	}

	var notFoundErr *types.NotFound
	if !errors.As(err, &notFoundErr) {
		return fmt.Errorf("failed to check bucket %s: %w", u.bucket, err)
	}

	if _, err := u.client.CreateBucket(context.TODO(), &s3.CreateBucketInput{
		Bucket: &u.bucket,
	}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", u.bucket, err)
	}

	// Chapter videos and resources are served directly by their URL
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": "*",
				"Action": "s3:GetObject",
				"Resource": "arn:aws:s3:::%s/*"
			}
		]
	}`, u.bucket)

	if _, err := u.client.PutBucketPolicy(context.TODO(), &s3.PutBucketPolicyInput{
		Bucket: &u.bucket,
		Policy: &policy,
	}); err != nil {
		return fmt.Errorf("failed to set public read policy for bucket %s: %w", u.bucket, err)
	}

	return nil
}
