package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"gymclub_backend/internals/configs"
	"gymclub_backend/internals/helpers/apperr"
)

// S3Store talks to AWS S3 (or a compatible endpoint) through aws-sdk-go-v2.
// The client is built once at startup from the config struct; nothing here
// reads the environment.
type S3Store struct {
	client   *s3.Client
	presign  *s3.PresignClient
	bucket   string
	resolver *Resolver
}

func NewS3Store(ctx context.Context, cfg configs.S3Config, resolver *Resolver) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// Path-style is what MinIO and Ceph RGW expect.
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:   client,
		presign:  s3.NewPresignClient(client),
		bucket:   cfg.Bucket,
		resolver: resolver,
	}, nil
}

// Put stores the blob under key with idempotent overwrite semantics and
// returns its public locator.
func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", apperr.StoreUnavailable("put", err)
	}
	return s.resolver.PublicURL(key), nil
}

// Delete removes the object behind a locator. A failed delete is surfaced
// to the caller as a lifecycle failure, not swallowed.
func (s *S3Store) Delete(ctx context.Context, locator string) error {
	key, err := s.resolver.KeyFromURL(locator)
	if err != nil {
		return apperr.StoreUnavailable("delete", err)
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return apperr.StoreUnavailable("delete", err)
	}
	return nil
}

// List enumerates objects under prefix. Pseudo-directory markers (keys
// ending in "/") are skipped.
func (s *S3Store) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var out []ObjectInfo
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, apperr.StoreUnavailable("list", err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil || *obj.Key == prefix {
				continue
			}
			key := *obj.Key
			if len(key) > 0 && key[len(key)-1] == '/' {
				continue
			}
			info := ObjectInfo{Key: key, URL: s.resolver.PublicURL(key)}
			if obj.Size != nil {
				info.Size = *obj.Size
			}
			if obj.LastModified != nil {
				info.LastModified = *obj.LastModified
			}
			out = append(out, info)
		}
	}
	return out, nil
}

// PresignPut issues a time-boxed direct-upload URL so large client uploads
// bypass the server. Expiry enforcement is entirely the store's.
func (s *S3Store) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (*PresignedUpload, error) {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	res, err := s.presign.PresignPutObject(ctx, input, func(o *s3.PresignOptions) {
		o.Expires = ttl
	})
	if err != nil {
		return nil, apperr.StoreUnavailable("presign", err)
	}
	log.Printf("[s3] presigned upload key=%s ttl=%s", key, ttl)
	return &PresignedUpload{
		UploadURL: res.URL,
		Key:       key,
		MediaURL:  s.resolver.PublicURL(key),
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}
