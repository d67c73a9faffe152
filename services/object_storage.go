package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	appConfig "github.com/pawscare/vet-clinic-site/config"
	"github.com/pawscare/vet-clinic-site/utils"
)

// UploadURLExpiry is how long a presigned upload URL stays valid
const UploadURLExpiry = 15 * time.Minute

var (
	// ErrObjectNotFound is returned when the requested object does not exist in the bucket
	ErrObjectNotFound = errors.New("object not found")
	// ErrStorageNotConfigured is returned by every operation when no bucket is configured
	ErrStorageNotConfigured = errors.New("object storage is not configured")
)

// StoredObject is an open object body ready to be streamed to a client
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	// ContentLength is -1 when the store did not report a length
	ContentLength int64
}

// ObjectStorage defines the operations on the private/public object bucket
type ObjectStorage interface {
	// NewUploadURL presigns a PUT for a fresh private object and returns its servable path
	NewUploadURL(ctx context.Context) (uploadURL, objectPath string, err error)
	// NormalizeObjectPath maps an uploaded object URL to its "/objects/..." path
	NormalizeObjectPath(raw string) (string, error)
	// SetPublicACL makes a private object world-readable
	SetPublicACL(ctx context.Context, objectPath string) error
	// OpenPrivate opens an "/objects/..." path from the private directory
	OpenPrivate(ctx context.Context, objectPath string) (*StoredObject, error)
	// OpenPublic searches the public directories for filePath
	OpenPublic(ctx context.Context, filePath string) (*StoredObject, error)
}

// S3ObjectStorage implements ObjectStorage on an S3-compatible bucket
type S3ObjectStorage struct {
	client      *s3.Client
	presigner   *s3.PresignClient
	bucket      string
	privateDir  string
	publicPaths []string
}

// NewS3ObjectStorage creates the S3 client described by the storage settings in cfg
func NewS3ObjectStorage(ctx context.Context, cfg *appConfig.Config) (*S3ObjectStorage, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.AWSS3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSS3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3ObjectStorage{
		client:      client,
		presigner:   s3.NewPresignClient(client),
		bucket:      cfg.AWSS3Bucket,
		privateDir:  cfg.PrivateObjectDir,
		publicPaths: cfg.PublicObjectSearchPaths,
	}, nil
}

// NewUploadURL presigns a PUT for private/uploads/<uuid>, valid for UploadURLExpiry
func (s *S3ObjectStorage) NewUploadURL(ctx context.Context) (string, string, error) {
	objectPath := utils.ObjectPathPrefix + "uploads/" + uuid.NewString()
	key, err := utils.ObjectKey(s.privateDir, objectPath)
	if err != nil {
		return "", "", err
	}

	request, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = UploadURLExpiry
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate presigned upload URL: %w", err)
	}

	log.Debug().Str("key", key).Msg("Generated presigned upload URL")
	return request.URL, objectPath, nil
}

// NormalizeObjectPath maps a bucket URL under the private directory to "/objects/..."
func (s *S3ObjectStorage) NormalizeObjectPath(raw string) (string, error) {
	return utils.NormalizeObjectURL(raw, s.bucket, s.privateDir)
}

// SetPublicACL grants public-read on the object behind objectPath
func (s *S3ObjectStorage) SetPublicACL(ctx context.Context, objectPath string) error {
	key, err := utils.ObjectKey(s.privateDir, objectPath)
	if err != nil {
		return err
	}

	_, err = s.client.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		if isNotFound(err) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("failed to set object ACL: %w", err)
	}
	return nil
}

// OpenPrivate opens the object behind an "/objects/..." path
func (s *S3ObjectStorage) OpenPrivate(ctx context.Context, objectPath string) (*StoredObject, error) {
	key, err := utils.ObjectKey(s.privateDir, objectPath)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, key)
}

// OpenPublic returns the first match for filePath across the public search paths
func (s *S3ObjectStorage) OpenPublic(ctx context.Context, filePath string) (*StoredObject, error) {
	for _, dir := range s.publicPaths {
		key, err := utils.PublicKey(dir, filePath)
		if err != nil {
			return nil, err
		}
		object, err := s.open(ctx, key)
		if errors.Is(err, ErrObjectNotFound) {
			continue
		}
		return object, err
	}
	return nil, ErrObjectNotFound
}

func (s *S3ObjectStorage) open(ctx context.Context, key string) (*StoredObject, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	return storedObjectFrom(out), nil
}

// storedObjectFrom wraps a GetObject response; an unknown length is reported as -1
func storedObjectFrom(out *s3.GetObjectOutput) *StoredObject {
	object := &StoredObject{
		Body:          out.Body,
		ContentType:   aws.ToString(out.ContentType),
		ContentLength: -1,
	}
	if out.ContentLength != nil {
		object.ContentLength = *out.ContentLength
	}
	if object.ContentType == "" {
		object.ContentType = "application/octet-stream"
	}
	return object
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "404":
			return true
		}
	}
	return false
}

// DisabledObjectStorage is used when no bucket is configured
type DisabledObjectStorage struct{}

func (DisabledObjectStorage) NewUploadURL(context.Context) (string, string, error) {
	return "", "", ErrStorageNotConfigured
}

func (DisabledObjectStorage) NormalizeObjectPath(raw string) (string, error) {
	if strings.HasPrefix(strings.TrimSpace(raw), utils.ObjectPathPrefix) {
		return utils.CleanObjectPath(strings.TrimSpace(raw))
	}
	return "", ErrStorageNotConfigured
}

func (DisabledObjectStorage) SetPublicACL(context.Context, string) error {
	return ErrStorageNotConfigured
}

func (DisabledObjectStorage) OpenPrivate(context.Context, string) (*StoredObject, error) {
	return nil, ErrStorageNotConfigured
}

func (DisabledObjectStorage) OpenPublic(context.Context, string) (*StoredObject, error) {
	return nil, ErrStorageNotConfigured
}
