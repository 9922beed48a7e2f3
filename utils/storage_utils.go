package utils

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// ImageStorage uploads listing photos to an S3-compatible object store and
// removes them again by key. The object key doubles as the public deletion
// handle stored next to each image URL.
type ImageStorage struct {
	client   *s3.S3
	bucket   string
	endpoint string
}

type ImageStorageConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
}

func NewImageStorage(cfg ImageStorageConfig) (*ImageStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("image storage: bucket is required")
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(cfg.Region),
		Endpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey, cfg.SecretKey, "",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("image storage: %w", err)
	}
	return &ImageStorage{
		client:   s3.New(sess),
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
	}, nil
}

// Upload stores the file under folder/fileName and returns the public URL
// together with the object key needed to delete it later.
func (s *ImageStorage) Upload(file []byte, fileName, folder, contentType string) (url string, key string, err error) {
	key = fmt.Sprintf("%s/%s", folder, fileName)

	_, err = s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", "", fmt.Errorf("unable to upload file to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), key, nil
}

// Delete removes a previously uploaded object by its key.
func (s *ImageStorage) Delete(key string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("unable to delete file from S3: %w", err)
	}
	return nil
}
