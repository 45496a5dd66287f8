// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides the binary object store for uploaded media.
// It wraps the AWS SDK v2 S3 client configured for path-style access
// (required by CEPH/Hetzner-style providers) and keeps entity attachments
// in sync with their stored objects.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// BlobStore is the binary-store surface the attachment helper and the
// media handlers consume. *Client implements it; tests use a fake.
type BlobStore interface {
	Upload(ctx context.Context, contentType, ext string, body io.Reader, size int64) (string, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
	Delete(ctx context.Context, fileID string) error
	ViewURL(fileID string) string
	PreviewURL(fileID string, width, height, quality int) string
}

// Client is the S3-backed blob store. File ids are the object keys.
type Client struct {
	s3       *s3.Client
	bucket   string
	endpoint string
	// publicURL is an optional CDN/direct URL prefix for stored files.
	publicURL string
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, allowing the app to
// start without storage.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores an object with a generated key and returns the key as the
// file id. Objects are public-read so the derived view URL serves directly.
func (c *Client) Upload(ctx context.Context, contentType, ext string, body io.Reader, size int64) (string, error) {
	now := time.Now()
	fileID := fmt.Sprintf("uploads/%d/%02d/%s%s", now.Year(), now.Month(), uuid.NewString(), ext)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(fileID),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s: %w", fileID, err)
	}
	return fileID, nil
}

// Download retrieves a stored object's contents. Used by the preview
// endpoint to resize images on demand.
func (c *Client) Download(ctx context.Context, fileID string) ([]byte, error) {
	output, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 download %s: %w", fileID, err)
	}
	defer output.Body.Close()
	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read body %s: %w", fileID, err)
	}
	return data, nil
}

// Delete removes a stored object.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", fileID, err)
	}
	return nil
}

// ViewURL returns the directly renderable URL for a stored object.
// Uses the configured public URL if set, otherwise a path-style S3 URL.
func (c *Client) ViewURL(fileID string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + fileID
	}
	return c.endpoint + "/" + c.bucket + "/" + fileID
}

// PreviewURL returns the local media endpoint that serves a resized
// variant of the stored image. Zero dimensions mean "keep".
func (c *Client) PreviewURL(fileID string, width, height, quality int) string {
	v := url.Values{}
	if width > 0 {
		v.Set("w", strconv.Itoa(width))
	}
	if height > 0 {
		v.Set("h", strconv.Itoa(height))
	}
	if quality > 0 {
		v.Set("q", strconv.Itoa(quality))
	}
	u := "/media/preview/" + fileID
	if enc := v.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// IsNotFound reports whether err means the requested object does not
// exist in the bucket.
func IsNotFound(err error) bool {
	var missing *s3types.NoSuchKey
	return errors.As(err, &missing)
}

// ExtFromName returns the lowercase file extension of an uploaded name,
// or "" when it has none.
func ExtFromName(name string) string {
	return strings.ToLower(path.Ext(name))
}
