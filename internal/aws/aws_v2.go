// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/xmldiff/internal/log"
)

// Scheme prefixes every S3 URI accepted by this package.
const Scheme = "s3://"

// ObjectAPI is the subset of the S3 client used here.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// ClientFunc builds an ObjectAPI on demand, so local-only runs never touch the
// AWS config chain.
type ClientFunc func(ctx context.Context) (ObjectAPI, error)

// Location is a parsed s3://bucket/key URI.
type Location struct {
	Bucket string
	Key    string
}

func (l Location) String() string {
	return Scheme + l.Bucket + "/" + l.Key
}

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
}

// Option customizes how AWS config is loaded. With no options the shell's
// setup is inherited (AWS_PROFILE, shared config, env, IMDS).
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; SDK defaults are used otherwise.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// LoadAWSConfig loads AWS SDK v2 config with the given overrides applied.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("aws opts applied: profile=%s, region=%s", o.profile, o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return awsv2.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// NewS3 constructs an S3 client from cfg.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}

// DefaultClient returns a ClientFunc that loads the AWS config with opts and
// builds a real S3 client.
func DefaultClient(opts ...Option) ClientFunc {
	return func(ctx context.Context) (ObjectAPI, error) {
		cfg, err := LoadAWSConfig(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return NewS3(cfg), nil
	}
}

// IsURI reports whether path uses the s3:// scheme.
func IsURI(path string) bool {
	return strings.HasPrefix(path, Scheme)
}

// ParseURI splits an s3://bucket/key URI. Both parts must be non-empty.
func ParseURI(uri string) (Location, error) {
	rest, ok := strings.CutPrefix(uri, Scheme)
	if !ok {
		return Location{}, fmt.Errorf("not an s3 uri: %q", uri)
	}

	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return Location{}, fmt.Errorf("s3 uri needs a bucket and a key: %q", uri)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// Fetch reads the whole object at loc.
func Fetch(ctx context.Context, api ObjectAPI, loc Location) ([]byte, error) {
	out, err := api.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(loc.Bucket),
		Key:    awsv2.String(loc.Key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", loc, err)
	}
	log.Debugf("s3 fetched: uri=%s bytes=%d", loc, len(data))
	return data, nil
}

// Upload replaces the object at loc with body in a single PutObject.
func Upload(ctx context.Context, api ObjectAPI, loc Location, body []byte, contentType string) error {
	in := &s3v2.PutObjectInput{
		Bucket:        awsv2.String(loc.Bucket),
		Key:           awsv2.String(loc.Key),
		Body:          bytes.NewReader(body),
		ContentLength: awsv2.Int64(int64(len(body))),
	}
	if contentType != "" {
		in.ContentType = awsv2.String(contentType)
	}

	if _, err := api.PutObject(ctx, in); err != nil {
		return err
	}
	log.Debugf("s3 uploaded: uri=%s bytes=%d", loc, len(body))
	return nil
}
