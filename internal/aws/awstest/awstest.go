// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package awstest provides an in-memory S3 object store for tests.
package awstest

import (
	"bytes"
	"context"
	"io"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/tfctl/xmldiff/internal/aws"
)

// Store keeps objects keyed by "bucket/key". PutErr, when set, fails every
// PutObject.
type Store struct {
	Objects      map[string][]byte
	ContentTypes map[string]string
	PutErr       error
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		Objects:      map[string][]byte{},
		ContentTypes: map[string]string{},
	}
}

// Client returns a ClientFunc handing out s.
func (s *Store) Client() aws.ClientFunc {
	return func(context.Context) (aws.ObjectAPI, error) { return s, nil }
}

// GetObject implements aws.ObjectAPI.
func (s *Store) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	data, ok := s.Objects[awsv2.ToString(in.Bucket)+"/"+awsv2.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: awsv2.String("The specified key does not exist.")}
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

// PutObject implements aws.ObjectAPI.
func (s *Store) PutObject(_ context.Context, in *s3v2.PutObjectInput, _ ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error) {
	if s.PutErr != nil {
		return nil, s.PutErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := awsv2.ToString(in.Bucket) + "/" + awsv2.ToString(in.Key)
	s.Objects[key] = data
	s.ContentTypes[key] = awsv2.ToString(in.ContentType)
	return &s3v2.PutObjectOutput{}, nil
}
