// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws_test

import (
	"context"
	"errors"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/xmldiff/internal/aws"
	"github.com/tfctl/xmldiff/internal/aws/awstest"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected aws.Location
		wantErr  bool
	}{
		{name: "simple", uri: "s3://bucket/key.xml", expected: aws.Location{Bucket: "bucket", Key: "key.xml"}},
		{name: "nested key", uri: "s3://b/dir/sub/x.xml", expected: aws.Location{Bucket: "b", Key: "dir/sub/x.xml"}},
		{name: "no key", uri: "s3://bucket", wantErr: true},
		{name: "empty key", uri: "s3://bucket/", wantErr: true},
		{name: "no bucket", uri: "s3:///key", wantErr: true},
		{name: "wrong scheme", uri: "gs://bucket/key", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := aws.ParseURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, loc)
			assert.Equal(t, tt.uri, loc.String())
		})
	}
}

func TestIsURI(t *testing.T) {
	assert.True(t, aws.IsURI("s3://b/k"))
	assert.False(t, aws.IsURI("expected.xml"))
	assert.False(t, aws.IsURI("/tmp/s3://x"))
}

func TestFetchAndUpload(t *testing.T) {
	ctx := context.Background()
	store := awstest.NewStore()
	loc := aws.Location{Bucket: "reports", Key: "run/differences.json"}

	err := aws.Upload(ctx, store, loc, []byte(`{"rows":[]}`), "application/json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", store.ContentTypes["reports/run/differences.json"])

	data, err := aws.Fetch(ctx, store, loc)
	require.NoError(t, err)
	assert.Equal(t, `{"rows":[]}`, string(data))
}

func TestFetchMissing(t *testing.T) {
	_, err := aws.Fetch(context.Background(), awstest.NewStore(), aws.Location{Bucket: "b", Key: "nope"})

	var nsk *types.NoSuchKey
	assert.True(t, errors.As(err, &nsk))
}

func TestUploadFailure(t *testing.T) {
	store := awstest.NewStore()
	store.PutErr = errors.New("access denied")

	err := aws.Upload(context.Background(), store, aws.Location{Bucket: "b", Key: "k"}, []byte("x"), "")
	assert.EqualError(t, err, "access denied")
	assert.Empty(t, store.Objects)
}

func TestLoadAWSConfig_WithRegion(t *testing.T) {
	cfg, err := aws.LoadAWSConfig(context.Background(), aws.WithRegion("us-west-2"))

	assert.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

func TestLoadAWSConfig_OptionsOrder(t *testing.T) {
	cfg, err := aws.LoadAWSConfig(
		context.Background(),
		aws.WithRegion("us-east-1"),
		aws.WithRegion("eu-west-1"),
		aws.WithRetryer(func() awsv2.Retryer { return retry.NewStandard() }),
	)

	assert.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestDefaultClient(t *testing.T) {
	api, err := aws.DefaultClient(aws.WithRegion("us-east-1"))(context.Background())

	require.NoError(t, err)
	assert.IsType(t, &s3v2.Client{}, api)
}
