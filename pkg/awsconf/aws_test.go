package awsconf

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Region(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	cfg, err := Load(context.Background(), "sa-east-1")
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)
}

func TestNewDynamoDB_Endpoint(t *testing.T) {
	cfg := aws.Config{Region: "us-east-1"}

	local := NewDynamoDB(cfg, "http://localhost:8000")
	assert.Equal(t, "http://localhost:8000", aws.ToString(local.Options().BaseEndpoint))

	regional := NewDynamoDB(cfg, "")
	assert.Nil(t, regional.Options().BaseEndpoint)
}
