package database

import (
	"context"
	"testing"
)

func TestDynamoDBSettingsFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	s := DynamoDBSettingsFromEnv()
	if s.Region != "us-east-1" || s.AccessKeyID != "local" || s.SecretAccessKey != "local" {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.Endpoint != "http://dynamodb:8000" {
		t.Fatalf("unexpected endpoint: %s", s.Endpoint)
	}
}

func TestNewDynamoDBClient(t *testing.T) {
	c, err := NewDynamoDBClient(context.Background(), DynamoDBSettings{
		Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local", Endpoint: "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c == nil {
		t.Fatalf("expected client")
	}
}
