package database

import (
	"context"
	"testing"

	appconfig "recurring_dashboard/internal/infrastructure/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := NewDynamoDBConfig(ctx, appconfig.AWSConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local-key",
		SecretAccessKey: "local-secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %q", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		t.Fatalf("retrieve credentials: %v", err)
	}
	if creds.AccessKeyID != "local-key" || creds.SecretAccessKey != "local-secret" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestConnectDynamoDB_WithEndpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), appconfig.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("expected base endpoint to be set, got %v", got)
	}
}
