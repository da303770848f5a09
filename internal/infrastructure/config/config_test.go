package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOCK_DRIVER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != StorageFile || cfg.Storage.DataDir != "data" {
		t.Fatalf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.Lock.Driver != LockMemory || cfg.Lock.TTL != 10*time.Second {
		t.Fatalf("unexpected lock config: %+v", cfg.Lock)
	}
	if cfg.DynamoDB.OrdersTable != "orders" || cfg.DynamoDB.PaymentsTable != "invoice_payments" || cfg.DynamoDB.BundlesTable != "bundles" {
		t.Fatalf("unexpected table names: %+v", cfg.DynamoDB)
	}
	if cfg.Payments.MockEnabled() {
		t.Fatalf("payments mock must be off by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "DynamoDB")
	t.Setenv("DYNAMODB_ORDERS_TABLE", "print_orders")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOCK_DRIVER", "")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != StorageDynamoDB || cfg.DynamoDB.OrdersTable != "print_orders" {
		t.Fatalf("unexpected storage config: %+v %+v", cfg.Storage, cfg.DynamoDB)
	}
	if cfg.Lock.Driver != LockRedis {
		t.Fatalf("redis address should select the redis lock, got %q", cfg.Lock.Driver)
	}
	if cfg.Log.Format != "json" || !cfg.Payments.MockEnabled() {
		t.Fatalf("unexpected config: %+v %+v", cfg.Log, cfg.Payments)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Storage: StorageConfig{Driver: "postgres"}}
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownStorageDriver) {
		t.Fatalf("expected ErrUnknownStorageDriver, got %v", err)
	}

	cfg = Config{Storage: StorageConfig{Driver: StorageFile}, Lock: LockConfig{Driver: "etcd"}}
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownLockDriver) {
		t.Fatalf("expected ErrUnknownLockDriver, got %v", err)
	}
}

func TestPaymentsConfig_MockEnabled(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		if !(PaymentsConfig{Mock: v}).MockEnabled() {
			t.Fatalf("expected %q to enable mock mode", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off"} {
		if (PaymentsConfig{Mock: v}).MockEnabled() {
			t.Fatalf("expected %q to keep mock mode off", v)
		}
	}
}
