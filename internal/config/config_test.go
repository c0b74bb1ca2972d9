package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/service"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
listen = ":9000"

[store]
backend = "redis"

[store.redis]
addr = "redis.lan:6379"
db = 2

[[service]]
id = "pve"
name = "Proxmox"
kind = "vmhost"
home = "main"

[[service]]
id = "adguard"
kind = "dnsfilter"
home = "lab"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Listen != ":9000" {
		t.Errorf("Listen = %q, want :9000", cfg.Listen)
	}
	if cfg.Store.Backend != BackendRedis {
		t.Errorf("Backend = %q, want redis", cfg.Store.Backend)
	}
	if cfg.Store.Redis.Addr != "redis.lan:6379" || cfg.Store.Redis.DB != 2 {
		t.Errorf("Redis config = %+v", cfg.Store.Redis)
	}
	if len(cfg.Services) != 2 {
		t.Fatalf("service count = %d, want 2", len(cfg.Services))
	}
	if cfg.Services[0].Kind != service.KindVMHost {
		t.Errorf("first service kind = %s", cfg.Services[0].Kind)
	}
}

func TestLoadDefaultsWhenUnset(t *testing.T) {
	// Only a service block: listen and store keep their defaults.
	path := writeConfig(t, `
[[service]]
id = "qbit"
kind = "torrent"
home = "main"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":8420" {
		t.Errorf("Listen = %q, want default :8420", cfg.Listen)
	}
	if cfg.Store.Backend != BackendFile {
		t.Errorf("Backend = %q, want default file", cfg.Store.Backend)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.Code
	}{
		{
			name:     "UnknownBackend",
			content:  "[store]\nbackend = \"cassandra\"\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "UnknownKind",
			content:  "[[service]]\nid = \"x\"\nkind = \"toaster\"\nhome = \"main\"\n",
			wantCode: errors.ErrCodeInvalidKind,
		},
		{
			name:     "MissingServiceID",
			content:  "[[service]]\nkind = \"media\"\nhome = \"main\"\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "DuplicateServiceID",
			content:  "[[service]]\nid = \"a\"\nkind = \"media\"\nhome = \"main\"\n[[service]]\nid = \"a\"\nkind = \"torrent\"\nhome = \"main\"\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "BadHomeName",
			content:  "[[service]]\nid = \"a\"\nkind = \"media\"\nhome = \"../x\"\n",
			wantCode: errors.ErrCodeInvalidHome,
		},
		{
			name:     "MalformedTOML",
			content:  "listen = :nope",
			wantCode: errors.ErrCodeInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %s, want %s (%v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicit missing path must fail")
	}
}
