package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	if Cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", Cfg.Port)
	}
	if Cfg.MaxUploadSizeBytes != 20*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, want 20MB", Cfg.MaxUploadSizeBytes)
	}
	if Cfg.DownloadTokenExpiry != 24*time.Hour {
		t.Errorf("DownloadTokenExpiry = %v, want 24h", Cfg.DownloadTokenExpiry)
	}
	if Cfg.DefaultAIProvider != "openai" {
		t.Errorf("DefaultAIProvider = %q, want openai", Cfg.DefaultAIProvider)
	}
	if Cfg.EmailServiceProvider != "mock" {
		t.Errorf("EmailServiceProvider = %q, want mock", Cfg.EmailServiceProvider)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DOWNLOAD_TOKEN_EXPIRY", "2h")
	t.Setenv("EXTRACTION_TIMEOUT", "30s")
	t.Setenv("DEFAULT_AI_PROVIDER", "deepseek")

	LoadConfig()

	if Cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", Cfg.Port)
	}
	if Cfg.DownloadTokenExpiry != 2*time.Hour {
		t.Errorf("DownloadTokenExpiry = %v, want 2h", Cfg.DownloadTokenExpiry)
	}
	if Cfg.ExtractionTimeout != 30*time.Second {
		t.Errorf("ExtractionTimeout = %v, want 30s", Cfg.ExtractionTimeout)
	}
	if Cfg.DefaultAIProvider != "deepseek" {
		t.Errorf("DefaultAIProvider = %q, want deepseek", Cfg.DefaultAIProvider)
	}
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE_BYTES", "lots")
	t.Setenv("DOWNLOAD_TOKEN_EXPIRY", "soon")

	LoadConfig()

	if Cfg.MaxUploadSizeBytes != 20*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, want 20MB fallback", Cfg.MaxUploadSizeBytes)
	}
	if Cfg.DownloadTokenExpiry != 24*time.Hour {
		t.Errorf("DownloadTokenExpiry = %v, want 24h fallback", Cfg.DownloadTokenExpiry)
	}
}
