package security

import (
	"testing"
	"time"
)

const testSecret = "a-very-long-test-secret-of-32-bytes!!"

func TestDownloadTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.IssueDownloadToken("file-123")
	if err != nil {
		t.Fatalf("IssueDownloadToken failed: %v", err)
	}

	fileID, err := svc.ValidateDownloadToken(token)
	if err != nil {
		t.Fatalf("ValidateDownloadToken failed: %v", err)
	}
	if fileID != "file-123" {
		t.Errorf("fileID = %q, want file-123", fileID)
	}
}

func TestDownloadTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	verifier := NewTokenService("a-completely-different-secret-value!!", time.Hour)

	token, err := issuer.IssueDownloadToken("file-123")
	if err != nil {
		t.Fatalf("IssueDownloadToken failed: %v", err)
	}

	if _, err := verifier.ValidateDownloadToken(token); err == nil {
		t.Error("token signed with another secret validated successfully")
	}
}

func TestDownloadTokenExpired(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Minute)

	token, err := svc.IssueDownloadToken("file-123")
	if err != nil {
		t.Fatalf("IssueDownloadToken failed: %v", err)
	}

	if _, err := svc.ValidateDownloadToken(token); err == nil {
		t.Error("expired token validated successfully")
	}
}

func TestDownloadTokenGarbage(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)
	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := svc.ValidateDownloadToken(token); err == nil {
			t.Errorf("garbage token %q validated successfully", token)
		}
	}
}
