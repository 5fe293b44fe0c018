package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService(t *testing.T) {
	svc := NewTokenService("s3cret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		tok, err := svc.Issue(42, RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id, err := svc.Verify(tok)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.UserID != 42 || !id.IsAdmin() {
			t.Fatalf("unexpected identity: %+v", id)
		}
	})

	t.Run("unknown role becomes user", func(t *testing.T) {
		tok, _ := svc.Issue(7, "root")
		id, err := svc.Verify(tok)
		if err != nil || id.Role != RoleUser {
			t.Fatalf("unexpected identity %+v, %v", id, err)
		}
	})

	t.Run("invalid subject", func(t *testing.T) {
		if _, err := svc.Issue(0, RoleUser); !errors.Is(err, ErrInvalidSubject) {
			t.Fatalf("expected ErrInvalidSubject, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, _ := NewTokenService("other", time.Hour).Issue(7, RoleUser)
		if _, err := svc.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenService("s3cret", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		tok, _ := old.Issue(7, RoleUser)
		if _, err := svc.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("non numeric subject", func(t *testing.T) {
		c := jwt.RegisteredClaims{Subject: "abc", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("s3cret"))
		if _, err := svc.Verify(tok); !errors.Is(err, ErrInvalidSubject) {
			t.Fatalf("expected ErrInvalidSubject, got %v", err)
		}
	})
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: " 99 ", want: 99},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "x", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseUserID(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("ParseUserID(%q) = %v, %v", tt.in, got, err)
		}
	}
}
