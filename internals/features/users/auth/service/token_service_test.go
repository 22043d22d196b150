package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pegawaiku_backend/internals/configs"
	authmw "pegawaiku_backend/internals/middlewares/auth"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	oldAccess, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = oldAccess
		configs.JWTRefreshSecret = oldRefresh
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setTestSecrets(t)

	userID := uuid.New()
	tokenString, err := IssueAccessToken(userID, "budi")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	claims := &authmw.AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v valid=%v", err, token != nil && token.Valid)
	}
	if claims.Subject != userID.String() {
		t.Errorf("subject = %s, want %s", claims.Subject, userID)
	}
	if claims.Username != "budi" {
		t.Errorf("username = %s, want budi", claims.Username)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setTestSecrets(t)

	userID := uuid.New()
	tokenString, err := IssueRefreshToken(userID)
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}

	got, err := ParseRefreshToken(tokenString)
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if got != userID {
		t.Errorf("user_id = %s, want %s", got, userID)
	}
}

func TestRefreshTokenWrongSecretRejected(t *testing.T) {
	setTestSecrets(t)

	// Access token tidak boleh diterima sebagai refresh token
	userID := uuid.New()
	accessToken, err := IssueAccessToken(userID, "budi")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseRefreshToken(accessToken); err == nil {
		t.Error("access token lolos sebagai refresh token")
	}

	if _, err := ParseRefreshToken("garbage.token.here"); err == nil {
		t.Error("token sampah lolos parse")
	}
}

func TestHashRefreshTokenDeterministic(t *testing.T) {
	setTestSecrets(t)

	a := HashRefreshToken("token-satu")
	b := HashRefreshToken("token-satu")
	c := HashRefreshToken("token-dua")

	if a != b {
		t.Error("hash harus deterministik untuk input sama")
	}
	if a == c {
		t.Error("input beda tidak boleh menghasilkan hash sama")
	}
	if len(a) != 64 { // hex dari SHA-256
		t.Errorf("panjang hash = %d, want 64", len(a))
	}
}
