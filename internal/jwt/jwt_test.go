package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndGetClaims(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	userID := uuid.New()
	branchID := uuid.New()

	tests := []struct {
		name     string
		role     string
		branchID *uuid.UUID
	}{
		{name: "admin without branch", role: "admin", branchID: nil},
		{name: "manager with branch", role: "manager", branchID: &branchID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := j.Generate(ctx, userID, tt.role, tt.branchID)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := j.GetClaims(ctx, token)
			assert.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, tt.role, claims.Role)
			if tt.branchID == nil {
				assert.Nil(t, claims.BranchID)
			} else {
				assert.NotNil(t, claims.BranchID)
				assert.Equal(t, *tt.branchID, *claims.BranchID)
			}
		})
	}
}

func TestGetClaims_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)

	claims, err := j.GetClaims(context.Background(), "not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGetClaims_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute).Generate(ctx, uuid.New(), "admin", nil)
	assert.NoError(t, err)

	claims, err := New("secret-b", time.Minute).GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGetClaims_Expired(t *testing.T) {
	ctx := context.Background()
	j := New("secret", -time.Minute)

	token, err := j.Generate(ctx, uuid.New(), "admin", nil)
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, token)
			}
		})
	}
}
