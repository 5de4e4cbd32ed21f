package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NairoD34/bookmymovie/api"
	"github.com/NairoD34/bookmymovie/internal/validator"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           api.LoginRequest
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful login with demo credential",
			body: api.LoginRequest{
				Email:    "viewer@example.com",
				Password: "change-me-123",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: api.LoginRequest{
				Email:    "viewer@example.com",
				Password: "not-the-password",
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: "Invalid authentication credentials",
		},
		{
			name: "validation error - password too short",
			body: api.LoginRequest{
				Email:    "viewer@example.com",
				Password: "short",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be at least 8 characters long",
		},
		{
			name: "validation error - malformed email",
			body: api.LoginRequest{
				Email:    "not-an-email",
				Password: "change-me-123",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication()

			w, r := executeRequest(t, http.MethodPost, "/auth/login", tt.body)

			app.Login(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("Login() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var response api.LoginResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if response.Email != tt.body.Email {
					t.Errorf("Login() email = %v, want %v", response.Email, tt.body.Email)
				}

				claims := &jwt.RegisteredClaims{}
				_, err = jwt.ParseWithClaims(response.Token, claims, func(t *jwt.Token) (any, error) {
					return []byte(app.config.auth.secret), nil
				})
				if err != nil {
					t.Fatalf("Login() returned unparseable token: %v", err)
				}

				if claims.Subject != tt.body.Email {
					t.Errorf("token subject = %v, want %v", claims.Subject, tt.body.Email)
				}

				if claims.ID == "" {
					t.Error("token has no jti claim")
				}
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}
