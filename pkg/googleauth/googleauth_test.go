package googleauth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestVerifier(t *testing.T, clientID string, handler http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	v := NewVerifier(clientID)
	v.endpoint = srv.URL
	return v
}

func TestVerify_ValidToken(t *testing.T) {
	v := newTestVerifier(t, "client-123", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") != "tok" {
			t.Errorf("id_token = %q", r.URL.Query().Get("id_token"))
		}
		json.NewEncoder(w).Encode(Claims{
			Subject:       "google-uid-1",
			Email:         "an@example.com",
			EmailVerified: "true",
			Name:          "An Nguyễn",
			Audience:      "client-123",
		})
	})

	claims, err := v.Verify("tok")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "google-uid-1" || claims.Email != "an@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestVerify_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		token   string
		wantErr error
	}{
		{
			name:    "empty token",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			token:   "",
			wantErr: ErrInvalidToken,
		},
		{
			name: "rejected by google",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			token:   "bad",
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong audience",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(Claims{
					Subject: "u", Email: "e@x.com", EmailVerified: "true", Audience: "someone-else",
				})
			},
			token:   "tok",
			wantErr: ErrAudienceMismatch,
		},
		{
			name: "unverified email",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(Claims{
					Subject: "u", Email: "e@x.com", EmailVerified: "false", Audience: "client-123",
				})
			},
			token:   "tok",
			wantErr: ErrEmailNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVerifier(t, "client-123", tt.handler)
			if _, err := v.Verify(tt.token); err != tt.wantErr {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
