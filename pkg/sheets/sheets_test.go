package sheets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
)

func TestRelay_PostsPayload(t *testing.T) {
	var received models.SheetRelayPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
	}))
	defer srv.Close()

	payload := models.SheetRelayPayload{
		GuestName:   "An",
		Attendance:  "Có Thể Tham Dự",
		SubmittedAt: "15/02/2025 10:00:00",
	}
	if err := NewClient().Relay(srv.URL, payload); err != nil {
		t.Fatalf("Relay: %v", err)
	}
	if received.GuestName != "An" || received.Attendance != "Có Thể Tham Dự" {
		t.Errorf("relayed payload = %+v", received)
	}
}

func TestRelay_RejectsNonHTTPURL(t *testing.T) {
	err := NewClient().Relay("ftp://example.com", models.SheetRelayPayload{})
	if err != ErrInvalidWebhookURL {
		t.Errorf("err = %v, want ErrInvalidWebhookURL", err)
	}
}

func TestCheckConnection(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
		wantErr bool
	}{
		{
			name: "valid probe",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("checkConnection") != "true" {
					t.Error("probe must carry checkConnection=true")
				}
				json.NewEncoder(w).Encode(map[string]string{"sheetUrl": "https://docs.google.com/spreadsheets/d/abc"})
			},
			want: "https://docs.google.com/spreadsheets/d/abc",
		},
		{
			name: "missing sheetUrl",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
			},
			wantErr: true,
		},
		{
			name: "non-JSON body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>login</html>"))
			},
			wantErr: true,
		},
		{
			name: "error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			got, err := NewClient().CheckConnection(srv.URL)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckConnection: %v", err)
			}
			if got != tt.want {
				t.Errorf("sheetUrl = %q, want %q", got, tt.want)
			}
		})
	}
}
