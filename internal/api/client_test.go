package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/moodlogapp/moodlog/internal/models"
	"github.com/moodlogapp/moodlog/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	gokeyring.MockInit()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New(t.TempDir())
	if err := sess.Login("test-token"); err != nil {
		t.Fatalf("session login failed: %v", err)
	}
	return New(srv.URL, sess), srv
}

func TestListEntriesSendsBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]models.Entry{{ID: 1, Text: "hello"}})
	}))

	entries, err := client.ListEntries(context.Background())
	if err != nil {
		t.Fatalf("ListEntries() failed: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-token")
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
	if len(entries) != 1 || entries[0].Text != "hello" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestUnauthorizedClearsSessionOnce(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.ListEntries(context.Background())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("error = %v, want ErrUnauthenticated", err)
	}

	// The distinguished outcome is a sentinel, not an *APIError carrying
	// inline detail
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("401 must not surface as a generic APIError")
	}
	if client.Session().Authenticated() {
		t.Error("session should be cleared after a 401")
	}
}

func TestRequestFailureCarriesServerDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "text must not be empty"})
	}))

	_, err := client.ListEntries(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d, want 422", apiErr.StatusCode)
	}
	if apiErr.Error() != "text must not be empty" {
		t.Errorf("Error() = %q, want server detail", apiErr.Error())
	}
	// A non-401 failure must not touch the session
	if !client.Session().Authenticated() {
		t.Error("session was cleared by a non-401 failure")
	}
}

func TestRequestFailureFallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListEntries(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Error() != "request failed (status 500)" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestLoginStoresToken(t *testing.T) {
	var gotBody models.Credentials
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("path = %q, want /login", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(models.Token{AccessToken: "fresh-token"})
	}))
	client.Session().Logout()

	if err := client.Login(context.Background(), "a@b.co", "secret"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if gotBody.Email != "a@b.co" || gotBody.Password != "secret" {
		t.Errorf("request body = %+v", gotBody)
	}
	if got := client.Session().Token(); got != "fresh-token" {
		t.Errorf("session token = %q, want fresh-token", got)
	}
}

func TestLoginRejectionIsNotSessionExpiry(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
	}))
	client.Session().Logout()

	err := client.Login(context.Background(), "a@b.co", "wrong")
	if errors.Is(err, ErrUnauthenticated) {
		t.Fatal("a rejected login must not look like an expired session")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Detail != "invalid credentials" {
		t.Errorf("error = %v, want APIError with credential detail", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.DeleteEntry(context.Background(), 42); err != nil {
		t.Fatalf("DeleteEntry() failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/entries/42" {
		t.Errorf("request = %s %s, want DELETE /entries/42", gotMethod, gotPath)
	}
}

func TestTechniquesUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.TechniqueRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.DistortionType != "catastrophizing" {
			t.Errorf("distortion_type = %q", req.DistortionType)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": models.TechniqueBundle{
				DistortionName: "Catastrophizing",
				Techniques:     []models.Technique{{Title: "Decatastrophizing"}},
			},
		})
	}))

	bundle, err := client.Techniques(context.Background(), "catastrophizing", "I failed my exam")
	if err != nil {
		t.Fatalf("Techniques() failed: %v", err)
	}
	if bundle.DistortionName != "Catastrophizing" || len(bundle.Techniques) != 1 {
		t.Errorf("bundle = %+v", bundle)
	}
}
