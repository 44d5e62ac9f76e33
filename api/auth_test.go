package api_test

import (
	"net/http"
	"testing"
)

func TestSignupAndSignin(t *testing.T) {
	srv, _, cleanup := setupServer(t, nil)
	defer cleanup()

	payload := map[string]any{
		"name":         "Ada",
		"email":        "ada@example.com",
		"password":     "correct-horse",
		"company_name": "Initech",
	}

	res, body := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "", payload)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("expected a token, got %#v", body)
	}

	// the issued token is accepted on protected routes
	res, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/questions?page=1", token, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with fresh token got %d", res.StatusCode)
	}

	// same email cannot sign up twice
	res, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "", payload)
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 got %d", res.StatusCode)
	}

	// signin with the right password
	res, body = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "", map[string]any{
		"email": "ada@example.com", "password": "correct-horse",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	if body["token"] == "" {
		t.Fatalf("expected token on signin")
	}

	// wrong password is rejected
	res, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "", map[string]any{
		"email": "ada@example.com", "password": "wrong",
	})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.StatusCode)
	}
}

func TestSignupValidation(t *testing.T) {
	srv, _, cleanup := setupServer(t, nil)
	defer cleanup()

	cases := []map[string]any{
		{"email": "a@example.com", "password": "long-enough", "company_name": "c"}, // missing name
		{"name": "n", "email": "not-an-email", "password": "long-enough", "company_name": "c"},
		{"name": "n", "email": "a@example.com", "password": "short", "company_name": "c"},
		{"name": "n", "email": "a@example.com", "password": "long-enough"}, // missing company
		{"name": "n", "email": "a@example.com", "password": "long-enough", "company_name": "c", "extra": true},
	}

	for i, payload := range cases {
		res, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "", payload)
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400 got %d", i, res.StatusCode)
		}
	}
}
