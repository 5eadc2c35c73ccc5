package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookreviews/internal/auth"
	"bookreviews/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestUser is a fixture user for handler tests.
var TestUser = entity.User{
	ID:        "test-user-id-123",
	Firstname: "Test",
	Lastname:  "Reader",
	Email:     "test@example.com",
	Password:  "hashedpassword",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestOtherUser is a second fixture user for ownership tests.
var TestOtherUser = entity.User{
	ID:        "test-user-id-456",
	Firstname: "Other",
	Lastname:  "Reader",
	Email:     "other@example.com",
	Password:  "hashedpassword",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestBook is a fixture book for handler tests.
var TestBook = entity.Book{
	ID:            "test-book-id-789",
	Title:         "Test Book Title",
	Author:        "Test Author",
	Genre:         "Fiction",
	Description:   "A test book description",
	ISBN:          "978-0-123456-78-9",
	PublishedYear: 1999,
	Publisher:     "Test Publisher",
	Pages:         320,
	AddedBy:       TestUser.Public(),
	CreatedAt:     time.Now(),
	UpdatedAt:     time.Now(),
}

// TestReview is a fixture review authored by TestUser on TestBook.
var TestReview = entity.Review{
	ID:        "test-review-id-001",
	BookID:    TestBook.ID,
	User:      TestUser.Public(),
	Rating:    4,
	Comment:   "Enjoyed it.",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// GenerateTestToken issues a short-lived token for the given user.
func GenerateTestToken(secret, userID string) string {
	token, _ := auth.GenerateToken(secret, userID, "Test", "test@example.com", time.Hour)
	return token
}

// GenerateExpiredToken issues a token that expired an hour ago.
func GenerateExpiredToken(secret, userID string) string {
	c := auth.Claims{
		Sub:   userID,
		Name:  "Test",
		Email: "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a JSON request for handler tests.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a JSON request carrying a bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse is a decoded HTTP response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorder's JSON body.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
