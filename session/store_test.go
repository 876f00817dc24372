package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"examgen_client/listquery"
	"examgen_client/models"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Signing token failed: %v", err)
	}
	return signed
}

func TestStoreCreateGetDelete(t *testing.T) {
	store := NewStore(time.Hour)
	user := models.User{ID: 1, Email: "a@b.pl", Username: "ala"}

	sess := store.Create("token-1", user)
	if sess.ID == "" {
		t.Fatal("Expected a session id")
	}

	got, ok := store.Get(sess.ID)
	if !ok || got.Token != "token-1" || got.User.Username != "ala" {
		t.Fatalf("Unexpected session: %+v, ok=%v", got, ok)
	}

	store.Delete(sess.ID)
	if _, ok := store.Get(sess.ID); ok {
		t.Error("Expected the deleted session to be gone")
	}
}

func TestStoreUnknownID(t *testing.T) {
	store := NewStore(time.Hour)
	if _, ok := store.Get(""); ok {
		t.Error("Expected an empty id to resolve to nothing")
	}
	if _, ok := store.Get("deadbeef"); ok {
		t.Error("Expected an unknown id to resolve to nothing")
	}
}

func TestStoreTTL(t *testing.T) {
	store := NewStore(time.Minute)
	sess := store.Create("token-1", models.User{ID: 1})
	sess.CreatedAt = time.Now().Add(-2 * time.Minute)

	if _, ok := store.Get(sess.ID); ok {
		t.Error("Expected the expired session to be dropped on access")
	}
}

func TestAuthenticated(t *testing.T) {
	var nilSession *Session
	if nilSession.Authenticated() {
		t.Error("Expected a nil session to read as signed out")
	}
	if (&Session{}).Authenticated() {
		t.Error("Expected an empty token to read as signed out")
	}

	// Opaque tokens cannot be inspected, so they count as valid.
	if !(&Session{Token: "opaque-value"}).Authenticated() {
		t.Error("Expected a non-JWT token to count as valid")
	}

	live := signedToken(t, time.Now().Add(time.Hour))
	if !(&Session{Token: live}).Authenticated() {
		t.Error("Expected an unexpired JWT to count as valid")
	}

	expired := signedToken(t, time.Now().Add(-time.Hour))
	if (&Session{Token: expired}).Authenticated() {
		t.Error("Expected an expired JWT to read as signed out")
	}
}

func TestGenerationGuard(t *testing.T) {
	sess := &Session{}
	if !sess.BeginGeneration() {
		t.Fatal("Expected the first BeginGeneration to succeed")
	}
	if sess.BeginGeneration() {
		t.Error("Expected a second BeginGeneration to be rejected")
	}
	sess.EndGeneration()
	if !sess.BeginGeneration() {
		t.Error("Expected BeginGeneration to succeed again after EndGeneration")
	}
}

func TestListControllersAreLazyAndStable(t *testing.T) {
	sess := &Session{}
	fetch := func(ctx context.Context, q listquery.Query) (listquery.Result[models.GeneratedTask], error) {
		return listquery.Result[models.GeneratedTask]{}, nil
	}

	first := sess.HistoryList(fetch)
	second := sess.HistoryList(fetch)
	if first == nil || first != second {
		t.Error("Expected one history controller per session")
	}
}
