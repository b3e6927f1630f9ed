package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/session"
)

const testSecret = "test-secret-at-least-32-characters-long"

// requestWithCookies replays the cookies a recorder captured onto a
// fresh request, like a browser would on the next page load.
func requestWithCookies(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
	}
	return r
}

func TestStore_SaveThenCurrent(t *testing.T) {
	store := session.NewStore(testSecret, false)

	w := httptest.NewRecorder()
	identity := domain.Identity{ID: 7, Username: "alice", Email: "a@b.com"}
	require.NoError(t, store.Save(w, identity))

	got := store.Current(requestWithCookies(w))
	assert.Equal(t, identity, got)
	assert.False(t, got.IsSentinel())
}

func TestStore_NoCookieIsSentinel(t *testing.T) {
	store := session.NewStore(testSecret, false)

	got := store.Current(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, got.IsSentinel())
	assert.Equal(t, int64(-1), got.ID)
}

func TestStore_TamperedCookieIsSentinel(t *testing.T) {
	store := session.NewStore(testSecret, false)

	w := httptest.NewRecorder()
	require.NoError(t, store.Save(w, domain.Identity{ID: 7, Username: "alice"}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	token := w.Result().Cookies()[0].Value
	r.AddCookie(&http.Cookie{Name: session.IdentityCookie, Value: token[:len(token)-1] + "X"})

	assert.True(t, store.Current(r).IsSentinel())
}

func TestStore_WrongSecretIsSentinel(t *testing.T) {
	issuer := session.NewStore(testSecret, false)
	verifier := session.NewStore("another-secret-also-32-characters-xx", false)

	w := httptest.NewRecorder()
	require.NoError(t, issuer.Save(w, domain.Identity{ID: 7}))

	assert.True(t, verifier.Current(requestWithCookies(w)).IsSentinel())
}

func TestStore_ClearExpiresCookie(t *testing.T) {
	store := session.NewStore(testSecret, false)

	w := httptest.NewRecorder()
	store.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.IdentityCookie, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestStore_PendingRoundTrip(t *testing.T) {
	store := session.NewStore(testSecret, false)

	w := httptest.NewRecorder()
	p := session.PendingRegistration{Username: "alice", Website: "ciphertext"}
	require.NoError(t, store.SavePending(w, p))

	got, err := store.Pending(requestWithCookies(w))
	require.NoError(t, err)
	assert.Equal(t, p, *got)

	// A pending cookie must never read back as an identity.
	assert.True(t, store.Current(requestWithCookies(w)).IsSentinel())
}

func TestStore_PendingMissing(t *testing.T) {
	store := session.NewStore(testSecret, false)

	_, err := store.Pending(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, session.ErrNoPending)
}

func TestStore_HasIdentityIgnoresValidity(t *testing.T) {
	store := session.NewStore(testSecret, false)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, store.HasIdentity(r))

	// Presence is what counts, even for junk values.
	r.AddCookie(&http.Cookie{Name: session.IdentityCookie, Value: "garbage"})
	assert.True(t, store.HasIdentity(r))
	assert.True(t, store.Current(r).IsSentinel())
}
