package session

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	// MinSecretLength is the shortest secret accepted by NewCookieStore.
	MinSecretLength = 32

	// maxCookieSize leaves room for the cookie name and attributes under
	// the 4096 byte limit browsers enforce.
	maxCookieSize = 4000

	hkdfInfoSession = "todolists/session/v1"
)

var (
	// ErrSecretTooShort is returned for secrets under MinSecretLength bytes.
	ErrSecretTooShort = errors.New("session secret too short")

	// ErrTooLarge is returned when a sealed session does not fit in a cookie.
	ErrTooLarge = errors.New("session too large for cookie")

	errMalformed = errors.New("malformed session cookie")
)

// CookieStore keeps the whole session in the client's cookie, sealed with
// XChaCha20-Poly1305 so it can be neither read nor altered client side.
type CookieStore struct {
	opts CookieOptions
	aead cipher.AEAD
}

// NewCookieStore derives the sealing key from secret.
func NewCookieStore(opts CookieOptions, secret []byte) (*CookieStore, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(hkdfInfoSession)), key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &CookieStore{opts: opts, aead: aead}, nil
}

// Load implements Store. Cookies that fail to open are ignored.
func (c *CookieStore) Load(r *http.Request) (*Session, error) {
	ck, err := r.Cookie(c.opts.Name)
	if err != nil {
		return New(), nil
	}
	plain, err := c.open(ck.Value)
	if err != nil {
		return New(), nil
	}
	s := New()
	if err := json.Unmarshal(plain, s); err != nil {
		return New(), nil
	}
	return s, nil
}

// Save implements Store.
func (c *CookieStore) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	plain, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	value, err := c.seal(plain)
	if err != nil {
		return err
	}
	if len(value) > maxCookieSize {
		return ErrTooLarge
	}
	http.SetCookie(w, c.opts.cookie(value))
	return nil
}

func (c *CookieStore) seal(plain []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nonce, nonce, plain, []byte(c.opts.Name))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *CookieStore) open(value string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, errMalformed
	}
	n := c.aead.NonceSize()
	if len(raw) < n {
		return nil, errMalformed
	}
	return c.aead.Open(nil, raw[:n], raw[n:], []byte(c.opts.Name))
}
