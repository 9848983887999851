package oauth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the subset of the Google userinfo response the platform needs.
type Profile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// GoogleClient wraps the Google OAuth2 code flow.
type GoogleClient struct {
	config      *oauth2.Config
	stateSecret []byte
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	StateSecret  string
}

func NewGoogleClient(cfg GoogleConfig) *GoogleClient {
	return &GoogleClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		stateSecret: []byte(cfg.StateSecret),
	}
}

// AuthURL builds the consent-screen redirect URL. The state parameter is an
// HMAC over the nonce so the callback can verify it without server storage.
func (c *GoogleClient) AuthURL(nonce string) string {
	return c.config.AuthCodeURL(c.signState(nonce), oauth2.AccessTypeOffline)
}

// VerifyState checks a state value returned by the callback against the
// nonce it was issued for.
func (c *GoogleClient) VerifyState(nonce, state string) bool {
	return hmac.Equal([]byte(c.signState(nonce)), []byte(state))
}

func (c *GoogleClient) signState(nonce string) string {
	mac := hmac.New(sha256.New, c.stateSecret)
	mac.Write([]byte(nonce))
	return nonce + "." + hex.EncodeToString(mac.Sum(nil))
}

// Exchange trades the authorization code for the user's Google profile.
func (c *GoogleClient) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	client := c.config.Client(ctx, token)
	resp, err := client.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("userinfo request failed with status %d: %s", resp.StatusCode, body)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("userinfo response missing email")
	}
	return &profile, nil
}
