package config

import "os"

const (
	EnvPhoneAccountSID = "NEWSDESK_PHONE_ACCOUNT_SID"
	EnvPhoneAuthToken  = "NEWSDESK_PHONE_AUTH_TOKEN"
	EnvPhoneFromNumber = "NEWSDESK_PHONE_FROM_NUMBER"
)

// PhoneConfig holds telephony credentials for interview call dispatch.
type PhoneConfig struct {
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
}

// Finalize applies environment variable overrides. Credentials are
// optional at startup; a missing configuration surfaces as a dispatch
// failure when a phone interview is attempted.
func (c *PhoneConfig) Finalize() error {
	c.loadEnv()
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *PhoneConfig) Merge(overlay *PhoneConfig) {
	if overlay.AccountSID != "" {
		c.AccountSID = overlay.AccountSID
	}
	if overlay.AuthToken != "" {
		c.AuthToken = overlay.AuthToken
	}
	if overlay.FromNumber != "" {
		c.FromNumber = overlay.FromNumber
	}
}

func (c *PhoneConfig) loadEnv() {
	if v := os.Getenv(EnvPhoneAccountSID); v != "" {
		c.AccountSID = v
	}
	if v := os.Getenv(EnvPhoneAuthToken); v != "" {
		c.AuthToken = v
	}
	if v := os.Getenv(EnvPhoneFromNumber); v != "" {
		c.FromNumber = v
	}
}
