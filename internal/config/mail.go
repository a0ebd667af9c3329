package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvMailHost     = "NEWSDESK_MAIL_HOST"
	EnvMailPort     = "NEWSDESK_MAIL_PORT"
	EnvMailUsername = "NEWSDESK_MAIL_USERNAME"
	EnvMailPassword = "NEWSDESK_MAIL_PASSWORD"
	EnvMailFrom     = "NEWSDESK_MAIL_FROM"
	EnvMailDomain   = "NEWSDESK_MAIL_DOMAIN"
	EnvMailSender   = "NEWSDESK_MAIL_SENDER_NAME"
)

// MailConfig holds SMTP parameters for interview email dispatch.
type MailConfig struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	From       string `toml:"from"`
	Domain     string `toml:"domain"`
	SenderName string `toml:"sender_name"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *MailConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *MailConfig) Merge(overlay *MailConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.Username != "" {
		c.Username = overlay.Username
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.From != "" {
		c.From = overlay.From
	}
	if overlay.Domain != "" {
		c.Domain = overlay.Domain
	}
	if overlay.SenderName != "" {
		c.SenderName = overlay.SenderName
	}
}

func (c *MailConfig) loadDefaults() {
	if c.Port == 0 {
		c.Port = 587
	}
	if c.Domain == "" {
		c.Domain = "newsdesk.local"
	}
	if c.SenderName == "" {
		c.SenderName = "Editorial Desk"
	}
}

func (c *MailConfig) loadEnv() {
	if v := os.Getenv(EnvMailHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvMailPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvMailUsername); v != "" {
		c.Username = v
	}
	if v := os.Getenv(EnvMailPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvMailFrom); v != "" {
		c.From = v
	}
	if v := os.Getenv(EnvMailDomain); v != "" {
		c.Domain = v
	}
	if v := os.Getenv(EnvMailSender); v != "" {
		c.SenderName = v
	}
}

func (c *MailConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}
