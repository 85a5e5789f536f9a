package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Client builds click-to-chat deep links addressed to a restaurant's
// WhatsApp number. No request is sent or awaited; the link is opened by
// the diner's browser.
type Client struct {
	Host string
}

func NewClient(host string) *Client {
	return &Client{Host: strings.TrimRight(host, "/")}
}

// Convert phone number from 08xxx to 628xxx format
func (c *Client) convertPhoneNumber(phone string) string {
	if strings.HasPrefix(phone, "08") {
		return "628" + phone[2:]
	}
	return phone
}

// digitsOnly strips everything but digits; deep links address the phone
// as a bare international number.
func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DeepLink returns <host>/<digits-only-phone>?text=<percent-encoded
// message>. An empty phone yields an empty link and the caller skips the
// notification.
func (c *Client) DeepLink(phone, message string) string {
	number := digitsOnly(c.convertPhoneNumber(phone))
	if number == "" {
		return ""
	}

	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("%s/%s?text=%s", c.Host, number, encoded)
}
