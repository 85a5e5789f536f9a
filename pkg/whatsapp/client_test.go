package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepLink(t *testing.T) {
	client := NewClient("https://wa.me")

	tests := []struct {
		name    string
		phone   string
		message string
		want    string
	}{
		{
			name:    "formatted phone is reduced to digits",
			phone:   "+49 (170) 123-4567",
			message: "hi",
			want:    "https://wa.me/491701234567?text=hi",
		},
		{
			name:    "local 08 prefix becomes 628",
			phone:   "0812345678",
			message: "hi",
			want:    "https://wa.me/62812345678?text=hi",
		},
		{
			name:    "spaces and newlines are percent-encoded",
			phone:   "123",
			message: "New order\n#RES-1001",
			want:    "https://wa.me/123?text=New%20order%0A%23RES-1001",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, client.DeepLink(testCase.phone, testCase.message))
		})
	}
}

func TestDeepLink_EmptyPhone(t *testing.T) {
	client := NewClient("https://wa.me")

	assert.Empty(t, client.DeepLink("", "message"))
	assert.Empty(t, client.DeepLink("ext. none", "message"))
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://wa.me/")

	assert.Equal(t, "https://wa.me/123?text=hi", client.DeepLink("123", "hi"))
}
