package mailbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainEmail = "From: Acme Shop <orders@acme.example>\r\n" +
	"To: me@example.com\r\n" +
	"Subject: Order confirmation\r\n" +
	"Date: Wed, 05 Apr 2023 10:00:00 +0000\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Your total is £24.99.\r\n"

const multipartEmail = "From: billing@host.example\r\n" +
	"Subject: =?utf-8?q?Your_invoice?=\r\n" +
	"Date: Mon, 03 Apr 2023 08:30:00 +0100\r\n" +
	"Content-Type: multipart/alternative; boundary=XYZ\r\n" +
	"\r\n" +
	"--XYZ\r\n" +
	"Content-Type: text/html; charset=utf-8\r\n" +
	"\r\n" +
	"<p>ignore me</p>\r\n" +
	"--XYZ\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"Content-Transfer-Encoding: quoted-printable\r\n" +
	"\r\n" +
	"Amount due: =C2=A312.50\r\n" +
	"--XYZ--\r\n"

func TestParseRFC822_Plain(t *testing.T) {
	msg, err := parseRFC822([]byte(plainEmail))
	require.NoError(t, err)

	assert.Equal(t, "Order confirmation", msg.Subject)
	assert.Equal(t, "Acme Shop <orders@acme.example>", msg.From)
	assert.Equal(t, "Wed, 05 Apr 2023 10:00:00 +0000", msg.Date)
	assert.Contains(t, msg.Body, "£24.99")
}

func TestParseRFC822_MultipartPicksTextPlain(t *testing.T) {
	msg, err := parseRFC822([]byte(multipartEmail))
	require.NoError(t, err)

	assert.Equal(t, "Your invoice", msg.Subject)
	assert.Contains(t, msg.Body, "£12.50")
	assert.NotContains(t, msg.Body, "ignore me")
}

const base64Email = "From: shop@store.example\r\n" +
	"Subject: Receipt\r\n" +
	"Date: Thu, 06 Apr 2023 12:00:00 +0000\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"Content-Transfer-Encoding: base64\r\n" +
	"\r\n" +
	"T3JkZXIgdG90YWw6IMKjOS45OSBj\r\n" +
	"aGFyZ2VkIHRvZGF5Lg==\r\n"

func TestParseRFC822_Base64Body(t *testing.T) {
	msg, err := parseRFC822([]byte(base64Email))
	require.NoError(t, err)
	assert.Equal(t, "Order total: £9.99 charged today.", msg.Body)
}

func TestParseRFC822_Garbage(t *testing.T) {
	_, err := parseRFC822([]byte("not an email at all"))
	assert.Error(t, err)
}
