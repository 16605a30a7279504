package mailbox

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

const (
	gmailUser   = "me"
	maxPageSize = 500 // maximum the API allows per list call
)

// GmailSource implements MessageSource over the Gmail REST API. The caller
// supplies an authenticated service; token acquisition and persistence live
// outside this package.
type GmailSource struct {
	svc *gmail.Service
}

// NewGmailSource wraps an authenticated Gmail service.
func NewGmailSource(svc *gmail.Service) *GmailSource {
	return &GmailSource{svc: svc}
}

// Search lists every message ID matching query, following page tokens until
// the API stops returning one.
func (s *GmailSource) Search(ctx context.Context, query string) ([]string, error) {
	var ids []string
	pageToken := ""
	for {
		call := s.svc.Users.Messages.List(gmailUser).
			Q(query).
			MaxResults(maxPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing messages: %w", err)
		}
		for _, m := range resp.Messages {
			ids = append(ids, m.Id)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return ids, nil
		}
	}
}

// Fetch retrieves one message in raw RFC 822 form and extracts the headers
// and text body the pipeline needs.
func (s *GmailSource) Fetch(ctx context.Context, id string) (Message, error) {
	msg, err := s.svc.Users.Messages.Get(gmailUser, id).Format("raw").Context(ctx).Do()
	if err != nil {
		return Message{}, fmt.Errorf("fetching message %s: %w", id, err)
	}

	raw, err := base64.URLEncoding.DecodeString(msg.Raw)
	if err != nil {
		// The API strips padding on some responses.
		raw, err = base64.RawURLEncoding.DecodeString(msg.Raw)
		if err != nil {
			return Message{}, fmt.Errorf("decoding message %s: %w", id, err)
		}
	}

	return parseRFC822(raw)
}

// parseRFC822 pulls Subject, From, Date, and the first text/plain body out
// of a raw email.
func parseRFC822(raw []byte) (Message, error) {
	m, err := mail.ReadMessage(strings.NewReader(string(raw)))
	if err != nil {
		return Message{}, fmt.Errorf("parsing message: %w", err)
	}

	dec := new(mime.WordDecoder)
	subject := m.Header.Get("Subject")
	if decoded, err := dec.DecodeHeader(subject); err == nil {
		subject = decoded
	}
	from := m.Header.Get("From")
	if decoded, err := dec.DecodeHeader(from); err == nil {
		from = decoded
	}

	body, err := textBody(m.Header.Get("Content-Type"), m.Header.Get("Content-Transfer-Encoding"), m.Body)
	if err != nil {
		return Message{}, fmt.Errorf("extracting body: %w", err)
	}

	return Message{
		Subject: subject,
		From:    from,
		Date:    m.Header.Get("Date"),
		Body:    body,
	}, nil
}

// textBody returns the first text/plain payload, descending into nested
// multipart containers.
func textBody(contentType, transferEncoding string, r io.Reader) (string, error) {
	if contentType == "" {
		return decodeTransfer(transferEncoding, r)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("parsing content type %q: %w", contentType, err)
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		if mediaType != "text/plain" {
			return "", nil
		}
		return decodeTransfer(transferEncoding, r)
	}

	mr := multipart.NewReader(r, params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("reading multipart: %w", err)
		}

		body, err := textBody(
			part.Header.Get("Content-Type"),
			part.Header.Get("Content-Transfer-Encoding"),
			part,
		)
		if err != nil {
			return "", err
		}
		if body != "" {
			return body, nil
		}
	}
}

func decodeTransfer(encoding string, r io.Reader) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		data, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		// Bodies arrive line-wrapped; the decoder rejects the CRLFs.
		cleaned := strings.Map(func(c rune) rune {
			if c == '\r' || c == '\n' {
				return -1
			}
			return c
		}, string(data))
		decoded, err := base64.StdEncoding.DecodeString(cleaned)
		if err != nil {
			return "", fmt.Errorf("decoding base64 body: %w", err)
		}
		return string(decoded), nil
	case "quoted-printable":
		data, err := io.ReadAll(quotedprintable.NewReader(r))
		return string(data), err
	default:
		data, err := io.ReadAll(r)
		return string(data), err
	}
}
