// Package mailbox turns a mailbox search into the intermediate transaction
// CSV consumed by the consolidation pipeline.
package mailbox

import (
	"context"
	"fmt"
	"strings"
)

// Message carries the only fields the pipeline reads from an email.
type Message struct {
	Subject string
	From    string
	Date    string // raw RFC 5322 Date header
	Body    string // first text/plain part
}

// MessageSource abstracts the mailbox. Search returns a flattened sequence
// of message IDs with pagination already exhausted; callers never see
// continuation tokens.
type MessageSource interface {
	Search(ctx context.Context, query string) ([]string, error)
	Fetch(ctx context.Context, id string) (Message, error)
}

// BuildQuery encodes a keyword-OR subject filter and an inclusive date
// range in Gmail search syntax, e.g.
// "subject:(order OR invoice OR receipt) after:2023/04/01 before:2024/04/10".
func BuildQuery(keywords []string, after, before string) string {
	return fmt.Sprintf("subject:(%s) after:%s before:%s",
		strings.Join(keywords, " OR "), after, before)
}
