package mailbox

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/collate-dev/collate/internal/normalize"
)

// Header is the CSV header of the intermediate artifact. Column names and
// the date format below are a compatibility boundary with the consolidation
// pipeline; do not change them.
const Header = "Date,Amount,Supplier,Subject"

// scanDateFormat writes instants as "YYYY-MM-DD HH:MM:SS ±HHMM".
const scanDateFormat = "2006-01-02 15:04:05 -0700"

// Entry is one scanned email rendered as a transaction row.
type Entry struct {
	Date     time.Time // always UTC
	Amount   decimal.NullDecimal
	Supplier string
	Subject  string
}

// Summary reports what happened to a scan batch.
type Summary struct {
	Found     int // messages matching the search
	Processed int // rows produced
	Skipped   int // messages lost to fetch or date failures
}

// Scanner drives a MessageSource and turns matching emails into entries.
type Scanner struct {
	src MessageSource
	log zerolog.Logger
}

// NewScanner creates a Scanner logging skips to log.
func NewScanner(src MessageSource, log zerolog.Logger) *Scanner {
	return &Scanner{src: src, log: log}
}

// Scan searches the mailbox and fetches every hit. A message that cannot be
// fetched, decoded, or dated is logged and skipped; the batch always
// completes. Entries come back sorted by date ascending. Only a failed
// search itself is an error.
func (s *Scanner) Scan(ctx context.Context, query string) ([]Entry, Summary, error) {
	ids, err := s.src.Search(ctx, query)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("searching mailbox: %w", err)
	}

	sum := Summary{Found: len(ids)}
	var entries []Entry
	for _, id := range ids {
		msg, err := s.src.Fetch(ctx, id)
		if err != nil {
			s.log.Warn().Str("id", id).Err(err).Msg("skipping message")
			sum.Skipped++
			continue
		}

		date, err := mail.ParseDate(msg.Date)
		if err != nil {
			s.log.Warn().Str("id", id).Str("date", msg.Date).Msg("could not parse date")
			sum.Skipped++
			continue
		}

		entries = append(entries, Entry{
			Date:     date.UTC(),
			Amount:   normalize.EmailAmount(msg.Body),
			Supplier: supplier(msg.From),
			Subject:  msg.Subject,
		})
		sum.Processed++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, sum, nil
}

// supplier derives a counterparty name from a From header: the display name
// when present, the bare address otherwise.
func supplier(from string) string {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		// Malformed header: fall back to a raw split on '<'.
		if i := strings.IndexByte(from, '<'); i > 0 {
			if name := strings.TrimSpace(from[:i]); name != "" {
				return name
			}
			return strings.TrimRight(strings.TrimSpace(from[i+1:]), ">")
		}
		return strings.TrimSpace(from)
	}
	if addr.Name != "" {
		return addr.Name
	}
	return addr.Address
}

// WriteEntries writes entries as the intermediate CSV, header included.
func WriteEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		amount := ""
		if e.Amount.Valid {
			amount = e.Amount.Decimal.StringFixed(2)
		}
		row := []string{e.Date.Format(scanDateFormat), amount, e.Supplier, e.Subject}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
