// Package testutil holds helpers shared by package tests.
package testutil

import (
	"bytes"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// FixedClock returns a clock stuck at the given UTC date.
func FixedClock(year int, month time.Month, day int) func() time.Time {
	ts := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}
