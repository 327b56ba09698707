package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>وظائف</title>
    <item>
      <title>مطلوب مهندس - صحيفة سبق</title>
      <link>https://x/1</link>
      <description>تفاصيل الوظيفة</description>
      <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
    </item>
    <item>
      <title>مطلوب محاسب - صحيفة عاجل</title>
      <link>https://x/2</link>
      <description>تفاصيل أخرى</description>
    </item>
  </channel>
</rss>`

func TestFeedFetcher_ParsesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	items, err := NewFeedFetcher(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	// Titles come through raw; truncation happens in the pipeline, not here.
	if items[0].Title != "مطلوب مهندس - صحيفة سبق" {
		t.Errorf("title = %q", items[0].Title)
	}
	if items[0].Link != "https://x/1" {
		t.Errorf("link = %q", items[0].Link)
	}
	if items[0].Content != "تفاصيل الوظيفة" {
		t.Errorf("content = %q", items[0].Content)
	}
	if items[0].Published.IsZero() {
		t.Error("pubDate not parsed")
	}
	if !items[1].Published.IsZero() {
		t.Error("missing pubDate must stay zero")
	}
}

func TestFeedFetcher_UnreachableSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewFeedFetcher(srv.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected an error from a failing source")
	}
}
