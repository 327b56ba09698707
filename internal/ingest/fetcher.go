// Package ingest implements the scraping pipeline: fetch an external source,
// parse it into items, skip what the store already has, insert the rest, and
// report counts. Sources and the normalizer are injected so runs are
// stateless and testable.
package ingest

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/mmcdole/gofeed"
)

const fetchTimeout = 15 * time.Second

// Item is one externally published posting before any processing.
type Item struct {
	Title     string
	Link      string
	Content   string
	Published time.Time
}

// Fetcher retrieves items from one external source.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// FeedFetcher reads an RSS/Atom feed.
type FeedFetcher struct {
	url    string
	parser *gofeed.Parser
}

func NewFeedFetcher(feedURL string) *FeedFetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: fetchTimeout}
	return &FeedFetcher{url: feedURL, parser: parser}
}

func (f *FeedFetcher) Fetch(ctx context.Context) ([]Item, error) {
	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		item := Item{
			Title:   it.Title,
			Link:    it.Link,
			Content: it.Content,
		}
		if item.Content == "" {
			item.Content = it.Description
		}
		if it.PublishedParsed != nil {
			item.Published = *it.PublishedParsed
		}
		items = append(items, item)
	}
	return items, nil
}

// PageFetcher scrapes a job-board listing page with CSS selectors.
type PageFetcher struct {
	URL string

	// Selectors for one listing card and its fields.
	CardSelector    string
	TitleSelector   string
	LinkSelector    string
	ContentSelector string
}

func (f *PageFetcher) Fetch(ctx context.Context) ([]Item, error) {
	parsed, err := url.Parse(f.URL)
	if err != nil {
		return nil, err
	}

	c := colly.NewCollector(
		colly.AllowedDomains(parsed.Host),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(fetchTimeout)

	var items []Item
	c.OnHTML(f.CardSelector, func(e *colly.HTMLElement) {
		items = append(items, Item{
			Title:   e.ChildText(f.TitleSelector),
			Link:    e.Request.AbsoluteURL(e.ChildAttr(f.LinkSelector, "href")),
			Content: e.ChildText(f.ContentSelector),
		})
	})

	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		log.Printf("[ingest] request %v failed: %v", r.Request.URL, err)
		fetchErr = err
	})

	if err := c.Visit(f.URL); err != nil {
		return nil, err
	}
	c.Wait()

	if fetchErr != nil && len(items) == 0 {
		return nil, fetchErr
	}
	return items, nil
}
