package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/savedit/savedit/internal/config"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/models"
	"golang.org/x/net/html"
)

// metadataService is the concrete implementation of MetadataService: the
// page-scraping half of the quick-save flow. It fetches the target page
// and extracts Open Graph tags, falling back to plain <title> and meta
// description when a page carries no OG markup.
type metadataService struct {
	client *resty.Client
	logger *logger.Logger
}

func NewMetadataService(cfg config.Functions, logger *logger.Logger) MetadataService {
	client := resty.New().
		SetTimeout(cfg.MetadataTimeout).
		SetHeader("User-Agent", cfg.MetadataUserAgent).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	return &metadataService{
		client: client,
		logger: logger,
	}
}

// FetchMetadata fetches pageURL and extracts its display metadata.
//
// Returns:
//   - ErrInvalidDataProvided for non-http(s) or unparseable URLs.
//   - ErrMetadataFetch (wrapped) for network failures and non-2xx
//     responses. Callers treat the fetch as best effort.
//
// Extraction never fails: a page with no usable markup yields empty
// metadata and a nil error.
func (s *metadataService) FetchMetadata(ctx context.Context, pageURL string) (models.PageMetadata, error) {
	log := logger.FromContext(ctx)

	base, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		log.Error().Str("url", pageURL).Msg("fetch metadata: invalid url")
		return models.PageMetadata{}, ErrInvalidDataProvided
	}

	resp, err := s.client.R().SetContext(ctx).Get(base.String())
	if err != nil {
		log.Err(err).Str("url", pageURL).Msg("fetch metadata: request failed")
		return models.PageMetadata{}, fmt.Errorf("%w: %w", ErrMetadataFetch, err)
	}
	if resp.IsError() {
		log.Error().Str("url", pageURL).Int("status", resp.StatusCode()).Msg("fetch metadata: error response")
		return models.PageMetadata{}, fmt.Errorf("%w: status %d", ErrMetadataFetch, resp.StatusCode())
	}

	meta := parsePageMetadata(resp.Body(), base)
	return meta, nil
}

// parsePageMetadata walks the HTML document and collects, in order of
// preference, Open Graph properties, standard meta tags, the <title>
// element and the icon <link>. Relative image and icon URLs are resolved
// against the page URL.
func parsePageMetadata(body []byte, base *url.URL) models.PageMetadata {
	var meta models.PageMetadata
	var pageTitle string

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return meta
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if pageTitle == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					pageTitle = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				property := attr(n, "property")
				if property == "" {
					property = attr(n, "name")
				}
				content := strings.TrimSpace(attr(n, "content"))
				if content == "" {
					break
				}
				switch property {
				case "og:title":
					meta.Title = content
				case "og:description":
					meta.Description = content
				case "description":
					if meta.Description == "" {
						meta.Description = content
					}
				case "og:image", "og:image:url":
					if meta.Image == "" {
						meta.Image = resolveRef(base, content)
					}
				case "og:site_name":
					meta.SiteName = content
				}
			case "link":
				rel := strings.ToLower(attr(n, "rel"))
				if (rel == "icon" || rel == "shortcut icon" || rel == "apple-touch-icon") && meta.Favicon == "" {
					if href := strings.TrimSpace(attr(n, "href")); href != "" {
						meta.Favicon = resolveRef(base, href)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if meta.Title == "" {
		meta.Title = pageTitle
	}
	if meta.SiteName == "" {
		meta.SiteName = base.Hostname()
	}

	return meta
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func resolveRef(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}
