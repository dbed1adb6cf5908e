// Package subsonic reads the artist catalog from a Subsonic-compatible
// server such as Navidrome.
package subsonic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"hoarder/internal/domain"
	"hoarder/internal/logger"
	"hoarder/internal/ports"
)

const (
	sourceName = "subsonic"

	clientName = "hoarder"
	apiVersion = "1.16.1"
)

// Client implements ports.CatalogSource
type Client struct {
	apiBase    string
	login      string
	password   string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// Ensure Client implements CatalogSource
var _ ports.CatalogSource = (*Client)(nil)

// NewClient creates a catalog client. apiBase is the REST root, e.g.
// "https://music.example.com/rest/".
func NewClient(apiBase, login, password string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if !strings.HasSuffix(apiBase, "/") {
		apiBase += "/"
	}
	return &Client{
		apiBase:    apiBase,
		login:      login,
		password:   password,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.Named(sourceName),
	}
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type artistsResponse struct {
	Response struct {
		Status  string    `json:"status"`
		Version string    `json:"version"`
		Error   *apiError `json:"error,omitempty"`
		Artists struct {
			Index []struct {
				Name   string `json:"name"`
				Artist []struct {
					ID            string `json:"id"`
					Name          string `json:"name"`
					AlbumCount    int    `json:"albumCount"`
					MusicBrainzID string `json:"musicBrainzId"`
				} `json:"artist"`
			} `json:"index"`
		} `json:"artists"`
	} `json:"subsonic-response"`
}

// GetArtists fetches every artist of the library, flattened across the
// alphabetical index.
func (c *Client) GetArtists(ctx context.Context) ([]domain.CatalogArtist, error) {
	params := url.Values{
		"u": {c.login},
		"c": {clientName},
		"v": {apiVersion},
		"p": {c.password},
		"f": {"json"},
	}
	endpoint := c.apiBase + "getArtists?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.SourceError{Source: sourceName, Kind: domain.SourceErrorTransport, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.SourceError{Source: sourceName, Kind: domain.SourceErrorTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &domain.SourceError{
			Source:  sourceName,
			Kind:    domain.SourceErrorTransport,
			Code:    resp.StatusCode,
			Message: strings.TrimSpace(string(body)),
		}
	}

	var payload artistsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &domain.SourceError{
			Source: sourceName,
			Kind:   domain.SourceErrorMalformed,
			Err:    errors.Wrap(err, "decoding getArtists response"),
		}
	}

	switch payload.Response.Status {
	case "ok":
	case "failed":
		srcErr := &domain.SourceError{Source: sourceName, Kind: domain.SourceErrorRemote}
		if payload.Response.Error != nil {
			srcErr.Code = payload.Response.Error.Code
			srcErr.Message = payload.Response.Error.Message
		}
		return nil, srcErr
	default:
		return nil, &domain.SourceError{
			Source:  sourceName,
			Kind:    domain.SourceErrorMalformed,
			Message: "unexpected status " + strconv.Quote(payload.Response.Status),
		}
	}

	var artists []domain.CatalogArtist
	for _, idx := range payload.Response.Artists.Index {
		for _, a := range idx.Artist {
			artists = append(artists, domain.CatalogArtist{
				Name:       a.Name,
				ExternalID: a.MusicBrainzID,
				AlbumCount: a.AlbumCount,
			})
		}
	}

	c.logger.Debugw("catalog fetched",
		logger.FieldCount, len(artists),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return artists, nil
}
