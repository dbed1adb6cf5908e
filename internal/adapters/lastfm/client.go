// Package lastfm queries the last.fm artist.getsimilar endpoint.
package lastfm

import (
	"bytes"
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
	sourceName = "lastfm"

	// DefaultAPIBase is the public last.fm endpoint
	DefaultAPIBase = "http://ws.audioscrobbler.com/2.0/"
	// DefaultLimit is used when the caller passes a non-positive limit
	DefaultLimit = 25

	maxBody = 4 << 20

	// errArtistNotFound is the only last.fm error code that describes the
	// artist rather than the request or the service.
	errArtistNotFound = 6
)

// Client implements ports.SimilaritySource
type Client struct {
	apiBase    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// Ensure Client implements SimilaritySource
var _ ports.SimilaritySource = (*Client)(nil)

// NewClient creates a last.fm client. An empty apiBase selects DefaultAPIBase.
func NewClient(apiBase, apiKey string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	return &Client{
		apiBase:    apiBase,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.Named(sourceName),
	}
}

// score accepts both JSON numbers and numeric strings; last.fm sends the
// latter.
type score float64

func (s *score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if str == "" {
			*s = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return errors.Wrapf(err, "match %q", str)
		}
		*s = score(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = score(f)
	return nil
}

type similarArtist struct {
	Name  string `json:"name"`
	MBID  string `json:"mbid"`
	Match score  `json:"match"`
}

// artistList accepts an array of artists or, for single results, a bare
// object.
type artistList []similarArtist

func (l *artistList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var one similarArtist
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*l = artistList{one}
		return nil
	}
	var many []similarArtist
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

type similarResponse struct {
	Error   int    `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	SimilarArtists *struct {
		Artist artistList `json:"artist"`
	} `json:"similarartists"`
}

// GetSimilarArtists returns up to limit artists similar to artist, in the
// order last.fm ranks them.
func (c *Client) GetSimilarArtists(ctx context.Context, artist string, limit int) ([]domain.Similarity, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	params := url.Values{
		"method":      {"artist.getsimilar"},
		"artist":      {artist},
		"autocorrect": {"1"},
		"limit":       {strconv.Itoa(limit)},
		"api_key":     {c.apiKey},
		"format":      {"json"},
	}
	endpoint := c.apiBase + "?" + params.Encode()

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

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &domain.SourceError{Source: sourceName, Kind: domain.SourceErrorTransport, Err: err}
	}

	var payload similarResponse
	decodeErr := json.Unmarshal(body, &payload)

	// last.fm reports failures as {error, message}. Only an unknown artist is
	// a verdict on the artist; rate limits, key problems and outages are
	// transient.
	if decodeErr == nil && payload.Error != 0 {
		kind := domain.SourceErrorTransport
		if payload.Error == errArtistNotFound && resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			kind = domain.SourceErrorRemote
		}
		return nil, &domain.SourceError{
			Source:  sourceName,
			Kind:    kind,
			Code:    payload.Error,
			Message: payload.Message,
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.SourceError{
			Source:  sourceName,
			Kind:    domain.SourceErrorTransport,
			Code:    resp.StatusCode,
			Message: strings.TrimSpace(string(body[:min(len(body), 512)])),
		}
	}
	if decodeErr != nil {
		return nil, &domain.SourceError{
			Source: sourceName,
			Kind:   domain.SourceErrorMalformed,
			Err:    errors.Wrap(decodeErr, "decoding artist.getsimilar response"),
		}
	}
	if payload.SimilarArtists == nil {
		return nil, &domain.SourceError{
			Source:  sourceName,
			Kind:    domain.SourceErrorMalformed,
			Message: "response has no similarartists",
		}
	}

	similar := make([]domain.Similarity, 0, len(payload.SimilarArtists.Artist))
	for _, a := range payload.SimilarArtists.Artist {
		if len(similar) == limit {
			break
		}
		similar = append(similar, domain.Similarity{
			Name:       a.Name,
			ExternalID: a.MBID,
			Match:      float64(a.Match),
		})
	}

	c.logger.Debugw("similar artists fetched",
		logger.FieldArtist, artist,
		logger.FieldCount, len(similar),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return similar, nil
}
