// Package dataset loads sentiment CSVs from a URL, a local file, or the
// embedded demo data, and reduces the accepted rows to per-country
// aggregates. Loading is strict about structure and lenient about rows:
// a malformed record is dropped, a malformed dataset is an error.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"sentimap/internal/model"
	"sentimap/internal/palette"
)

//go:embed sample.csv
var sampleCSV []byte

const fetchTimeout = 30 * time.Second

// Source locates a dataset. At most one of URL or Path is set; the zero
// Source loads the embedded demo data.
type Source struct {
	URL  string
	Path string
}

func (s Source) String() string {
	switch {
	case s.URL != "":
		return s.URL
	case s.Path != "":
		return s.Path
	default:
		return "embedded demo"
	}
}

// Loader fetches and parses sentiment datasets.
type Loader struct {
	client *http.Client
	logger *zap.Logger
}

// NewLoader builds a loader with a request-scoped HTTP timeout.
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Load fetches the source and parses it into accepted records. The
// returned error is a *FetchError or *ParseError; a dataset with zero
// accepted rows and a valid header loads successfully as empty.
func (l *Loader) Load(ctx context.Context, src Source) ([]model.SentimentRecord, error) {
	raw, err := l.fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	return l.parse(src, raw)
}

func (l *Loader) fetch(ctx context.Context, src Source) ([]byte, error) {
	switch {
	case src.URL != "":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
		if err != nil {
			return nil, &FetchError{Source: src.String(), Err: err}
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, &FetchError{Source: src.String(), Err: err}
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &FetchError{Source: src.String(), Status: resp.StatusCode}
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &FetchError{Source: src.String(), Err: err}
		}
		return body, nil

	case src.Path != "":
		body, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, &FetchError{Source: src.String(), Err: err}
		}
		return body, nil

	default:
		return sampleCSV, nil
	}
}

// Header columns are matched case-insensitively. The canonical schema
// is Country,Region,RandomValue; the aliases cover datasets exported
// with friendlier column names.
func columnIndexes(header []string) (country, region, code int, err error) {
	country, region, code = -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "country":
			country = i
		case "region", "state":
			region = i
		case "randomvalue", "sentiment", "value":
			code = i
		}
	}
	var missing []string
	if country == -1 {
		missing = append(missing, "country")
	}
	if region == -1 {
		missing = append(missing, "region")
	}
	if code == -1 {
		missing = append(missing, "sentiment value")
	}
	if len(missing) > 0 {
		return 0, 0, 0, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return country, region, code, nil
}

func (l *Loader) parse(src Source, raw []byte) ([]model.SentimentRecord, error) {
	reader := csv.NewReader(bytes.NewReader(raw))

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Source: src.String(), Err: errors.New("empty dataset")}
		}
		return nil, &ParseError{Source: src.String(), Err: err}
	}
	countryIdx, regionIdx, codeIdx, err := columnIndexes(header)
	if err != nil {
		return nil, &ParseError{Source: src.String(), Err: err}
	}

	var records []model.SentimentRecord
	dropped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Inconsistent field counts and broken quoting corrupt
			// everything after them; fail the whole load.
			return nil, &ParseError{Source: src.String(), Err: err}
		}

		country := strings.TrimSpace(row[countryIdx])
		region := strings.TrimSpace(row[regionIdx])
		sentiment, parseErr := model.ParseSentiment(row[codeIdx])
		if country == "" || region == "" || parseErr != nil {
			dropped++
			l.logger.Debug("dropping defective row",
				zap.String("country", country),
				zap.String("region", region),
				zap.NamedError("cause", parseErr))
			continue
		}

		records = append(records, model.SentimentRecord{
			Country:      country,
			Region:       region,
			Sentiment:    sentiment,
			Label:        sentiment.Label(),
			DisplayColor: string(palette.ForSentiment(sentiment)),
		})
	}

	l.logger.Info("dataset loaded",
		zap.String("source", src.String()),
		zap.Int("accepted", len(records)),
		zap.Int("dropped", dropped))
	return records, nil
}
