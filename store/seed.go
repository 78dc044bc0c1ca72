package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/business-boost/api-go/models"
)

// DefaultSeedPath is used when SEED_DATA_PATH is not configured.
const DefaultSeedPath = "seed-data.json"

var seedHTTPClient = &http.Client{Timeout: 15 * time.Second}

// LoadSeedData fetches the one-time seed dataset from a local file or an
// http(s) URL. Any fetch or parse failure is reported as ErrSeedUnavailable.
func LoadSeedData(ctx context.Context, path string) (*models.SeedData, error) {
	if path == "" {
		path = DefaultSeedPath
	}

	var (
		raw []byte
		err error
	)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		raw, err = fetchSeedURL(ctx, path)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedUnavailable, err)
	}

	var seed models.SeedData
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrSeedUnavailable, path, err)
	}
	return &seed, nil
}

func fetchSeedURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := seedHTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch seed data: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
