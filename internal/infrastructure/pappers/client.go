package pappers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
)

var (
	ErrNotFound = errors.New("not found")
)

type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    "https://api.pappers.fr/v2/entreprise",
		apiToken:   os.Getenv("PAPPERS_API_TOKEN"),
		httpClient: &http.Client{},
	}
}

func (c *Client) GetBySiret(ctx context.Context, siret string) (*entity.Entreprise, error) {
	query := url.Values{}
	query.Set("siret", siret)
	query.Set("api_token", c.apiToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pappers failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var entreprise entrepriseResponse
	err = json.Unmarshal(body, &entreprise)
	if err != nil {
		return nil, err
	}
	return entreprise.ToDomain(siret), nil
}
