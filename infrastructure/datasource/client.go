package datasource

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

//go:generate mockgen -source=client.go -destination=mocks/fetcher.go -package=mocks

// Fetcher busca os bytes brutos de uma fonte de dados pelo nome
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// HTTPFetcher busca fontes servidas em caminhos conhecidos sob uma URL base
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := f.baseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao montar requisição para %s", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar fonte de dados %s", name)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fonte de dados %s respondeu com status %s", name, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler corpo da fonte de dados %s", name)
	}

	return data, nil
}
