package fiscalclient

import (
	"net/http"
	"time"

	fiscaldomain "github.com/webyte/ploutos-ledger-api/infrastructure/integrator/fiscal/domain"
)

type Client interface {
	FetchCompany(baseURL, cnpj string) (*fiscaldomain.ProviderCompany, error)
}

type FiscalClient struct {
	httpClient *http.Client
}

func NewClient() Client {
	return &FiscalClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
