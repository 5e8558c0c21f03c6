package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/cadastro-api/internal/application/ports"
	"github.com/tu-usuario/cadastro-api/pkg/cnpj"
	"github.com/tu-usuario/cadastro-api/pkg/config"
)

// Verificar en tiempo de compilación que Client implementa CompanyRegistryService.
var _ ports.CompanyRegistryService = (*Client)(nil)

// Client consulta el registro nacional de empresas por CNPJ vía REST
// (GET {base}/office/{cnpj} con credencial Bearer).
// Usa net/http de la librería estándar de Go; no requiere SDK.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient construye el cliente con la configuración del registro.
func NewClient(cfg config.RegistryConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// officeResponse cuerpo JSON del endpoint /office/{cnpj}.
type officeResponse struct {
	TaxID   string `json:"taxId"`
	Active  bool   `json:"active"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	Status struct {
		ID   int    `json:"id"`
		Text string `json:"text"`
	} `json:"status"`
}

// LookupCNPJ consulta el registro por CNPJ. Nunca devuelve error: un 404 se
// etiqueta LookupNotFound y cualquier otra falla (red, timeout, 5xx, cuerpo
// malformado) se etiqueta LookupUnavailable para que el caso de uso decida el
// código de respuesta.
func (c *Client) LookupCNPJ(ctx context.Context, taxID string) ports.LookupResult {
	digits := cnpj.Normalize(taxID)
	if err := cnpj.Validate(digits); err != nil {
		// CNPJ sintácticamente inválido: el registro respondería 404/400 de
		// todos modos, se evita la llamada de red.
		return ports.LookupResult{Status: ports.LookupNotFound}
	}

	url := fmt.Sprintf("%s/office/%s", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.LookupResult{Status: ports.LookupUnavailable}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.LookupResult{Status: ports.LookupUnavailable}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// sigue abajo
	case resp.StatusCode == http.StatusNotFound:
		return ports.LookupResult{Status: ports.LookupNotFound}
	default:
		return ports.LookupResult{Status: ports.LookupUnavailable}
	}

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return ports.LookupResult{Status: ports.LookupUnavailable}
	}

	var office officeResponse
	if err := json.Unmarshal(rawBody, &office); err != nil {
		return ports.LookupResult{Status: ports.LookupUnavailable}
	}

	return ports.LookupResult{
		Status: ports.LookupFound,
		Record: &ports.RegistryRecord{
			CNPJ:        office.TaxID,
			Active:      office.Active,
			CompanyName: office.Company.Name,
			StatusID:    office.Status.ID,
			StatusText:  office.Status.Text,
		},
	}
}
