package nppes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
	"github.com/hlh-health/facility-registry/internal/infrastructure/observability"
)

const (
	apiVersion      = "2.1"
	orgEnumeration  = "NPI-2"
	nameSearchLimit = 200
	subpartAffirmed = "YES"
)

// Client queries the NPPES NPI Registry API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
}

// NewClient creates a new NPPES registry client. The timeout bounds every
// request issued through the client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithMetrics enables per-operation call counters on the client.
func (c *Client) WithMetrics(metrics *observability.Metrics) *Client {
	c.metrics = metrics
	return c
}

type apiResponse struct {
	ResultCount int         `json:"result_count"`
	Results     []apiResult `json:"results"`
}

type apiResult struct {
	Number     string        `json:"number"`
	Basic      apiBasic      `json:"basic"`
	Addresses  []apiAddress  `json:"addresses"`
	Taxonomies []apiTaxonomy `json:"taxonomies"`
}

type apiBasic struct {
	OrganizationName      string `json:"organization_name"`
	LegalBusinessName     string `json:"legal_business_name"`
	ParentOrganizationLBN string `json:"parent_organization_legal_business_name"`
	// The registry reports subpart status as "YES"/"NO".
	OrganizationalSubpart string `json:"organizational_subpart"`
}

type apiAddress struct {
	City           string `json:"city"`
	State          string `json:"state"`
	AddressPurpose string `json:"address_purpose"`
}

type apiTaxonomy struct {
	Code          string `json:"code"`
	Desc          string `json:"desc"`
	TaxonomyGroup string `json:"taxonomy_group"`
}

// GetByNPI queries the registry for a single NPI number. A missing NPI
// yields an empty slice.
func (c *Client) GetByNPI(ctx context.Context, npi string) ([]entities.OrganizationRecord, error) {
	params := url.Values{}
	params.Set("version", apiVersion)
	params.Set("number", npi)

	observability.RecordRegistryCall(ctx, c.metrics, "get_by_npi")
	resp, err := c.query(ctx, params)
	if err != nil {
		return nil, err
	}
	return resultsToRecords(resp), nil
}

// SearchByName queries the registry for organizations matching the given
// name, optionally narrowed to a two-letter state code. Results are capped
// by the registry at the requested limit.
func (c *Client) SearchByName(ctx context.Context, name, state string) ([]entities.OrganizationRecord, error) {
	params := url.Values{}
	params.Set("version", apiVersion)
	params.Set("enumeration_type", orgEnumeration)
	params.Set("organization_name", name)
	params.Set("limit", fmt.Sprintf("%d", nameSearchLimit))
	if state != "" {
		params.Set("state", state)
	}

	observability.RecordRegistryCall(ctx, c.metrics, "search_by_name")
	resp, err := c.query(ctx, params)
	if err != nil {
		return nil, err
	}
	return resultsToRecords(resp), nil
}

func (c *Client) query(ctx context.Context, params url.Values) (*apiResponse, error) {
	endpoint := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("querying NPI registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("NPI registry returned status %d", resp.StatusCode)
	}

	out := &apiResponse{}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("parsing NPI registry response: %w", err)
	}
	return out, nil
}

func resultsToRecords(resp *apiResponse) []entities.OrganizationRecord {
	if resp.ResultCount == 0 || len(resp.Results) == 0 {
		return nil
	}
	records := make([]entities.OrganizationRecord, 0, len(resp.Results))
	for _, r := range resp.Results {
		records = append(records, resultToRecord(r))
	}
	return records
}

// resultToRecord normalizes one raw registry result into the canonical
// organization shape. The first address is the primary one; a record with no
// addresses has all address fields absent.
func resultToRecord(r apiResult) entities.OrganizationRecord {
	rec := entities.OrganizationRecord{
		NPI:                    r.Number,
		LegalName:              r.Basic.LegalBusinessName,
		ParentOrganizationName: r.Basic.ParentOrganizationLBN,
		IsSubpart:              strings.EqualFold(r.Basic.OrganizationalSubpart, subpartAffirmed),
	}
	if rec.LegalName == "" {
		rec.LegalName = r.Basic.OrganizationName
	}

	if len(r.Addresses) > 0 {
		rec.PrimaryCity = r.Addresses[0].City
		rec.PrimaryState = r.Addresses[0].State
	}

	for _, t := range r.Taxonomies {
		desc := t.Desc
		if desc == "" {
			desc = t.TaxonomyGroup
		}
		rec.Taxonomies = append(rec.Taxonomies, entities.TaxonomyEntry{
			Code:        t.Code,
			Description: strings.TrimSpace(desc),
		})
	}

	return rec
}
