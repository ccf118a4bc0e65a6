package cmsdata

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
)

// Column headers of the CMS Hospital General Information CSV.
const (
	colFacilityID   = "facility id"
	colFacilityName = "facility name"
	colAddress      = "address"
	colCity         = "city/town"
	colState        = "state"
	colZip          = "zip code"
	colHospitalType = "hospital type"
)

// Client fetches the CMS Hospital General Information dataset.
type Client struct {
	datasetURL string
	httpClient *http.Client
}

// NewClient creates a new CMS dataset client. The bulk download is large, so
// the timeout is expected to be looser than the interactive registry bound.
func NewClient(datasetURL string, timeout time.Duration) *Client {
	return &Client{
		datasetURL: datasetURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchAll downloads and parses the full dataset. It is safe to call more
// than once; every call fetches the current published CSV.
func (c *Client) FetchAll(ctx context.Context) ([]entities.FacilityDatasetRow, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.datasetURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetching CMS hospital dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("CMS hospital dataset returned status %d", resp.StatusCode)
	}

	return parseCSV(resp.Body)
}

func parseCSV(r io.Reader) ([]entities.FacilityDatasetRow, error) {
	buffered := bufio.NewReaderSize(r, 256*1024)

	// Skip UTF-8 BOM if present
	bom, err := buffered.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		if _, err := buffered.Discard(3); err != nil {
			return nil, err
		}
	}

	reader := csv.NewReader(buffered)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV headers: %w", err)
	}

	colIdx := make(map[string]int, len(headers))
	for i, h := range headers {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := colIdx[colFacilityID]; !ok {
		return nil, fmt.Errorf("CSV missing %q column", colFacilityID)
	}
	if _, ok := colIdx[colFacilityName]; !ok {
		return nil, fmt.Errorf("CSV missing %q column", colFacilityName)
	}

	var rows []entities.FacilityDatasetRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		rows = append(rows, entities.FacilityDatasetRow{
			FacilityID:   cell(record, colIdx, colFacilityID),
			FacilityName: cell(record, colIdx, colFacilityName),
			Address:      cell(record, colIdx, colAddress),
			City:         cell(record, colIdx, colCity),
			State:        cell(record, colIdx, colState),
			Zip:          cell(record, colIdx, colZip),
			HospitalType: cell(record, colIdx, colHospitalType),
		})
	}

	return rows, nil
}

func cell(record []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
