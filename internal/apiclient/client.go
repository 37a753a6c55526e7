// Package apiclient is the thin REST consumer used by the Halimou
// clients. All network I/O of the screen packages goes through here; the
// screens themselves stay pure.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	httpc   *http.Client
}

// APIError carries the status code and the server-provided detail so
// callers can show the exact message the API produced.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Detail = payload.Detail
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// ---- Products ----

func (c *Client) Products(ctx context.Context, includeArchived bool) ([]Product, error) {
	q := url.Values{}
	if includeArchived {
		q.Set("include_archived", "true")
	}
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id string) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodGet, "/products/"+id, nil, nil, &p)
	return p, err
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodPost, "/products", nil, in, &p)
	return p, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodPut, "/products/"+id, nil, patch, &p)
	return p, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil, nil)
}

// ---- Inventories ----

// InventoryLookup is the tagged result of a by-date fetch: a 404 means
// "no record yet for this date", which is a normal outcome, not an error.
type InventoryLookup struct {
	Found     bool
	Inventory Inventory
}

func (c *Client) Inventories(ctx context.Context, limit int) ([]Inventory, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var inventories []Inventory
	if err := c.do(ctx, http.MethodGet, "/inventories", q, nil, &inventories); err != nil {
		return nil, err
	}
	return inventories, nil
}

func (c *Client) InventoryByDate(ctx context.Context, date string) (InventoryLookup, error) {
	var inv Inventory
	err := c.do(ctx, http.MethodGet, "/inventories/"+date, nil, nil, &inv)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return InventoryLookup{Found: false}, nil
		}
		return InventoryLookup{}, err
	}
	return InventoryLookup{Found: true, Inventory: inv}, nil
}

func (c *Client) CreateInventory(ctx context.Context, date string, items []LineItem) (Inventory, error) {
	body := struct {
		Date     string     `json:"date"`
		Products []LineItem `json:"products"`
	}{Date: date, Products: items}

	var inv Inventory
	err := c.do(ctx, http.MethodPost, "/inventories", nil, body, &inv)
	return inv, err
}

func (c *Client) UpdateInventory(ctx context.Context, date string, items []LineItem) (Inventory, error) {
	body := struct {
		Products []LineItem `json:"products"`
	}{Products: items}

	var inv Inventory
	err := c.do(ctx, http.MethodPut, "/inventories/"+date, nil, body, &inv)
	return inv, err
}

func (c *Client) DeleteInventory(ctx context.Context, date string) error {
	return c.do(ctx, http.MethodDelete, "/inventories/"+date, nil, nil, nil)
}

// ---- Statistics & export ----

func rangeValues(startDate, endDate string) url.Values {
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	return q
}

func (c *Client) StatsSummary(ctx context.Context, startDate, endDate string) (StatsSummary, error) {
	var s StatsSummary
	err := c.do(ctx, http.MethodGet, "/stats/summary", rangeValues(startDate, endDate), nil, &s)
	return s, err
}

// Export fetches the raw export payload as-is; callers decide where the
// bytes go (file download in the UI clients).
func (c *Client) Export(ctx context.Context, startDate, endDate string) ([]byte, error) {
	u := c.baseURL + "/api/export"
	if q := rangeValues(startDate, endDate); len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET /export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// ---- Employees & payroll ----

func (c *Client) Employees(ctx context.Context, includeInactive bool) ([]Employee, error) {
	q := url.Values{}
	if includeInactive {
		q.Set("include_inactive", "true")
	}
	var employees []Employee
	if err := c.do(ctx, http.MethodGet, "/employees", q, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in EmployeeInput) (Employee, error) {
	var e Employee
	err := c.do(ctx, http.MethodPost, "/employees", nil, in, &e)
	return e, err
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, patch EmployeePatch) (Employee, error) {
	var e Employee
	err := c.do(ctx, http.MethodPut, "/employees/"+id, nil, patch, &e)
	return e, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+id, nil, nil, nil)
}

func (c *Client) Payrolls(ctx context.Context, employeeID, period string) ([]PayrollEntry, error) {
	q := url.Values{}
	if employeeID != "" {
		q.Set("employee_id", employeeID)
	}
	if period != "" {
		q.Set("period", period)
	}
	var entries []PayrollEntry
	if err := c.do(ctx, http.MethodGet, "/payrolls", q, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) CreatePayroll(ctx context.Context, in PayrollInput) (PayrollEntry, error) {
	var p PayrollEntry
	err := c.do(ctx, http.MethodPost, "/payrolls", nil, in, &p)
	return p, err
}

func (c *Client) UpdatePayroll(ctx context.Context, id string, patch PayrollPatch) (PayrollEntry, error) {
	var p PayrollEntry
	err := c.do(ctx, http.MethodPut, "/payrolls/"+id, nil, patch, &p)
	return p, err
}

func (c *Client) DeletePayroll(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/payrolls/"+id, nil, nil, nil)
}
