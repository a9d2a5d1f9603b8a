package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/envelope"
)

func (q EmployeeQuery) values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	setInt := func(key string, val int) {
		if val != 0 {
			v.Set(key, strconv.Itoa(val))
		}
	}
	set("search", q.Search)
	set("status", q.Status)
	set("gender", q.Gender)
	set("title", q.Title)
	set("sortBy", q.SortBy)
	set("sortOrder", q.SortOrder)
	setInt("teamId", q.TeamId)
	setInt("clientId", q.ClientId)
	setInt("minExp", q.MinExp)
	setInt("maxExp", q.MaxExp)
	setInt("page", q.Page)
	setInt("pageSize", q.PageSize)
	return v
}

func (c *client) FindEmployees(ctx context.Context, q EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("employees"), nil)
	if err != nil {
		return nil, nil, err
	}
	req.URL.RawQuery = q.values().Encode()

	resp, err := c.do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	found := make([]apiemployees.Detail, 0, 5)
	page, err := unmarshalJsonResponse(resp, &found)
	if err != nil {
		return nil, nil, err
	}
	return found, page, nil
}

func (c *client) GetEmployee(ctx context.Context, id int) (apiemployees.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("employees", strconv.Itoa(id)), nil,
	)
	if err != nil {
		return apiemployees.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiemployees.Detail{}, err
	}
	defer resp.Body.Close()

	found := apiemployees.Detail{}
	if _, err := unmarshalJsonResponse(resp, &found); err != nil {
		return apiemployees.Detail{}, err
	}
	return found, nil
}

func (c *client) CreateEmployee(ctx context.Context, spec apiemployees.Spec) (apiemployees.Detail, error) {
	return c.sendEmployee(ctx, http.MethodPost, c.apipath("employees"), spec)
}

func (c *client) UpdateEmployee(ctx context.Context, id int, spec apiemployees.Spec) (apiemployees.Detail, error) {
	return c.sendEmployee(ctx, http.MethodPut, c.apipath("employees", strconv.Itoa(id)), spec)
}

func (c *client) sendEmployee(ctx context.Context, method string, path string, spec apiemployees.Spec) (apiemployees.Detail, error) {
	reqBody, err := json.Marshal(spec)
	if err != nil {
		return apiemployees.Detail{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, path, bytes.NewReader(reqBody))
	if err != nil {
		return apiemployees.Detail{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiemployees.Detail{}, err
	}
	defer resp.Body.Close()

	created := apiemployees.Detail{}
	if _, err := unmarshalJsonResponse(resp, &created); err != nil {
		return apiemployees.Detail{}, err
	}
	return created, nil
}

func (c *client) DeleteEmployee(ctx context.Context, id int, hard bool) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("employees", strconv.Itoa(id)), nil,
	)
	if err != nil {
		return err
	}
	if hard {
		q := req.URL.Query()
		q.Set("hard", "true")
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalResponseDiscardingPayload(resp)
}

func (c *client) ToggleEmployeeStatus(ctx context.Context, id int) (apiemployees.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPatch,
		c.apipath("employees", strconv.Itoa(id), "toggle-status"), nil,
	)
	if err != nil {
		return apiemployees.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiemployees.Detail{}, err
	}
	defer resp.Body.Close()

	toggled := apiemployees.Detail{}
	if _, err := unmarshalJsonResponse(resp, &toggled); err != nil {
		return apiemployees.Detail{}, err
	}
	return toggled, nil
}

func (c *client) GetEmployeeStats(ctx context.Context) (apiemployees.Stats, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("employees", "stats"), nil,
	)
	if err != nil {
		return apiemployees.Stats{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiemployees.Stats{}, err
	}
	defer resp.Body.Close()

	stats := apiemployees.Stats{}
	if _, err := unmarshalJsonResponse(resp, &stats); err != nil {
		return apiemployees.Stats{}, err
	}
	return stats, nil
}
