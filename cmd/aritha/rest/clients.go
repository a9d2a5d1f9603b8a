package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	apiteams "github.com/arithahq/aritha/api/types/teams"
)

func (c *client) FindClients(ctx context.Context, search string) ([]apiclients.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("clients"), nil)
	if err != nil {
		return nil, err
	}
	if search != "" {
		q := url.Values{}
		q.Set("search", search)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	found := []apiclients.Detail{}
	if _, err := unmarshalJsonResponse(resp, &found); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) GetClient(ctx context.Context, id int) (apiclients.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("clients", strconv.Itoa(id)), nil,
	)
	if err != nil {
		return apiclients.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiclients.Detail{}, err
	}
	defer resp.Body.Close()

	found := apiclients.Detail{}
	if _, err := unmarshalJsonResponse(resp, &found); err != nil {
		return apiclients.Detail{}, err
	}
	return found, nil
}

func (c *client) CreateClient(ctx context.Context, spec apiclients.Spec) (apiclients.Detail, error) {
	return c.sendClient(ctx, http.MethodPost, c.apipath("clients"), spec)
}

func (c *client) UpdateClient(ctx context.Context, id int, spec apiclients.Spec) (apiclients.Detail, error) {
	return c.sendClient(ctx, http.MethodPut, c.apipath("clients", strconv.Itoa(id)), spec)
}

func (c *client) sendClient(ctx context.Context, method string, path string, spec apiclients.Spec) (apiclients.Detail, error) {
	reqBody, err := json.Marshal(spec)
	if err != nil {
		return apiclients.Detail{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, path, bytes.NewReader(reqBody))
	if err != nil {
		return apiclients.Detail{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiclients.Detail{}, err
	}
	defer resp.Body.Close()

	created := apiclients.Detail{}
	if _, err := unmarshalJsonResponse(resp, &created); err != nil {
		return apiclients.Detail{}, err
	}
	return created, nil
}

func (c *client) DeleteClient(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("clients", strconv.Itoa(id)), nil,
	)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalResponseDiscardingPayload(resp)
}

func (c *client) GetClientTeams(ctx context.Context, id int) ([]apiteams.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("clients", strconv.Itoa(id), "teams"), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	found := []apiteams.Detail{}
	if _, err := unmarshalJsonResponse(resp, &found); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) GetClientEmployees(ctx context.Context, id int) ([]apiemployees.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("clients", strconv.Itoa(id), "employees"), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	found := []apiemployees.Detail{}
	if _, err := unmarshalJsonResponse(resp, &found); err != nil {
		return nil, err
	}
	return found, nil
}
