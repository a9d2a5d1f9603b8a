package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	apiteams "github.com/arithahq/aritha/api/types/teams"
)

func (c *client) FindTeams(ctx context.Context, search string) ([]apiteams.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("teams"), nil)
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

	found := []apiteams.Detail{}
	if _, err := unmarshalJsonResponse(resp, &found); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) GetTeam(ctx context.Context, id int) (apiteams.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("teams", strconv.Itoa(id)), nil,
	)
	if err != nil {
		return apiteams.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiteams.Detail{}, err
	}
	defer resp.Body.Close()

	found := apiteams.Detail{}
	if _, err := unmarshalJsonResponse(resp, &found); err != nil {
		return apiteams.Detail{}, err
	}
	return found, nil
}

func (c *client) CreateTeam(ctx context.Context, spec apiteams.Spec) (apiteams.Detail, error) {
	return c.sendTeam(ctx, http.MethodPost, c.apipath("teams"), spec)
}

func (c *client) UpdateTeam(ctx context.Context, id int, spec apiteams.Spec) (apiteams.Detail, error) {
	return c.sendTeam(ctx, http.MethodPut, c.apipath("teams", strconv.Itoa(id)), spec)
}

func (c *client) sendTeam(ctx context.Context, method string, path string, spec apiteams.Spec) (apiteams.Detail, error) {
	reqBody, err := json.Marshal(spec)
	if err != nil {
		return apiteams.Detail{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, path, bytes.NewReader(reqBody))
	if err != nil {
		return apiteams.Detail{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiteams.Detail{}, err
	}
	defer resp.Body.Close()

	created := apiteams.Detail{}
	if _, err := unmarshalJsonResponse(resp, &created); err != nil {
		return apiteams.Detail{}, err
	}
	return created, nil
}

func (c *client) DeleteTeam(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("teams", strconv.Itoa(id)), nil,
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

func (c *client) GetTeamEmployees(ctx context.Context, id int) ([]apiemployees.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("teams", strconv.Itoa(id), "employees"), nil,
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
