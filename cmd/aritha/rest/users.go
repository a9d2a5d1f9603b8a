package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	apiusers "github.com/arithahq/aritha/api/types/users"
)

func (c *client) ListUsers(ctx context.Context) ([]apiusers.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("users"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	found := []apiusers.Detail{}
	if _, err := unmarshalJsonResponse(resp, &found); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) UpdateUserStatus(ctx context.Context, id int, active bool) (apiusers.Detail, error) {
	return c.patchUser(
		ctx, c.apipath("users", strconv.Itoa(id), "status"),
		map[string]bool{"active": active},
	)
}

func (c *client) UpdateUserRole(ctx context.Context, id int, role string) (apiusers.Detail, error) {
	return c.patchUser(
		ctx, c.apipath("users", strconv.Itoa(id), "role"),
		map[string]string{"role": role},
	)
}

func (c *client) patchUser(ctx context.Context, path string, payload any) (apiusers.Detail, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return apiusers.Detail{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, path, bytes.NewReader(reqBody))
	if err != nil {
		return apiusers.Detail{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiusers.Detail{}, err
	}
	defer resp.Body.Close()

	updated := apiusers.Detail{}
	if _, err := unmarshalJsonResponse(resp, &updated); err != nil {
		return apiusers.Detail{}, err
	}
	return updated, nil
}

func (c *client) DeleteUser(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("users", strconv.Itoa(id)), nil,
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
