package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	apinotes "github.com/arithahq/aritha/api/types/notes"
)

func (c *client) GetEmployeeNotes(ctx context.Context, employeeId int) ([]apinotes.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet,
		c.apipath("employees", strconv.Itoa(employeeId), "notes"), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	found := []apinotes.Detail{}
	if _, err := unmarshalJsonResponse(resp, &found); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) AddEmployeeNote(ctx context.Context, employeeId int, spec apinotes.Spec) (apinotes.Detail, error) {
	reqBody, err := json.Marshal(spec)
	if err != nil {
		return apinotes.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.apipath("employees", strconv.Itoa(employeeId), "notes"),
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return apinotes.Detail{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apinotes.Detail{}, err
	}
	defer resp.Body.Close()

	created := apinotes.Detail{}
	if _, err := unmarshalJsonResponse(resp, &created); err != nil {
		return apinotes.Detail{}, err
	}
	return created, nil
}
