package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	apiauth "github.com/arithahq/aritha/api/types/auth"
	apiusers "github.com/arithahq/aritha/api/types/users"
)

func (c *client) Login(ctx context.Context, email string, password string) (apiauth.LoginResponse, error) {
	reqBody, err := json.Marshal(apiauth.LoginRequest{Email: email, Password: password})
	if err != nil {
		return apiauth.LoginResponse{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("auth", "login"), bytes.NewReader(reqBody),
	)
	if err != nil {
		return apiauth.LoginResponse{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiauth.LoginResponse{}, err
	}
	defer resp.Body.Close()

	// the login endpoint answers a bare {token, user} object.
	login := apiauth.LoginResponse{}
	if _, err := unmarshalJsonResponse(resp, &login); err != nil {
		return apiauth.LoginResponse{}, err
	}
	return login, nil
}

func (c *client) Register(ctx context.Context, email string, password string, role string) (apiusers.Detail, error) {
	reqBody, err := json.Marshal(apiauth.RegisterRequest{
		Email: email, Password: password, Role: role,
	})
	if err != nil {
		return apiusers.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("auth", "register"), bytes.NewReader(reqBody),
	)
	if err != nil {
		return apiusers.Detail{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiusers.Detail{}, err
	}
	defer resp.Body.Close()

	created := apiusers.Detail{}
	if _, err := unmarshalJsonResponse(resp, &created); err != nil {
		return apiusers.Detail{}, err
	}
	return created, nil
}

func (c *client) ChangePassword(ctx context.Context, current string, next string) error {
	return c.postAuth(ctx, c.apipath("auth", "change-password"), apiauth.ChangePasswordRequest{
		CurrentPassword: current, NewPassword: next,
	})
}

func (c *client) SetRecoveryAnswer(ctx context.Context, answer string) error {
	return c.postAuth(ctx, c.apipath("auth", "recovery-answer"), apiauth.RecoveryAnswerRequest{
		Answer: answer,
	})
}

func (c *client) UpdateRecoveryAnswer(ctx context.Context, current string, next string) error {
	return c.postAuth(ctx, c.apipath("auth", "update-recovery-answer"), apiauth.UpdateRecoveryAnswerRequest{
		CurrentAnswer: current, NewAnswer: next,
	})
}

func (c *client) postAuth(ctx context.Context, path string, payload any) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, path, bytes.NewReader(reqBody))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalResponseDiscardingPayload(resp)
}
