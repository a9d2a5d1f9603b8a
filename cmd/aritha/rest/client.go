package rest

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	apiauth "github.com/arithahq/aritha/api/types/auth"
	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/envelope"
	apinotes "github.com/arithahq/aritha/api/types/notes"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	apiusers "github.com/arithahq/aritha/api/types/users"
	kprof "github.com/arithahq/aritha/cmd/aritha/config/profiles"
	"github.com/arithahq/aritha/pkg/utils"
)

// EmployeeQuery is the server-side filter/sort/pagination for FindEmployees.
// Zero values are omitted from the query string.
type EmployeeQuery struct {
	Search    string
	Status    string
	Gender    string
	Title     string
	SortBy    string
	SortOrder string
	TeamId    int
	ClientId  int
	MinExp    int
	MaxExp    int
	Page      int
	PageSize  int
}

// Client is the typed surface of the HR backend REST API.
//
// Every method is a thin call translating to one HTTP request. The backend
// owns all records; the console holds only request-scoped copies.
type Client interface {
	// Login authenticates and returns the bearer token with the account.
	Login(ctx context.Context, email string, password string) (apiauth.LoginResponse, error)

	// Register creates a user account. Role defaults to "hr" when empty.
	Register(ctx context.Context, email string, password string, role string) (apiusers.Detail, error)

	// ChangePassword rotates the password of the logged-in account.
	ChangePassword(ctx context.Context, current string, next string) error

	// SetRecoveryAnswer sets the password-recovery answer for the first time.
	SetRecoveryAnswer(ctx context.Context, answer string) error

	// UpdateRecoveryAnswer rotates the recovery answer after verifying the current one.
	UpdateRecoveryAnswer(ctx context.Context, current string, next string) error

	// FindEmployees lists employees matching the query.
	//
	// # Returns
	//
	// - []apiemployees.Detail: matched employees
	//
	// - *envelope.Pagination: pagination metadata, nil when the backend
	// answers a bare array (older endpoint shape).
	//
	// - error
	FindEmployees(ctx context.Context, q EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error)

	GetEmployee(ctx context.Context, id int) (apiemployees.Detail, error)
	CreateEmployee(ctx context.Context, spec apiemployees.Spec) (apiemployees.Detail, error)
	UpdateEmployee(ctx context.Context, id int, spec apiemployees.Spec) (apiemployees.Detail, error)

	// DeleteEmployee removes an employee. Soft by default; hard requests
	// permanent deletion.
	DeleteEmployee(ctx context.Context, id int, hard bool) error

	// ToggleEmployeeStatus flips the active flag (soft delete / restore).
	ToggleEmployeeStatus(ctx context.Context, id int) (apiemployees.Detail, error)

	GetEmployeeStats(ctx context.Context) (apiemployees.Stats, error)

	GetEmployeeNotes(ctx context.Context, employeeId int) ([]apinotes.Detail, error)
	AddEmployeeNote(ctx context.Context, employeeId int, spec apinotes.Spec) (apinotes.Detail, error)

	// FindTeams lists teams, server-side matched by search when non-empty.
	FindTeams(ctx context.Context, search string) ([]apiteams.Detail, error)
	GetTeam(ctx context.Context, id int) (apiteams.Detail, error)
	CreateTeam(ctx context.Context, spec apiteams.Spec) (apiteams.Detail, error)
	UpdateTeam(ctx context.Context, id int, spec apiteams.Spec) (apiteams.Detail, error)
	DeleteTeam(ctx context.Context, id int) error
	GetTeamEmployees(ctx context.Context, id int) ([]apiemployees.Detail, error)

	// FindClients lists clients, server-side matched by search when non-empty.
	FindClients(ctx context.Context, search string) ([]apiclients.Detail, error)
	GetClient(ctx context.Context, id int) (apiclients.Detail, error)
	CreateClient(ctx context.Context, spec apiclients.Spec) (apiclients.Detail, error)
	UpdateClient(ctx context.Context, id int, spec apiclients.Spec) (apiclients.Detail, error)
	DeleteClient(ctx context.Context, id int) error
	GetClientTeams(ctx context.Context, id int) ([]apiteams.Detail, error)
	GetClientEmployees(ctx context.Context, id int) ([]apiemployees.Detail, error)

	ListUsers(ctx context.Context) ([]apiusers.Detail, error)
	UpdateUserStatus(ctx context.Context, id int, active bool) (apiusers.Detail, error)
	UpdateUserRole(ctx context.Context, id int, role string) (apiusers.Detail, error)
	DeleteUser(ctx context.Context, id int) error
}

type client struct {
	httpclient *http.Client
	api        string
	token      string
}

type Option func(*client) *client

// WithToken attaches a bearer token to every request the client sends.
func WithToken(token string) Option {
	return func(c *client) *client {
		c.token = token
		return c
	}
}

// NewClient creates a Client for the given Profile.
//
// # Return
//
// - Client: created client
//
// - error: if the given profile is invalid, ErrProfileInvalid is returned.
func NewClient(prof *kprof.Profile, options ...Option) (Client, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}
	httpclient := new(http.Client)

	if prof.Cert.CA != "" {
		hc, err := trustCa(httpclient, []string{prof.Cert.CA})
		if err != nil {
			return nil, err
		}
		httpclient = hc
	}

	c := &client{
		httpclient: httpclient,
		api:        strings.TrimSuffix(prof.ApiRoot, "/"),
	}
	for _, opt := range options {
		c = opt(c)
	}

	return c, nil
}

// build URL with path
func (c *client) apipath(path ...string) string {
	path = utils.Map(path, func(p string) string {
		return strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/")
	})

	return strings.Join(append([]string{c.api}, path...), "/")
}

// send the request with auth header attached when logged in.
func (c *client) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.httpclient.Do(req)
}

func trustCa(hc *http.Client, cacerts []string) (*http.Client, error) {
	if len(cacerts) <= 0 {
		return hc, nil
	}

	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig
	if tcc == nil {
		tcc = &tls.Config{}
	} else {
		tcc = tcc.Clone()
	}

	rootcas := tcc.RootCAs
	if rootcas == nil {
		rootcas = x509.NewCertPool()
		tcc.RootCAs = rootcas
	}
	for _, ca := range cacerts {
		bin, err := base64.StdEncoding.DecodeString(ca)
		if err != nil {
			return nil, err
		}

		if !rootcas.AppendCertsFromPEM(bin) {
			return nil, fmt.Errorf("failed to add cert")
		}
	}

	tran.TLSClientConfig = tcc
	hc.Transport = tran
	return hc, nil
}
