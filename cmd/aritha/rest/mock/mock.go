package mock

import (
	"context"
	"testing"

	apiauth "github.com/arithahq/aritha/api/types/auth"
	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/envelope"
	apinotes "github.com/arithahq/aritha/api/types/notes"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	apiusers "github.com/arithahq/aritha/api/types/users"
	"github.com/arithahq/aritha/cmd/aritha/rest"
)

type LoginArgs struct {
	Email    string
	Password string
}

type RegisterArgs struct {
	Email    string
	Password string
	Role     string
}

type AddEmployeeNoteArgs struct {
	EmployeeId int
	Spec       apinotes.Spec
}

type UpdateUserStatusArgs struct {
	Id     int
	Active bool
}

type UpdateUserRoleArgs struct {
	Id   int
	Role string
}

type DeleteEmployeeArgs struct {
	Id   int
	Hard bool
}

func New(t *testing.T) *mockArithaClient {
	return &mockArithaClient{t: t}
}

type mockArithaClient struct {
	t    *testing.T
	Impl struct {
		Login                func(ctx context.Context, email string, password string) (apiauth.LoginResponse, error)
		Register             func(ctx context.Context, email string, password string, role string) (apiusers.Detail, error)
		ChangePassword       func(ctx context.Context, current string, next string) error
		SetRecoveryAnswer    func(ctx context.Context, answer string) error
		UpdateRecoveryAnswer func(ctx context.Context, current string, next string) error

		FindEmployees        func(ctx context.Context, q rest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error)
		GetEmployee          func(ctx context.Context, id int) (apiemployees.Detail, error)
		CreateEmployee       func(ctx context.Context, spec apiemployees.Spec) (apiemployees.Detail, error)
		UpdateEmployee       func(ctx context.Context, id int, spec apiemployees.Spec) (apiemployees.Detail, error)
		DeleteEmployee       func(ctx context.Context, id int, hard bool) error
		ToggleEmployeeStatus func(ctx context.Context, id int) (apiemployees.Detail, error)
		GetEmployeeStats     func(ctx context.Context) (apiemployees.Stats, error)
		GetEmployeeNotes     func(ctx context.Context, employeeId int) ([]apinotes.Detail, error)
		AddEmployeeNote      func(ctx context.Context, employeeId int, spec apinotes.Spec) (apinotes.Detail, error)

		FindTeams        func(ctx context.Context, search string) ([]apiteams.Detail, error)
		GetTeam          func(ctx context.Context, id int) (apiteams.Detail, error)
		CreateTeam       func(ctx context.Context, spec apiteams.Spec) (apiteams.Detail, error)
		UpdateTeam       func(ctx context.Context, id int, spec apiteams.Spec) (apiteams.Detail, error)
		DeleteTeam       func(ctx context.Context, id int) error
		GetTeamEmployees func(ctx context.Context, id int) ([]apiemployees.Detail, error)

		FindClients        func(ctx context.Context, search string) ([]apiclients.Detail, error)
		GetClient          func(ctx context.Context, id int) (apiclients.Detail, error)
		CreateClient       func(ctx context.Context, spec apiclients.Spec) (apiclients.Detail, error)
		UpdateClient       func(ctx context.Context, id int, spec apiclients.Spec) (apiclients.Detail, error)
		DeleteClient       func(ctx context.Context, id int) error
		GetClientTeams     func(ctx context.Context, id int) ([]apiteams.Detail, error)
		GetClientEmployees func(ctx context.Context, id int) ([]apiemployees.Detail, error)

		ListUsers        func(ctx context.Context) ([]apiusers.Detail, error)
		UpdateUserStatus func(ctx context.Context, id int, active bool) (apiusers.Detail, error)
		UpdateUserRole   func(ctx context.Context, id int, role string) (apiusers.Detail, error)
		DeleteUser       func(ctx context.Context, id int) error
	}
	Calls struct {
		Login                []LoginArgs
		Register             []RegisterArgs
		ChangePassword       []string
		SetRecoveryAnswer    []string
		UpdateRecoveryAnswer []string

		FindEmployees        []rest.EmployeeQuery
		GetEmployee          []int
		CreateEmployee       []apiemployees.Spec
		UpdateEmployee       []int
		DeleteEmployee       []DeleteEmployeeArgs
		ToggleEmployeeStatus []int
		GetEmployeeStats     int
		GetEmployeeNotes     []int
		AddEmployeeNote      []AddEmployeeNoteArgs

		FindTeams        []string
		GetTeam          []int
		CreateTeam       []apiteams.Spec
		UpdateTeam       []int
		DeleteTeam       []int
		GetTeamEmployees []int

		FindClients        []string
		GetClient          []int
		CreateClient       []apiclients.Spec
		UpdateClient       []int
		DeleteClient       []int
		GetClientTeams     []int
		GetClientEmployees []int

		ListUsers        int
		UpdateUserStatus []UpdateUserStatusArgs
		UpdateUserRole   []UpdateUserRoleArgs
		DeleteUser       []int
	}
}

var _ rest.Client = &mockArithaClient{}

func (m *mockArithaClient) Login(ctx context.Context, email string, password string) (apiauth.LoginResponse, error) {
	m.t.Helper()

	m.Calls.Login = append(m.Calls.Login, LoginArgs{Email: email, Password: password})
	if m.Impl.Login == nil {
		m.t.Fatal("Login is not ready to be called")
	}
	return m.Impl.Login(ctx, email, password)
}

func (m *mockArithaClient) Register(ctx context.Context, email string, password string, role string) (apiusers.Detail, error) {
	m.t.Helper()

	m.Calls.Register = append(m.Calls.Register, RegisterArgs{Email: email, Password: password, Role: role})
	if m.Impl.Register == nil {
		m.t.Fatal("Register is not ready to be called")
	}
	return m.Impl.Register(ctx, email, password, role)
}

func (m *mockArithaClient) ChangePassword(ctx context.Context, current string, next string) error {
	m.t.Helper()

	m.Calls.ChangePassword = append(m.Calls.ChangePassword, next)
	if m.Impl.ChangePassword == nil {
		m.t.Fatal("ChangePassword is not ready to be called")
	}
	return m.Impl.ChangePassword(ctx, current, next)
}

func (m *mockArithaClient) SetRecoveryAnswer(ctx context.Context, answer string) error {
	m.t.Helper()

	m.Calls.SetRecoveryAnswer = append(m.Calls.SetRecoveryAnswer, answer)
	if m.Impl.SetRecoveryAnswer == nil {
		m.t.Fatal("SetRecoveryAnswer is not ready to be called")
	}
	return m.Impl.SetRecoveryAnswer(ctx, answer)
}

func (m *mockArithaClient) UpdateRecoveryAnswer(ctx context.Context, current string, next string) error {
	m.t.Helper()

	m.Calls.UpdateRecoveryAnswer = append(m.Calls.UpdateRecoveryAnswer, next)
	if m.Impl.UpdateRecoveryAnswer == nil {
		m.t.Fatal("UpdateRecoveryAnswer is not ready to be called")
	}
	return m.Impl.UpdateRecoveryAnswer(ctx, current, next)
}

func (m *mockArithaClient) FindEmployees(ctx context.Context, q rest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
	m.t.Helper()

	m.Calls.FindEmployees = append(m.Calls.FindEmployees, q)
	if m.Impl.FindEmployees == nil {
		m.t.Fatal("FindEmployees is not ready to be called")
	}
	return m.Impl.FindEmployees(ctx, q)
}

func (m *mockArithaClient) GetEmployee(ctx context.Context, id int) (apiemployees.Detail, error) {
	m.t.Helper()

	m.Calls.GetEmployee = append(m.Calls.GetEmployee, id)
	if m.Impl.GetEmployee == nil {
		m.t.Fatal("GetEmployee is not ready to be called")
	}
	return m.Impl.GetEmployee(ctx, id)
}

func (m *mockArithaClient) CreateEmployee(ctx context.Context, spec apiemployees.Spec) (apiemployees.Detail, error) {
	m.t.Helper()

	m.Calls.CreateEmployee = append(m.Calls.CreateEmployee, spec)
	if m.Impl.CreateEmployee == nil {
		m.t.Fatal("CreateEmployee is not ready to be called")
	}
	return m.Impl.CreateEmployee(ctx, spec)
}

func (m *mockArithaClient) UpdateEmployee(ctx context.Context, id int, spec apiemployees.Spec) (apiemployees.Detail, error) {
	m.t.Helper()

	m.Calls.UpdateEmployee = append(m.Calls.UpdateEmployee, id)
	if m.Impl.UpdateEmployee == nil {
		m.t.Fatal("UpdateEmployee is not ready to be called")
	}
	return m.Impl.UpdateEmployee(ctx, id, spec)
}

func (m *mockArithaClient) DeleteEmployee(ctx context.Context, id int, hard bool) error {
	m.t.Helper()

	m.Calls.DeleteEmployee = append(m.Calls.DeleteEmployee, DeleteEmployeeArgs{Id: id, Hard: hard})
	if m.Impl.DeleteEmployee == nil {
		m.t.Fatal("DeleteEmployee is not ready to be called")
	}
	return m.Impl.DeleteEmployee(ctx, id, hard)
}

func (m *mockArithaClient) ToggleEmployeeStatus(ctx context.Context, id int) (apiemployees.Detail, error) {
	m.t.Helper()

	m.Calls.ToggleEmployeeStatus = append(m.Calls.ToggleEmployeeStatus, id)
	if m.Impl.ToggleEmployeeStatus == nil {
		m.t.Fatal("ToggleEmployeeStatus is not ready to be called")
	}
	return m.Impl.ToggleEmployeeStatus(ctx, id)
}

func (m *mockArithaClient) GetEmployeeStats(ctx context.Context) (apiemployees.Stats, error) {
	m.t.Helper()

	m.Calls.GetEmployeeStats += 1
	if m.Impl.GetEmployeeStats == nil {
		m.t.Fatal("GetEmployeeStats is not ready to be called")
	}
	return m.Impl.GetEmployeeStats(ctx)
}

func (m *mockArithaClient) GetEmployeeNotes(ctx context.Context, employeeId int) ([]apinotes.Detail, error) {
	m.t.Helper()

	m.Calls.GetEmployeeNotes = append(m.Calls.GetEmployeeNotes, employeeId)
	if m.Impl.GetEmployeeNotes == nil {
		m.t.Fatal("GetEmployeeNotes is not ready to be called")
	}
	return m.Impl.GetEmployeeNotes(ctx, employeeId)
}

func (m *mockArithaClient) AddEmployeeNote(ctx context.Context, employeeId int, spec apinotes.Spec) (apinotes.Detail, error) {
	m.t.Helper()

	m.Calls.AddEmployeeNote = append(m.Calls.AddEmployeeNote, AddEmployeeNoteArgs{EmployeeId: employeeId, Spec: spec})
	if m.Impl.AddEmployeeNote == nil {
		m.t.Fatal("AddEmployeeNote is not ready to be called")
	}
	return m.Impl.AddEmployeeNote(ctx, employeeId, spec)
}

func (m *mockArithaClient) FindTeams(ctx context.Context, search string) ([]apiteams.Detail, error) {
	m.t.Helper()

	m.Calls.FindTeams = append(m.Calls.FindTeams, search)
	if m.Impl.FindTeams == nil {
		m.t.Fatal("FindTeams is not ready to be called")
	}
	return m.Impl.FindTeams(ctx, search)
}

func (m *mockArithaClient) GetTeam(ctx context.Context, id int) (apiteams.Detail, error) {
	m.t.Helper()

	m.Calls.GetTeam = append(m.Calls.GetTeam, id)
	if m.Impl.GetTeam == nil {
		m.t.Fatal("GetTeam is not ready to be called")
	}
	return m.Impl.GetTeam(ctx, id)
}

func (m *mockArithaClient) CreateTeam(ctx context.Context, spec apiteams.Spec) (apiteams.Detail, error) {
	m.t.Helper()

	m.Calls.CreateTeam = append(m.Calls.CreateTeam, spec)
	if m.Impl.CreateTeam == nil {
		m.t.Fatal("CreateTeam is not ready to be called")
	}
	return m.Impl.CreateTeam(ctx, spec)
}

func (m *mockArithaClient) UpdateTeam(ctx context.Context, id int, spec apiteams.Spec) (apiteams.Detail, error) {
	m.t.Helper()

	m.Calls.UpdateTeam = append(m.Calls.UpdateTeam, id)
	if m.Impl.UpdateTeam == nil {
		m.t.Fatal("UpdateTeam is not ready to be called")
	}
	return m.Impl.UpdateTeam(ctx, id, spec)
}

func (m *mockArithaClient) DeleteTeam(ctx context.Context, id int) error {
	m.t.Helper()

	m.Calls.DeleteTeam = append(m.Calls.DeleteTeam, id)
	if m.Impl.DeleteTeam == nil {
		m.t.Fatal("DeleteTeam is not ready to be called")
	}
	return m.Impl.DeleteTeam(ctx, id)
}

func (m *mockArithaClient) GetTeamEmployees(ctx context.Context, id int) ([]apiemployees.Detail, error) {
	m.t.Helper()

	m.Calls.GetTeamEmployees = append(m.Calls.GetTeamEmployees, id)
	if m.Impl.GetTeamEmployees == nil {
		m.t.Fatal("GetTeamEmployees is not ready to be called")
	}
	return m.Impl.GetTeamEmployees(ctx, id)
}

func (m *mockArithaClient) FindClients(ctx context.Context, search string) ([]apiclients.Detail, error) {
	m.t.Helper()

	m.Calls.FindClients = append(m.Calls.FindClients, search)
	if m.Impl.FindClients == nil {
		m.t.Fatal("FindClients is not ready to be called")
	}
	return m.Impl.FindClients(ctx, search)
}

func (m *mockArithaClient) GetClient(ctx context.Context, id int) (apiclients.Detail, error) {
	m.t.Helper()

	m.Calls.GetClient = append(m.Calls.GetClient, id)
	if m.Impl.GetClient == nil {
		m.t.Fatal("GetClient is not ready to be called")
	}
	return m.Impl.GetClient(ctx, id)
}

func (m *mockArithaClient) CreateClient(ctx context.Context, spec apiclients.Spec) (apiclients.Detail, error) {
	m.t.Helper()

	m.Calls.CreateClient = append(m.Calls.CreateClient, spec)
	if m.Impl.CreateClient == nil {
		m.t.Fatal("CreateClient is not ready to be called")
	}
	return m.Impl.CreateClient(ctx, spec)
}

func (m *mockArithaClient) UpdateClient(ctx context.Context, id int, spec apiclients.Spec) (apiclients.Detail, error) {
	m.t.Helper()

	m.Calls.UpdateClient = append(m.Calls.UpdateClient, id)
	if m.Impl.UpdateClient == nil {
		m.t.Fatal("UpdateClient is not ready to be called")
	}
	return m.Impl.UpdateClient(ctx, id, spec)
}

func (m *mockArithaClient) DeleteClient(ctx context.Context, id int) error {
	m.t.Helper()

	m.Calls.DeleteClient = append(m.Calls.DeleteClient, id)
	if m.Impl.DeleteClient == nil {
		m.t.Fatal("DeleteClient is not ready to be called")
	}
	return m.Impl.DeleteClient(ctx, id)
}

func (m *mockArithaClient) GetClientTeams(ctx context.Context, id int) ([]apiteams.Detail, error) {
	m.t.Helper()

	m.Calls.GetClientTeams = append(m.Calls.GetClientTeams, id)
	if m.Impl.GetClientTeams == nil {
		m.t.Fatal("GetClientTeams is not ready to be called")
	}
	return m.Impl.GetClientTeams(ctx, id)
}

func (m *mockArithaClient) GetClientEmployees(ctx context.Context, id int) ([]apiemployees.Detail, error) {
	m.t.Helper()

	m.Calls.GetClientEmployees = append(m.Calls.GetClientEmployees, id)
	if m.Impl.GetClientEmployees == nil {
		m.t.Fatal("GetClientEmployees is not ready to be called")
	}
	return m.Impl.GetClientEmployees(ctx, id)
}

func (m *mockArithaClient) ListUsers(ctx context.Context) ([]apiusers.Detail, error) {
	m.t.Helper()

	m.Calls.ListUsers += 1
	if m.Impl.ListUsers == nil {
		m.t.Fatal("ListUsers is not ready to be called")
	}
	return m.Impl.ListUsers(ctx)
}

func (m *mockArithaClient) UpdateUserStatus(ctx context.Context, id int, active bool) (apiusers.Detail, error) {
	m.t.Helper()

	m.Calls.UpdateUserStatus = append(m.Calls.UpdateUserStatus, UpdateUserStatusArgs{Id: id, Active: active})
	if m.Impl.UpdateUserStatus == nil {
		m.t.Fatal("UpdateUserStatus is not ready to be called")
	}
	return m.Impl.UpdateUserStatus(ctx, id, active)
}

func (m *mockArithaClient) UpdateUserRole(ctx context.Context, id int, role string) (apiusers.Detail, error) {
	m.t.Helper()

	m.Calls.UpdateUserRole = append(m.Calls.UpdateUserRole, UpdateUserRoleArgs{Id: id, Role: role})
	if m.Impl.UpdateUserRole == nil {
		m.t.Fatal("UpdateUserRole is not ready to be called")
	}
	return m.Impl.UpdateUserRole(ctx, id, role)
}

func (m *mockArithaClient) DeleteUser(ctx context.Context, id int) error {
	m.t.Helper()

	m.Calls.DeleteUser = append(m.Calls.DeleteUser, id)
	if m.Impl.DeleteUser == nil {
		m.t.Fatal("DeleteUser is not ready to be called")
	}
	return m.Impl.DeleteUser(ctx, id)
}
