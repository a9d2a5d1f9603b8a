package employees

import (
	"github.com/arithahq/aritha/api/types/internal/utils/cmp"
)

// TeamRef is the denormalized team reference embedded in an Employee.
type TeamRef struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// ClientRef is the denormalized client reference embedded in an Employee.
type ClientRef struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
}

// Tenure is computed server-side: time since joining plus prior experience.
// The console renders it read-only and never recomputes it.
type Tenure struct {
	Years       int `json:"years"`
	Months      int `json:"months"`
	TotalYears  int `json:"totalYears"`
	TotalMonths int `json:"totalMonths"`
}

// Summary is the reduced form of an Employee nested in Team or Client details.
type Summary struct {
	Id        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Title     string `json:"title,omitempty"`
	Active    bool   `json:"active"`
}

func (a Summary) Equal(b Summary) bool {
	return a == b
}

// Detail is an Employee record as the backend returns it.
//
// Dates are wire-format strings (YYYY-MM-DD or RFC3339) owned by the backend.
type Detail struct {
	Id                        int        `json:"id"`
	EmployeeCode              string     `json:"employeeCode,omitempty"`
	FirstName                 string     `json:"firstName"`
	LastName                  string     `json:"lastName"`
	Email                     string     `json:"email"`
	PersonalEmail             string     `json:"personalEmail,omitempty"`
	CompanyEmail              string     `json:"companyEmail,omitempty"`
	Phone                     string     `json:"phone,omitempty"`
	DateOfBirth               string     `json:"dateOfBirth,omitempty"`
	DateOfJoining             string     `json:"dateOfJoining,omitempty"`
	ExperienceYearsAtJoining  int        `json:"experienceYearsAtJoining,omitempty"`
	ExperienceMonthsAtJoining int        `json:"experienceMonthsAtJoining,omitempty"`
	Title                     string     `json:"title,omitempty"`
	Gender                    string     `json:"gender,omitempty"`
	Active                    bool       `json:"active"`
	TeamId                    int        `json:"teamId,omitempty"`
	ClientId                  int        `json:"clientId,omitempty"`
	Team                      *TeamRef   `json:"team,omitempty"`
	Client                    *ClientRef `json:"client,omitempty"`
	Tenure                    *Tenure    `json:"tenure,omitempty"`
	CreatedAt                 string     `json:"createdAt,omitempty"`
	UpdatedAt                 string     `json:"updatedAt,omitempty"`
}

// Name is the display name of the employee.
func (d Detail) Name() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

func (a Detail) Equal(b Detail) bool {
	return a.Id == b.Id &&
		a.EmployeeCode == b.EmployeeCode &&
		a.FirstName == b.FirstName &&
		a.LastName == b.LastName &&
		a.Email == b.Email &&
		a.PersonalEmail == b.PersonalEmail &&
		a.CompanyEmail == b.CompanyEmail &&
		a.Phone == b.Phone &&
		a.DateOfBirth == b.DateOfBirth &&
		a.DateOfJoining == b.DateOfJoining &&
		a.ExperienceYearsAtJoining == b.ExperienceYearsAtJoining &&
		a.ExperienceMonthsAtJoining == b.ExperienceMonthsAtJoining &&
		a.Title == b.Title &&
		a.Gender == b.Gender &&
		a.Active == b.Active &&
		a.TeamId == b.TeamId &&
		a.ClientId == b.ClientId &&
		cmp.PEqEq(a.Team, b.Team) &&
		cmp.PEqEq(a.Client, b.Client) &&
		cmp.PEqEq(a.Tenure, b.Tenure)
}

// Spec is the payload for creating or updating an Employee.
type Spec struct {
	EmployeeCode              string `json:"employeeCode,omitempty"`
	FirstName                 string `json:"firstName"`
	LastName                  string `json:"lastName"`
	Email                     string `json:"email"`
	PersonalEmail             string `json:"personalEmail,omitempty"`
	CompanyEmail              string `json:"companyEmail,omitempty"`
	Phone                     string `json:"phone,omitempty"`
	DateOfBirth               string `json:"dateOfBirth,omitempty"`
	DateOfJoining             string `json:"dateOfJoining,omitempty"`
	ExperienceYearsAtJoining  int    `json:"experienceYearsAtJoining,omitempty"`
	ExperienceMonthsAtJoining int    `json:"experienceMonthsAtJoining,omitempty"`
	Title                     string `json:"title,omitempty"`
	Gender                    string `json:"gender,omitempty"`
	TeamId                    int    `json:"teamId,omitempty"`
	ClientId                  int    `json:"clientId,omitempty"`
}

// TeamCount is a per-team headcount in Stats.
type TeamCount struct {
	TeamId int `json:"teamId"`
	Count  int `json:"_count"`
}

// ClientCount is a per-client headcount in Stats.
type ClientCount struct {
	ClientId int `json:"clientId"`
	Count    int `json:"_count"`
}

// Stats is the aggregate returned by GET /employees/stats.
type Stats struct {
	Total    int           `json:"total"`
	Active   int           `json:"active"`
	Inactive int           `json:"inactive"`
	ByTeam   []TeamCount   `json:"byTeam,omitempty"`
	ByClient []ClientCount `json:"byClient,omitempty"`
}

func (a Stats) Equal(b Stats) bool {
	return a.Total == b.Total &&
		a.Active == b.Active &&
		a.Inactive == b.Inactive &&
		cmp.SliceEq(a.ByTeam, b.ByTeam) &&
		cmp.SliceEq(a.ByClient, b.ByClient)
}
