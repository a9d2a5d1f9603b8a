package search

// Kind classifies a search result.
type Kind string

const (
	KindEmployee Kind = "employee"
	KindTeam     Kind = "team"
	KindClient   Kind = "client"

	// KindAction is a command or navigation shortcut, not a record.
	KindAction Kind = "action"
)

// Result is one row in the palette, whatever its source.
//
// Path is the destination the selection navigates to, in the route syntax of
// the HR console ("/employees/7", "/teams/add", "/dashboard", ...).
type Result struct {
	Id       string
	Kind     Kind
	Title    string
	Subtitle string
	Icon     string
	Path     string
}

func (a Result) Equal(b Result) bool {
	return a == b
}
