package notes

// Author is the user who wrote a note.
type Author struct {
	Id    int    `json:"id"`
	Email string `json:"email"`
}

// Detail is a free-text note attached to exactly one employee.
//
// NoteDate is the date the note is about; CreatedAt is when it was recorded.
type Detail struct {
	Id        int    `json:"id"`
	Content   string `json:"content"`
	NoteDate  string `json:"noteDate,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	Author    Author `json:"author"`
}

func (a Detail) Equal(b Detail) bool {
	return a == b
}

// Spec is the payload for adding a note.
type Spec struct {
	Content  string `json:"content"`
	NoteDate string `json:"noteDate,omitempty"`
}
