// Package member defines the member record sent to the service and the
// pure transformation of one CSV row into that record.
package member

// DefaultLevel is the membership level given to every imported record.
const DefaultLevel = "1"

// Columns of the member export consulted by the transformer.
const (
	ColFirstName = "Memb. First Name"
	ColLastName  = "Memb. Last Name"
	ColGender    = "Gender"
	ColBirthday  = "Birthday"
)

const (
	// BirthdayLayout is the layout of the Birthday column (MM/DD/YYYY).
	// Single-digit months and days are accepted as well.
	BirthdayLayout = "1/2/2006"

	// DateLayout is the layout of the stored date_of_birth value.
	DateLayout = "2006-01-02"
)

// Record is one member ready to be inserted. Optional values are pointers
// so that they serialize to null instead of an empty string.
type Record struct {
	OrgID       string  `json:"org_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
	Level       string  `json:"level"`
}

// Row gives access to the raw cells of one CSV row by column name.
// ok is false when the column does not exist in the file.
type Row interface {
	Get(column string) (value string, ok bool)
}

// FullName returns first and last names separated by a space.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}
