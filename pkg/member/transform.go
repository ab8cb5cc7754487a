package member

import (
	"errors"
	"strings"
	"time"
)

// naTokens are cell values that spreadsheet and dataframe exports write
// for a missing value. They are compared after trimming.
var naTokens = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

var errYearZero = errors.New("year 0 is out of range")

// Transform converts a raw row into a Record for the given organization.
//
// A name column that is absent, or a name cell that is completely empty,
// is a MissingFieldError. A whitespace-only name is kept as an empty string.
// Gender and Birthday are optional: an absent column, an empty cell or
// an NA marker such as "N/A" or "nan" gives nil. A Birthday that does not
// parse as MM/DD/YYYY, or has year 0, is a MalformedFieldError.
func Transform(row Row, orgID string) (Record, error) {
	var res Record
	var err error

	if res.FirstName, err = requiredName(row, ColFirstName); err != nil {
		return res, err
	}
	if res.LastName, err = requiredName(row, ColLastName); err != nil {
		return res, err
	}

	res.Gender = optional(row, ColGender)

	if res.DateOfBirth, err = birthday(row); err != nil {
		return res, err
	}

	res.OrgID = orgID
	res.Level = DefaultLevel
	return res, nil
}

func requiredName(row Row, col string) (string, error) {
	val, ok := row.Get(col)
	if !ok || val == "" {
		return "", MissingFieldError(col)
	}
	return strings.TrimSpace(val), nil
}

// isMissing reports whether an optional cell holds no value.
func isMissing(val string) bool {
	if val == "" {
		return true
	}
	_, ok := naTokens[strings.TrimSpace(val)]
	return ok
}

func optional(row Row, col string) *string {
	val, ok := row.Get(col)
	if !ok || isMissing(val) {
		return nil
	}
	res := strings.TrimSpace(val)
	return &res
}

func birthday(row Row) (*string, error) {
	val, ok := row.Get(ColBirthday)
	if !ok || isMissing(val) {
		return nil, nil
	}

	val = strings.TrimSpace(val)
	t, err := time.Parse(BirthdayLayout, val)
	if err != nil {
		return nil, MalformedFieldError(ColBirthday, val, err)
	}
	if t.Year() == 0 {
		return nil, MalformedFieldError(ColBirthday, val, errYearZero)
	}
	res := t.Format(DateLayout)
	return &res, nil
}
