package member_test

import (
	"encoding/json"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swimroster/memimport/pkg/errcode"
	"github.com/swimroster/memimport/pkg/member"
)

// mapRow is a Row backed by a map; absent keys are absent columns.
type mapRow map[string]string

func (r mapRow) Get(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

func fullRow() mapRow {
	return mapRow{
		member.ColFirstName: "  Ada ",
		member.ColLastName:  "Lovelace",
		member.ColGender:    " F ",
		member.ColBirthday:  "03/14/1990",
	}
}

func TestTransform(t *testing.T) {
	rec, err := member.Transform(fullRow(), "org-1")
	require.NoError(t, err)

	assert.Equal(t, "org-1", rec.OrgID)
	assert.Equal(t, "Ada", rec.FirstName)
	assert.Equal(t, "Lovelace", rec.LastName)
	require.NotNil(t, rec.Gender)
	assert.Equal(t, "F", *rec.Gender)
	require.NotNil(t, rec.DateOfBirth)
	assert.Equal(t, "1990-03-14", *rec.DateOfBirth)
	assert.Equal(t, member.DefaultLevel, rec.Level)
	assert.Equal(t, "Ada Lovelace", rec.FullName())
}

func TestTransformBirthday(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   string
	}{
		{"two digit month and day", "03/14/1990", "1990-03-14"},
		{"single digit month and day", "3/4/1990", "1990-03-04"},
		{"leap day", "02/29/2000", "2000-02-29"},
		{"surrounding spaces", " 12/31/1985 ", "1985-12-31"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			row := fullRow()
			row[member.ColBirthday] = v.input
			rec, err := member.Transform(row, "org")
			require.NoError(t, err)
			require.NotNil(t, rec.DateOfBirth)
			assert.Equal(t, v.res, *rec.DateOfBirth)
		})
	}
}

func TestTransformBirthdayMalformed(t *testing.T) {
	tests := []struct {
		msg   string
		input string
	}{
		{"impossible date", "13/40/2020"},
		{"not a leap year", "02/29/2001"},
		{"iso layout", "1990-03-14"},
		{"two digit year", "03/14/90"},
		{"trailing text", "03/14/1990 10:00"},
		{"whitespace only", "   "},
		{"year zero", "01/01/0000"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			row := fullRow()
			row[member.ColBirthday] = v.input
			_, err := member.Transform(row, "org")
			require.Error(t, err)

			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, errcode.RowMalformedFieldError, gnErr.Code)
			assert.Contains(t, gnErr.Err.Error(), member.ColBirthday)
		})
	}
}

func TestTransformOptionalNulls(t *testing.T) {
	t.Run("empty cells", func(t *testing.T) {
		row := fullRow()
		row[member.ColGender] = ""
		row[member.ColBirthday] = ""
		rec, err := member.Transform(row, "org")
		require.NoError(t, err)
		assert.Nil(t, rec.Gender)
		assert.Nil(t, rec.DateOfBirth)
	})

	for _, token := range []string{
		"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
		"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
		"n/a", "nan", "null", " N/A ",
	} {
		t.Run("na marker "+token, func(t *testing.T) {
			row := fullRow()
			row[member.ColGender] = token
			row[member.ColBirthday] = token
			rec, err := member.Transform(row, "org")
			require.NoError(t, err)
			assert.Nil(t, rec.Gender)
			assert.Nil(t, rec.DateOfBirth)
			assert.Equal(t, "Ada", rec.FirstName)
		})
	}

	t.Run("absent columns", func(t *testing.T) {
		row := fullRow()
		delete(row, member.ColGender)
		delete(row, member.ColBirthday)
		rec, err := member.Transform(row, "org")
		require.NoError(t, err)
		assert.Nil(t, rec.Gender)
		assert.Nil(t, rec.DateOfBirth)
	})

	t.Run("serializes as null", func(t *testing.T) {
		row := fullRow()
		delete(row, member.ColGender)
		row[member.ColBirthday] = ""
		rec, err := member.Transform(row, "org")
		require.NoError(t, err)

		bs, err := json.Marshal(rec)
		require.NoError(t, err)
		assert.Contains(t, string(bs), `"gender":null`)
		assert.Contains(t, string(bs), `"date_of_birth":null`)
		assert.Contains(t, string(bs), `"level":"1"`)
	})
}

func TestTransformNames(t *testing.T) {
	t.Run("whitespace only name becomes empty", func(t *testing.T) {
		row := fullRow()
		row[member.ColLastName] = "   "
		rec, err := member.Transform(row, "org")
		require.NoError(t, err)
		assert.Equal(t, "", rec.LastName)
	})

	tests := []struct {
		msg string
		col string
		del bool
	}{
		{"empty first name", member.ColFirstName, false},
		{"empty last name", member.ColLastName, false},
		{"absent first name column", member.ColFirstName, true},
		{"absent last name column", member.ColLastName, true},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			row := fullRow()
			if v.del {
				delete(row, v.col)
			} else {
				row[v.col] = ""
			}
			_, err := member.Transform(row, "org")
			require.Error(t, err)

			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, errcode.RowMissingFieldError, gnErr.Code)
			assert.Equal(t, v.col, gnErr.Vars[0])
		})
	}
}
