package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsStartUnsaved(t *testing.T) {
	records := map[string]*Record{
		"company":        NewCompany("Acme", nil, nil, nil).Base(),
		"contact_type":   NewContactType("Email").Base(),
		"interview_type": NewInterviewType("Onsite").Base(),
		"job_posting":    NewJobPosting("google").Base(),
		"contact":        NewContact("Marcus", 1).Base(),
		"application":    NewApplication(time.Now(), nil, nil, nil).Base(),
		"interview":      NewInterview(1, 1).Base(),
	}

	for name, record := range records {
		assert.Nil(t, record.ID, name)
		assert.False(t, record.Saved(), name)
		assert.False(t, bool(record.Hide), name)
		assert.False(t, record.CreatedDate.Valid, name)
		assert.False(t, record.LastUpdated.Valid, name)
	}
}

func TestNewCompanyKeepsFields(t *testing.T) {
	company := NewCompany("Acme", StringPtr("1 Road"), nil, StringPtr("555"))

	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, "1 Road", *company.Address)
	assert.Nil(t, company.Website)
	assert.Equal(t, "555", *company.Phone)
}

func TestFlagScan(t *testing.T) {
	tests := []struct {
		src      interface{}
		expected bool
	}{
		{int64(0), false},
		{int64(1), true},
		{int64(2), true},
		{int64(-1), true},
		{float64(0), false},
		{float64(1), true},
		{0.5, true},
		{true, true},
		{nil, false},
	}

	for _, tt := range tests {
		var f Flag
		require.NoError(t, f.Scan(tt.src))
		assert.Equal(t, tt.expected, bool(f), "%v", tt.src)
	}

	var f Flag
	assert.Error(t, f.Scan("yes"))
}

func TestFlagValue(t *testing.T) {
	v, err := Flag(true).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = Flag(false).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestColumnsExcludeSharedFields(t *testing.T) {
	shapes := []interface{ Columns() []string }{
		&Company{}, &ContactType{}, &InterviewType{}, &JobPosting{}, &Contact{}, &Application{}, &Interview{},
	}
	for _, shape := range shapes {
		for _, column := range shape.Columns() {
			assert.NotContains(t, []string{"id", "created_date", "last_updated", "hide"}, column)
		}
	}
}
