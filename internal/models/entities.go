package models

import (
	"time"

	"jobSearchTracker/internal/timeutil"
)

// Company is an employer being tracked.
type Company struct {
	Record
	Name    string  `db:"name" json:"name"`
	Address *string `db:"address" json:"address,omitempty"`
	Website *string `db:"website" json:"website,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
}

// NewCompany builds an unsaved company.
func NewCompany(name string, address, website, phone *string) *Company {
	return &Company{Name: name, Address: address, Website: website, Phone: phone}
}

func (*Company) Table() string     { return "companies" }
func (*Company) Columns() []string { return []string{"name", "address", "website", "phone"} }

// ContactType classifies contacts (email, phone, recruiter...).
type ContactType struct {
	Record
	Name string `db:"name" json:"name"`
}

func NewContactType(name string) *ContactType {
	return &ContactType{Name: name}
}

func (*ContactType) Table() string     { return "contact_types" }
func (*ContactType) Columns() []string { return []string{"name"} }

// InterviewType classifies interviews (phone screen, onsite...).
type InterviewType struct {
	Record
	Name string `db:"name" json:"name"`
}

func NewInterviewType(name string) *InterviewType {
	return &InterviewType{Name: name}
}

func (*InterviewType) Table() string     { return "interview_types" }
func (*InterviewType) Columns() []string { return []string{"name"} }

// JobPosting is an advertised position, identified by its link.
type JobPosting struct {
	Record
	Link        string  `db:"link" json:"link"`
	Description *string `db:"description" json:"description,omitempty"`
}

func NewJobPosting(link string) *JobPosting {
	return &JobPosting{Link: link}
}

func (*JobPosting) Table() string     { return "job_postings" }
func (*JobPosting) Columns() []string { return []string{"link", "description"} }

// Contact is a person met during the search.
type Contact struct {
	Record
	Name        string  `db:"name" json:"name"`
	Email       *string `db:"email" json:"email,omitempty"`
	Phone       *string `db:"phone" json:"phone,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`
	TypeID      int64   `db:"type_id" json:"type_id"`
}

func NewContact(name string, typeID int64) *Contact {
	return &Contact{Name: name, TypeID: typeID}
}

func (*Contact) Table() string { return "contacts" }
func (*Contact) Columns() []string {
	return []string{"name", "email", "phone", "description", "type_id"}
}

// Application records that an application was sent.
type Application struct {
	Record
	DateApplied  timeutil.Timestamp `db:"date_applied" json:"-"`
	CompanyID    *int64             `db:"company_id" json:"company_id,omitempty"`
	JobPostingID *int64             `db:"job_posting_id" json:"job_posting_id,omitempty"`
	ContactID    *int64             `db:"contact_id" json:"contact_id,omitempty"`
}

func NewApplication(applied time.Time, companyID, jobPostingID, contactID *int64) *Application {
	return &Application{
		DateApplied:  timeutil.NewTimestamp(applied),
		CompanyID:    companyID,
		JobPostingID: jobPostingID,
		ContactID:    contactID,
	}
}

func (*Application) Table() string { return "applied_to" }
func (*Application) Columns() []string {
	return []string{"date_applied", "company_id", "job_posting_id", "contact_id"}
}

func (a *Application) Dates() map[string]timeutil.Timestamp {
	return map[string]timeutil.Timestamp{"date_applied": a.DateApplied}
}

// Interview is a scheduled or completed interview with a company.
type Interview struct {
	Record
	InterviewTypeID int64              `db:"interview_type_id" json:"interview_type_id"`
	Date            timeutil.Timestamp `db:"date" json:"-"`
	CompanyID       int64              `db:"company_id" json:"company_id"`
	ContactID       *int64             `db:"contact_id" json:"contact_id,omitempty"`
	JobPostingID    *int64             `db:"job_posting_id" json:"job_posting_id,omitempty"`
	Description     *string            `db:"description" json:"description,omitempty"`
}

func NewInterview(interviewTypeID, companyID int64) *Interview {
	return &Interview{InterviewTypeID: interviewTypeID, CompanyID: companyID}
}

func (*Interview) Table() string { return "interviews" }
func (*Interview) Columns() []string {
	return []string{"interview_type_id", "date", "company_id", "contact_id", "job_posting_id", "description"}
}

func (i *Interview) Dates() map[string]timeutil.Timestamp {
	return map[string]timeutil.Timestamp{"date": i.Date}
}
