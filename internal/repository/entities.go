package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"jobSearchTracker/internal/logging"
	"jobSearchTracker/internal/models"
)

type (
	CompanyRepository       = Repository[models.Company, *models.Company]
	ContactTypeRepository   = Repository[models.ContactType, *models.ContactType]
	InterviewTypeRepository = Repository[models.InterviewType, *models.InterviewType]
	JobPostingRepository    = Repository[models.JobPosting, *models.JobPosting]
	ContactRepository       = Repository[models.Contact, *models.Contact]
	ApplicationRepository   = Repository[models.Application, *models.Application]
	InterviewRepository     = Repository[models.Interview, *models.Interview]
)

// Repositories groups one repository per table
type Repositories struct {
	Companies      *CompanyRepository
	ContactTypes   *ContactTypeRepository
	InterviewTypes *InterviewTypeRepository
	JobPostings    *JobPostingRepository
	Contacts       *ContactRepository
	Applications   *ApplicationRepository
	Interviews     *InterviewRepository
}

// NewRepositories builds every repository with a shared logger
func NewRepositories(logger *logging.Logger) *Repositories {
	return &Repositories{
		Companies:      New[models.Company, *models.Company](logger),
		ContactTypes:   New[models.ContactType, *models.ContactType](logger),
		InterviewTypes: New[models.InterviewType, *models.InterviewType](logger),
		JobPostings:    New[models.JobPosting, *models.JobPosting](logger),
		Contacts:       New[models.Contact, *models.Contact](logger),
		Applications:   New[models.Application, *models.Application](logger),
		Interviews:     New[models.Interview, *models.Interview](logger),
	}
}

// Counter is the part of a repository used for summaries
type Counter interface {
	Table() string
	Count(ctx context.Context, q sqlx.QueryerContext, visibleOnly bool) (int, error)
}

// Counters lists the repositories in table creation order
func (r *Repositories) Counters() []Counter {
	return []Counter{r.Companies, r.ContactTypes, r.InterviewTypes, r.JobPostings, r.Contacts, r.Applications, r.Interviews}
}
