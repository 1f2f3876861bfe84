package services

import (
	"errors"
	"sync"

	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/entity"
	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/repository"

	"github.com/google/uuid"
)

var ErrIssueNotFound = errors.New("issue not found")

// IssueService runs every operation as load, linear scan, mutate, save over
// the whole collection. The mutex serializes that cycle within the process;
// the file store itself has no locking, so without it two concurrent writes
// would lose one of the updates.
type IssueService struct {
	mu   sync.Mutex
	repo *repository.IssueRepository
}

func NewIssueService(repo *repository.IssueRepository) *IssueService {
	return &IssueService{repo: repo}
}

func (s *IssueService) List() ([]entity.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load()
}

func (s *IssueService) Create(in entity.IssueCreate) (*entity.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issues, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	issue := entity.Issue{
		ID:          uuid.NewString(),
		Status:      entity.StatusOpen,
		Priority:    priority,
		Title:       in.Title,
		Description: in.Description,
	}
	issues = append(issues, issue)
	if err := s.repo.Save(issues); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (s *IssueService) Get(id string) (*entity.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issues, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	for i := range issues {
		if issues[i].ID == id {
			return &issues[i], nil
		}
	}
	return nil, ErrIssueNotFound
}

// Update applies only the fields supplied in the payload. Validation runs
// before the scan, so a bad payload never writes anything.
func (s *IssueService) Update(id string, in entity.IssueUpdate) (*entity.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issues, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	for i := range issues {
		if issues[i].ID != id {
			continue
		}
		if in.Title != nil {
			issues[i].Title = *in.Title
		}
		if in.Description != nil {
			issues[i].Description = *in.Description
		}
		if in.Priority != nil {
			issues[i].Priority = *in.Priority
		}
		if in.Status != nil {
			issues[i].Status = *in.Status
		}
		if err := s.repo.Save(issues); err != nil {
			return nil, err
		}
		return &issues[i], nil
	}
	return nil, ErrIssueNotFound
}

func (s *IssueService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	issues, err := s.repo.Load()
	if err != nil {
		return err
	}
	for i := range issues {
		if issues[i].ID == id {
			issues = append(issues[:i], issues[i+1:]...)
			return s.repo.Save(issues)
		}
	}
	return ErrIssueNotFound
}
