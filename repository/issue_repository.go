package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/entity"
)

// IssueRepository persists the whole issue collection as one JSON document.
// Load and Save always move the entire ordered collection; there is no
// per-record access and no locking at this layer.
type IssueRepository struct {
	path string
}

func NewIssueRepository(path string) *IssueRepository {
	return &IssueRepository{path: path}
}

// Load reads the full collection. A missing or empty file is not an error;
// it yields an empty collection.
func (r *IssueRepository) Load() ([]entity.Issue, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entity.Issue{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read issues file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []entity.Issue{}, nil
	}

	var issues []entity.Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, fmt.Errorf("decode issues file: %w", err)
	}
	return issues, nil
}

// Save replaces the persisted collection. The document is written to a temp
// file and renamed over the target, so a Load never sees a partial write.
func (r *IssueRepository) Save(issues []entity.Issue) error {
	if issues == nil {
		issues = []entity.Issue{}
	}
	data, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return fmt.Errorf("encode issues: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write issues file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace issues file: %w", err)
	}
	return nil
}
