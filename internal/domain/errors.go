package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrCompanyNotFound signals a missing company.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrJobNotFound signals a missing job posting.
	ErrJobNotFound = errors.New("job posting not found")
	// ErrCategoryNotFound signals a missing category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrTechnologyNotFound signals a missing technology.
	ErrTechnologyNotFound = errors.New("technology not found")
)
