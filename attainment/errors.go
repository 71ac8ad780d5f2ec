package attainment

import "errors"

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrExamNotFound    = errors.New("exam not found")
	ErrCONotFound      = errors.New("course outcome not found")
	ErrPONotFound      = errors.New("program outcome not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrNoAttempts      = errors.New("no attempts recorded")
)
