package medication

import (
	"errors"
	"fmt"
)

// Categories. Every error returned by this package and by Store
// implementations matches exactly one of them with errors.Is.
var (
	ErrValidation  = errors.New("medication is not valid")
	ErrPersistence = errors.New("medication storage failure")
	ErrScheduling  = errors.New("medication reminder scheduling failure")
)

var (
	ErrFieldsRequired  = fmt.Errorf("%w: name and interval are required", ErrValidation)
	ErrInvalidInterval = fmt.Errorf("%w: interval must have the HH:MM format", ErrValidation)
	ErrDuplicateID     = fmt.Errorf("%w: medication ID already exists", ErrPersistence)
)
