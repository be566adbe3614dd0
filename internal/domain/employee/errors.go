package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNumberExists = errors.New("employee number already exists")
	ErrEmailExists          = errors.New("email already registered")
	ErrWorkCycleNotAssigned = errors.New("employee has no work cycle assigned")
)
