package driver

import "errors"

// Driver domain errors
var (
	ErrDriverNotFound   = errors.New("driver not found")
	ErrEmployeeIDExists = errors.New("employee id already registered")
)
