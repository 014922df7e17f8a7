package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("email already registered to another employee")
	ErrUserAlreadyLinked = errors.New("user already linked to an employee")
	ErrNoLinkedEmployee  = errors.New("no employee profile linked to this account")
)
