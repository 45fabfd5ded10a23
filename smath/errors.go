package smath

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when an operation would divide by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDomain matches every *DomainError via errors.Is.
	ErrDomain = errors.New("argument out of domain")
)

// DomainError reports an argument outside the domain of Op.
type DomainError struct {
	Op    string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: argument %g out of domain", e.Op, e.Value)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }
