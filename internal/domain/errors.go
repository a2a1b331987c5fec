package domain

import (
	"errors"
	"fmt"
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}

// InvalidDateError некорректная гражданская дата/время, исправляется пользователем
type InvalidDateError struct {
	Reason string
}

func (e *InvalidDateError) Error() string {
	return "invalid date: " + e.Reason
}

func NewInvalidDateError(format string, args ...any) error {
	return &InvalidDateError{Reason: fmt.Sprintf(format, args...)}
}

func IsInvalidDate(err error) bool {
	var target *InvalidDateError
	return errors.As(err, &target)
}

// InvalidLocationError координаты вне допустимых диапазонов
type InvalidLocationError struct {
	Latitude  float64
	Longitude float64
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("invalid location: lat=%g lon=%g", e.Latitude, e.Longitude)
}

func IsInvalidLocation(err error) bool {
	var target *InvalidLocationError
	return errors.As(err, &target)
}

// EphemerisUnavailableError отказ внешнего провайдера эфемерид, повторять должен вызывающий
type EphemerisUnavailableError struct {
	Body Body
	Err  error
}

func (e *EphemerisUnavailableError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("ephemeris unavailable: %v", e.Err)
	}
	return fmt.Sprintf("ephemeris unavailable for %s: %v", e.Body, e.Err)
}

func (e *EphemerisUnavailableError) Unwrap() error {
	return e.Err
}

func IsEphemerisUnavailable(err error) bool {
	var target *EphemerisUnavailableError
	return errors.As(err, &target)
}

// InvalidNakshatraError нарушение инварианта классификации, это баг выше по цепочке
type InvalidNakshatraError struct {
	Index int
}

func (e *InvalidNakshatraError) Error() string {
	return fmt.Sprintf("invalid nakshatra index %d, expected 1..27", e.Index)
}

func IsInvalidNakshatra(err error) bool {
	var target *InvalidNakshatraError
	return errors.As(err, &target)
}

// Kind машинное имя ошибки для ответов HTTP и Kafka
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsInvalidDate(err):
		return "invalid_date"
	case IsInvalidLocation(err):
		return "invalid_location"
	case IsEphemerisUnavailable(err):
		return "ephemeris_unavailable"
	case IsInvalidNakshatra(err):
		return "invalid_nakshatra"
	default:
		return "internal"
	}
}
