// Package apperr define los tipos de error de negocio que los servicios
// devuelven en vez de fallar. Cada error lleva el status HTTP que la capa
// de transporte usa tal cual, un mensaje y un código estable.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindForbidden         Kind = "Forbidden"
	KindUnauthorized      Kind = "Unauthorized"
	KindNotFound          Kind = "NotFound"
	KindConflict          Kind = "Conflict"
	KindWrongPassword     Kind = "WrongPassword"
	KindUserAlreadyExists Kind = "UserAlreadyExists"
	KindBadRequest        Kind = "BadRequest"
)

// Code es el tag de error que viaja en el body de la respuesta.
type Code string

const (
	CodeUnknown           Code = "Unknown"
	CodeCannotRead        Code = "CannotRead"
	CodeCannotAdd         Code = "CannotAdd"
	CodeCannotUpdate      Code = "CannotUpdate"
	CodeCannotDelete      Code = "CannotDelete"
	CodeEntityNotFound    Code = "EntityNotFound"
	CodeUserNotFound      Code = "UserNotFound"
	CodeZooAnimalNotFound Code = "ZooAnimalNotFound"
	CodeWrongPassword     Code = "WrongPassword"
	CodeUserAlreadyExists Code = "UserAlreadyExists"
	CodeBadRequest        Code = "BadRequest"
	CodeUnauthorized      Code = "Unauthorized"
)

// Sentinels por kind, para usar con errors.Is.
var (
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrWrongPassword     = errors.New("wrong password")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrBadRequest        = errors.New("bad request")
)

var sentinels = map[Kind]error{
	KindForbidden:         ErrForbidden,
	KindUnauthorized:      ErrUnauthorized,
	KindNotFound:          ErrNotFound,
	KindConflict:          ErrConflict,
	KindWrongPassword:     ErrWrongPassword,
	KindUserAlreadyExists: ErrUserAlreadyExists,
	KindBadRequest:        ErrBadRequest,
}

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Code    Code
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return sentinels[e.Kind]
}

func Forbidden(code Code, msg string) *Error {
	return &Error{Kind: KindForbidden, Status: http.StatusForbidden, Message: msg, Code: code}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: msg, Code: CodeUnauthorized}
}

func NotFound(code Code, msg string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg, Code: code}
}

func Conflict(code Code, msg string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusConflict, Message: msg, Code: code}
}

func WrongPassword(msg string) *Error {
	return &Error{Kind: KindWrongPassword, Status: http.StatusBadRequest, Message: msg, Code: CodeWrongPassword}
}

func UserAlreadyExists(msg string) *Error {
	return &Error{Kind: KindUserAlreadyExists, Status: http.StatusConflict, Message: msg, Code: CodeUserAlreadyExists}
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Status: http.StatusBadRequest, Message: msg, Code: CodeBadRequest}
}

// As extrae el *Error de la cadena, si existe.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
