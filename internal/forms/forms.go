// Package forms turns submitted form values into typed inputs. Each parse
// function returns either the input or a non-empty Errors list, never both.
package forms

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Problem enumerates why a field was rejected.
type Problem int

const (
	// Missing means the field was absent or empty.
	Missing Problem = iota + 1
	// NotInteger means the field was present but not a whole number.
	NotInteger
	// OutOfRange means the field is a whole number no stored identifier can take.
	OutOfRange
)

func (p Problem) String() string {
	switch p {
	case Missing:
		return "is required"
	case NotInteger:
		return "must be a whole number"
	case OutOfRange:
		return "is out of range"
	default:
		return "is invalid"
	}
}

// FieldError names the rejected form field and the reason.
type FieldError struct {
	Field   string
	Problem Problem
}

func (e FieldError) Error() string {
	return e.Field + " " + e.Problem.String()
}

// Errors is the validation failure result. A nil Errors means the input is valid.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Field returns the message for the named field, or "" when it passed.
func (e Errors) Field(name string) string {
	for _, fe := range e {
		if fe.Field == name {
			return fe.Problem.String()
		}
	}
	return ""
}

// Has reports whether the named field failed with problem p.
func (e Errors) Has(name string, p Problem) bool {
	for _, fe := range e {
		if fe.Field == name && fe.Problem == p {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

// check runs struct-tag validation and maps failures onto Problems.
func check(input any) Errors {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		panic(err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		p := Missing
		if fe.Tag() == "numeric" {
			p = NotInteger
		}
		out = append(out, FieldError{Field: fe.Field(), Problem: p})
	}
	return out
}

// NewUser is the input of the user creation form.
type NewUser struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func ParseNewUser(values url.Values) (NewUser, Errors) {
	in := NewUser{
		Username: values.Get("username"),
		Email:    values.Get("email"),
		Password: values.Get("password"),
	}
	if errs := check(in); errs != nil {
		return NewUser{}, errs
	}
	return in, nil
}

// EditUser is the input of the user edit form. An empty Password keeps the stored one.
type EditUser struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Password string `form:"password"`
}

func ParseEditUser(values url.Values) (EditUser, Errors) {
	in := EditUser{
		Username: values.Get("username"),
		Email:    values.Get("email"),
		Password: values.Get("password"),
	}
	if errs := check(in); errs != nil {
		return EditUser{}, errs
	}
	return in, nil
}

// NewPost is the input of the post creation form.
type NewPost struct {
	Title   string
	Content string
	UserID  int
}

type newPostForm struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
	UserID  string `form:"user_id" validate:"required,numeric"`
}

func ParseNewPost(values url.Values) (NewPost, Errors) {
	raw := newPostForm{
		Title:   values.Get("title"),
		Content: values.Get("content"),
		UserID:  values.Get("user_id"),
	}
	if errs := check(raw); errs != nil {
		return NewPost{}, errs
	}

	userID, p := parseKey(raw.UserID)
	if p != 0 {
		return NewPost{}, Errors{{Field: "user_id", Problem: p}}
	}
	return NewPost{Title: raw.Title, Content: raw.Content, UserID: userID}, nil
}

// EditPost is the input of the post edit form.
type EditPost struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}

func ParseEditPost(values url.Values) (EditPost, Errors) {
	in := EditPost{
		Title:   values.Get("title"),
		Content: values.Get("content"),
	}
	if errs := check(in); errs != nil {
		return EditPost{}, errs
	}
	return in, nil
}

// ParseID validates a record identifier taken from the URL path. A whole number
// outside the INTEGER column range fails with OutOfRange: no row can carry it.
func ParseID(raw string) (int, Errors) {
	if raw == "" {
		return 0, Errors{{Field: "id", Problem: Missing}}
	}
	id, p := parseKey(raw)
	if p != 0 {
		return 0, Errors{{Field: "id", Problem: p}}
	}
	return id, nil
}

// parseKey parses a signed identifier that fits the store's 32-bit INTEGER keys.
func parseKey(raw string) (int, Problem) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, OutOfRange
		}
		return 0, NotInteger
	}
	return int(n), 0
}
