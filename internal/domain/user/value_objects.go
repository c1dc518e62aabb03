package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidUsername = errors.New("username must be 3-50 letters, digits, dots, dashes or underscores")
	ErrInvalidLogin    = errors.New("username or email is required")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,50}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Credentials identify an admin by username or email.
type Credentials struct {
	login    string
	password Password
}

func NewCredentials(login, password string) (Credentials, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return Credentials{}, ErrInvalidLogin
	}
	pw, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{login: login, password: pw}, nil
}

func (c Credentials) Login() string      { return c.login }
func (c Credentials) Password() Password { return c.password }

// IsEmail reports whether the login looks like an email address.
func (c Credentials) IsEmail() bool {
	return strings.Contains(c.login, "@")
}
