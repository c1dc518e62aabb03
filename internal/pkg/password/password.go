package password

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmpty = errors.New("password is empty")

// Cost is the work factor of newly stored admin hashes.
const Cost = 12

// unknownAccountHash is compared against when a login names no account, so that
// path costs the same bcrypt round as a wrong password.
var unknownAccountHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("no-such-account"), Cost)
	if err != nil {
		panic("password: " + err.Error())
	}
	return h
})

func Hash(plain string) (string, error) {
	return HashWithCost(plain, Cost)
}

func HashWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Matches reports whether plain is the password behind hash. An empty hash stands
// for an unknown account and never matches.
func Matches(hash, plain string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(unknownAccountHash(), []byte(plain))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
