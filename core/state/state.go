// Package state guards an access token behind the current authorization state.
package state

import (
	"pattern-catalog/internal/errors"
)

// AuthorizationState is either Unauthorized or Authorized.
type AuthorizationState interface {
	isAuthorizationState()
}

// Unauthorized is the initial state.
type Unauthorized struct{}

// Authorized holds the logged-in user.
type Authorized struct {
	Username string
}

func (Unauthorized) isAuthorizationState() {}
func (Authorized) isAuthorizationState()   {}

const accessToken = "<Some token>"

// Presenter tracks whether a user is logged in.
type Presenter struct {
	state AuthorizationState
}

// NewPresenter starts unauthorized.
func NewPresenter() *Presenter {
	return &Presenter{state: Unauthorized{}}
}

// State returns the current state.
func (p *Presenter) State() AuthorizationState { return p.state }

func (p *Presenter) LoginUser(username string) {
	p.state = Authorized{Username: username}
}

func (p *Presenter) LogoutUser() {
	p.state = Unauthorized{}
}

// AccessToken returns the token while authorized. Reading it in any other
// state is an illegal state error.
func (p *Presenter) AccessToken() (string, error) {
	switch p.state.(type) {
	case Authorized:
		return accessToken, nil
	case Unauthorized:
		return "", errors.IllegalState("access token requested while unauthorized")
	default:
		return "", errors.IllegalState("unknown authorization state")
	}
}
