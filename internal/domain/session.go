package domain

import "fmt"

type AccountType string

const (
	AccountTypePregnant  AccountType = "pregnant"
	AccountTypePostnatal AccountType = "postnatal"
	AccountTypeGeneral   AccountType = "general"
)

func ParseAccountType(raw string) (AccountType, error) {
	accountType := AccountType(raw)
	switch accountType {
	case AccountTypePregnant, AccountTypePostnatal, AccountTypeGeneral:
		return accountType, nil
	default:
		return "", fmt.Errorf("unsupported account type %q", raw)
	}
}

// Session is the only durable state this client owns. Token, username and
// account type are written together on login and cleared together on logout,
// but authentication is decided on token presence alone: a session file edited
// by hand to contain a token without a username still counts as authenticated,
// matching the backend's own view of the credential.
type Session struct {
	Token       string
	Username    string
	AccountType AccountType
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
