package task

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Store is the full set of accounts keyed by name. It serializes as a bare
// JSON object mapping account name to account.
type Store struct {
	Accounts map[string]*Account
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{Accounts: map[string]*Account{}}
}

// Account looks up an account by name.
func (s *Store) Account(name string) (*Account, bool) {
	acc, ok := s.Accounts[name]

	return acc, ok
}

// EnsureAccount returns the named account, creating it if absent.
func (s *Store) EnsureAccount(name string) *Account {
	if acc, ok := s.Accounts[name]; ok {
		return acc
	}

	acc := NewAccount(name)
	s.Accounts[name] = acc

	return acc
}

// Names returns account names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Accounts))
	for name := range s.Accounts {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	return len(s.Accounts)
}

// MarshalJSON implements [json.Marshaler].
func (s *Store) MarshalJSON() ([]byte, error) {
	if s.Accounts == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(s.Accounts)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *Store) UnmarshalJSON(data []byte) error {
	var accounts map[string]*Account

	err := json.Unmarshal(data, &accounts)
	if err != nil {
		return err
	}

	if accounts == nil {
		accounts = map[string]*Account{}
	}

	for name, acc := range accounts {
		if acc == nil {
			return fmt.Errorf("account %q is null", name)
		}

		normErr := acc.normalize(name)
		if normErr != nil {
			return normErr
		}
	}

	s.Accounts = accounts

	return nil
}
