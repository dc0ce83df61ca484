// Package session tracks who is signed in and their loyalty ledger.
package session

import (
	"strings"
	"sync"

	"github.com/Madhavee/PizzaOrderingSystem/internal/loyalty"
	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// Profile is the signed-in customer's contact details.
type Profile struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Session holds login state for one customer. Credentials are checked
// elsewhere; Login only records the outcome.
type Session struct {
	mu       sync.Mutex
	profile  Profile
	loggedIn bool
	ledger   *loyalty.Ledger
}

// New returns a signed-out session whose ledger starts at points.
func New(points int) *Session {
	return &Session{ledger: loyalty.NewLedger(points)}
}

// Login marks the session authenticated for the given customer.
func (s *Session) Login(name, email string) error {
	email = strings.TrimSpace(email)
	if err := pizzeria.RequireNotBlank(email, "Email is required"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = Profile{Name: strings.TrimSpace(name), Email: email}
	s.loggedIn = true
	return nil
}

// Logout clears the profile. The ledger is kept.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = Profile{}
	s.loggedIn = false
}

// IsAuthenticated reports whether a customer is signed in.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

func (s *Session) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateContact sets the phone number and default delivery address.
func (s *Session) UpdateContact(phone, address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Phone = strings.TrimSpace(phone)
	s.profile.Address = strings.TrimSpace(address)
}

func (s *Session) Ledger() *loyalty.Ledger {
	return s.ledger
}
