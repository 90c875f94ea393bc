// Package models defines the domain types persisted by the hello service.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Column limits of the greetings table
const (
	MaxNameLength    = 100
	MaxMessageLength = 255
)

// ErrInvalidGreeting is returned when a greeting violates an entity constraint
var ErrInvalidGreeting = errors.New("invalid greeting")

// GreetingType is the style a greeting was produced in
type GreetingType string

// Supported greeting styles
const (
	GreetingTypeCasual GreetingType = "CASUAL"
	GreetingTypeFormal GreetingType = "FORMAL"
)

// IsValid reports whether t is one of the known greeting styles
func (t GreetingType) IsValid() bool {
	return t == GreetingTypeCasual || t == GreetingTypeFormal
}

// Greeting is a persisted greeting pairing a name with its generated message.
// ID and CreatedAt are zero until the first successful save.
type Greeting struct {
	ID           int64        `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	Message      string       `json:"message" db:"message"`
	GreetingType GreetingType `json:"greetingType" db:"greeting_type"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
}

// NewGreeting creates an unsaved greeting
func NewGreeting(name, message string, greetingType GreetingType) *Greeting {
	return &Greeting{
		Name:         name,
		Message:      message,
		GreetingType: greetingType,
	}
}

// IsNew reports whether the greeting has never been saved
func (g *Greeting) IsNew() bool {
	return g.ID == 0
}

// Validate checks the entity constraints enforced before persisting
func (g *Greeting) Validate() error {
	switch {
	case strings.TrimSpace(g.Name) == "":
		return fmt.Errorf("%w: name must not be blank", ErrInvalidGreeting)
	case utf8.RuneCountInString(g.Name) > MaxNameLength:
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidGreeting, MaxNameLength)
	case strings.TrimSpace(g.Message) == "":
		return fmt.Errorf("%w: message must not be blank", ErrInvalidGreeting)
	case utf8.RuneCountInString(g.Message) > MaxMessageLength:
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidGreeting, MaxMessageLength)
	case !g.GreetingType.IsValid():
		return fmt.Errorf("%w: unknown greeting type %q", ErrInvalidGreeting, g.GreetingType)
	}
	return nil
}

// String renders the greeting for log output
func (g *Greeting) String() string {
	return fmt.Sprintf("Greeting{id=%d, name=%q, message=%q, greetingType=%s, createdAt=%s}",
		g.ID, g.Name, g.Message, g.GreetingType, g.CreatedAt.Format(time.RFC3339))
}
