package user

import (
	"errors"
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an account in the booking system. Customers book jobs, translators
// claim them, admins correct metadata. A translator's languages drive the
// eligibility checks in services.TranslatorMatcher, and the push token is the
// delivery address for push notifications.
type User struct {
	id    kernel.UUID
	name  string
	email string
	phone string
	role  Role

	// languages is the translator's skill set; empty for other roles.
	languages []kernel.Language

	// pushToken is the device registration token; empty when the user has no
	// registered device.
	pushToken string

	guard guard.ConstructorGuard
}

// NewUser creates a User with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (required)
//   - email: contact email (must contain "@")
//   - phone: contact phone, optional
//   - role: account role (must be a defined role)
//   - languages: translator skill set, nil for non-translators
func NewUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	role Role,
	languages []kernel.Language,
) (*User, error) {
	u := &User{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
		u.setLanguages(languages),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	role Role,
	languages []kernel.Language,
	pushToken string,
) (*User, error) {
	u, err := NewUser(id, name, email, phone, role, languages)
	if err != nil {
		return nil, err
	}

	u.pushToken = pushToken
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the contact email.
func (u *User) Email() string {
	return u.email
}

// Phone returns the contact phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// Languages returns the translator's skill set. Empty for non-translators.
func (u *User) Languages() []kernel.Language {
	return u.languages
}

// PushToken returns the device registration token, or empty if none.
func (u *User) PushToken() string {
	return u.pushToken
}

// SpeaksLanguage reports whether the user's skill set includes the language.
func (u *User) SpeaksLanguage(language kernel.Language) bool {
	for _, l := range u.languages {
		if l.IsEqual(language) {
			return true
		}
	}
	return false
}

// SetPushToken registers or replaces the device token. An empty token
// unregisters the device.
func (u *User) SetPushToken(token string) {
	u.pushToken = token
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setLanguages(languages []kernel.Language) error {
	for _, l := range languages {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	u.languages = languages
	return nil
}
