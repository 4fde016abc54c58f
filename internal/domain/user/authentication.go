package user

import "fmt"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) == 0 {
		return fmt.Errorf("password is required")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	return nil
}

func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}

	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}

	return nil
}
