package auth

import "golang.org/x/crypto/bcrypt"

// constantCostHash is a throwaway bcrypt hash compared against when no
// account matches a sign-in identifier. Burning the same hashing cost on the
// not-found path keeps response timing from revealing whether an identifier
// is registered.
const constantCostHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// HashPassword hashes a credential with the configured bcrypt cost. The cost
// is fixed per deployment; stored hashes are never re-costed.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a credential against its stored hash.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// CompareConstantCost runs a bcrypt comparison against a fixed hash and
// always reports a mismatch. Callers use it on lookup misses so that unknown
// identifiers cost the same as wrong passwords.
func CompareConstantCost(plain string) error {
	if err := ComparePassword(constantCostHash, plain); err != nil {
		return err
	}
	return bcrypt.ErrMismatchedHashAndPassword
}
