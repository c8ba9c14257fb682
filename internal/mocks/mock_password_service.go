package mocks

// MockPasswordService is a function-field test double for
// domain.PasswordService.
type MockPasswordService struct {
	HashFn   func(password string) (string, error)
	VerifyFn func(hashedPassword, password string) bool
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	return m.HashFn(password)
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	return m.VerifyFn(hashedPassword, password)
}
