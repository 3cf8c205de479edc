// Package secmem wraps sensitive values with secure memory handling.
package secmem

import "github.com/awnumar/memguard"

// Value stores a secret string in mlock'd memory, encrypted at rest, between
// the moment it is read from the user and the SDK call that consumes it.
type Value struct {
	enclave *memguard.Enclave
}

// New seals data into an enclave. The input slice is securely zeroed after
// copying.
func New(data []byte) *Value {
	if len(data) == 0 {
		return &Value{}
	}

	enclave := memguard.NewEnclave(data)

	// Securely zero the original data (prevents compiler optimization from skipping)
	memguard.WipeBytes(data)

	return &Value{enclave: enclave}
}

// NewString seals a string value.
func NewString(s string) *Value {
	return New([]byte(s))
}

// Empty reports whether the value holds no data.
func (v *Value) Empty() bool {
	return v == nil || v.enclave == nil
}

// Open returns a copy of the plaintext.
func (v *Value) Open() (string, error) {
	if v.Empty() {
		return "", nil
	}

	lb, err := v.enclave.Open()
	if err != nil {
		return "", err
	}

	defer lb.Destroy()

	return lb.String(), nil
}
