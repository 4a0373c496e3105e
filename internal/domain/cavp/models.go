package cavp

import (
	"errors"
	"fmt"

	"cavp_harness_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Cipher describes a named symmetric cipher primitive. It acts as the handle
// returned by name lookup and consumed by the cipher operation.
type Cipher struct {
	Name      string `validate:"required"`
	Family    string `validate:"required,oneof=AES DES 3DES RC4"`
	Mode      string `validate:"required,oneof=stream ecb cbc ctr ofb gcm"`
	KeySize   int    `validate:"keySizeValidation"` // bytes; 0 means variable length
	BlockSize int    `validate:"min=1"`
	IVSize    int    `validate:"min=0"`
}

// Validate for validating Cipher struct
func (c *Cipher) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keySizeValidation", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(c)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// AEAD describes a named authenticated encryption primitive. It acts as the
// handle consumed by the seal and open operations.
type AEAD struct {
	Name      string `validate:"required"`
	Family    string `validate:"required"`
	KeySize   int    `validate:"min=16"`
	NonceSize int    `validate:"min=1"`
	TagSize   int    `validate:"min=4,max=16"`
}

// Validate for validating AEAD struct
func (a *AEAD) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// SealResult holds the outputs of an AEAD seal operation. The nonce is
// produced by the seal itself, not supplied by the caller.
type SealResult struct {
	Ciphertext []byte
	Tag        []byte
	Nonce      []byte
}

// OpenResult holds the outputs of an AEAD open operation.
type OpenResult struct {
	Plaintext      []byte
	AdditionalData []byte
}

// VectorResult records the outcome of a single validation operation as
// reported upward to the test driver.
type VectorResult struct {
	ID        string `validate:"required,uuid4"`
	Algorithm string `validate:"required"`
	Operation string `validate:"required,oneof=encrypt decrypt seal open"`
	Passed    bool
	Output    string `validate:"omitempty,lowercase,hexadecimal"`
}

// Validate for validating VectorResult struct
func (v *VectorResult) Validate() error {
	validate := validator.New()

	err := validate.Struct(v)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
