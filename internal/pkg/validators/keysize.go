package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size in bytes based on the cipher
// family of the enclosing descriptor (AES, DES, 3DES or RC4).
func KeySizeValidation(fl validator.FieldLevel) bool {
	family := fl.Parent().FieldByName("Family").String()
	keySize := fl.Field().Int()

	switch family {
	case "AES":
		return keySize == 16 || keySize == 24 || keySize == 32
	case "DES":
		return keySize == 8
	case "3DES":
		return keySize == 16 || keySize == 24
	case "RC4":
		// RC4 takes variable-length keys; the descriptor marks that with 0.
		return keySize == 0
	default:
		return false
	}
}
