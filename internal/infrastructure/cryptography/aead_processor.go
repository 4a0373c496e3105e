package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	cavpDomain "cavp_harness_service/internal/domain/cavp"
	"cavp_harness_service/internal/pkg/logger"

	"golang.org/x/crypto/chacha20poly1305"
)

// aeadProcessor struct that implements the AEADProcessor interface
type aeadProcessor struct {
	logger logger.Logger
}

// NewAEADProcessor creates and returns a new instance of aeadProcessor
func NewAEADProcessor(logger logger.Logger) (cavpDomain.AEADProcessor, error) {
	return &aeadProcessor{
		logger: logger,
	}, nil
}

// Lookup returns the descriptor registered for name, or nil if the name
// is not recognized.
func (p *aeadProcessor) Lookup(name string) *cavpDomain.AEAD {
	return LookupAEAD(name)
}

// Seal encrypts and authenticates plaintext with the associated data. The
// nonce is generated by the underlying context, not supplied by the caller,
// and the tag is returned detached at tagLen bytes.
func (p *aeadProcessor) Seal(a *cavpDomain.AEAD, tagLen int, key, plaintext, aad []byte) (*cavpDomain.SealResult, error) {
	aead, err := p.newContext(a, tagLen, key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce for %s: %w", a.Name, err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, aad)
	p.logger.Info(a.Name, " seal succeeded")
	return &cavpDomain.SealResult{
		Ciphertext: sealed[:len(plaintext)],
		Tag:        sealed[len(plaintext):],
		Nonce:      nonce,
	}, nil
}

// Open verifies and decrypts a sealed message. The associated data is
// normalized to aadLen bytes before verification; a tag mismatch or a
// plaintext length other than ptLen fails.
func (p *aeadProcessor) Open(a *cavpDomain.AEAD, ptLen, aadLen int, key, ciphertext, tag, nonce, aad []byte) (*cavpDomain.OpenResult, error) {
	aead, err := p.newContext(a, len(tag), key)
	if err != nil {
		return nil, err
	}

	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%s: nonce length %d does not match required length %d", a.Name, len(nonce), aead.NonceSize())
	}

	ad := make([]byte, aadLen)
	copy(ad, aad)

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, ad)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s message: %w", a.Name, err)
	}
	if len(plaintext) != ptLen {
		return nil, fmt.Errorf("%s: plaintext length %d does not match expected length %d", a.Name, len(plaintext), ptLen)
	}

	p.logger.Info(a.Name, " open succeeded")
	return &cavpDomain.OpenResult{
		Plaintext:      plaintext,
		AdditionalData: ad,
	}, nil
}

// newContext initializes a scoped AEAD context for a single call.
func (p *aeadProcessor) newContext(a *cavpDomain.AEAD, tagLen int, key []byte) (cipher.AEAD, error) {
	if a == nil {
		return nil, errors.New("AEAD descriptor cannot be nil")
	}
	if len(key) != a.KeySize {
		return nil, fmt.Errorf("%s: key length %d does not match required length %d", a.Name, len(key), a.KeySize)
	}

	switch a.Family {
	case cavpDomain.FamilyAES:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to key %s: %w", a.Name, err)
		}
		aead, err := cipher.NewGCMWithTagSize(block, tagLen)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize %s context: %w", a.Name, err)
		}
		return aead, nil
	case cavpDomain.FamilyChaCha20Poly1305:
		if tagLen != chacha20poly1305.Overhead {
			return nil, fmt.Errorf("%s: tag length %d is not supported", a.Name, tagLen)
		}
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize %s context: %w", a.Name, err)
		}
		return aead, nil
	default:
		return nil, fmt.Errorf("unsupported AEAD family %s", a.Family)
	}
}
