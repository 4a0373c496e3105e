package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/rc4"
	"errors"
	"fmt"

	cavpDomain "cavp_harness_service/internal/domain/cavp"
	"cavp_harness_service/internal/pkg/logger"
)

// cipherProcessor struct that implements the CipherProcessor interface
type cipherProcessor struct {
	logger logger.Logger
}

// NewCipherProcessor creates and returns a new instance of cipherProcessor
func NewCipherProcessor(logger logger.Logger) (cavpDomain.CipherProcessor, error) {
	return &cipherProcessor{
		logger: logger,
	}, nil
}

// Lookup returns the descriptor registered for name, or nil if the name
// is not recognized.
func (p *cipherProcessor) Lookup(name string) *cavpDomain.Cipher {
	return LookupCipher(name)
}

// Operate encrypts or decrypts input in a single shot without padding,
// producing output of the same length as input. An IV of the wrong length
// fails before any cipher work is done.
func (p *cipherProcessor) Operate(c *cavpDomain.Cipher, encrypt bool, key, iv, input []byte) ([]byte, error) {
	if c == nil {
		return nil, errors.New("cipher descriptor cannot be nil")
	}
	if len(iv) > 0 && len(iv) != c.IVSize {
		return nil, fmt.Errorf("%s: IV length %d does not match required length %d", c.Name, len(iv), c.IVSize)
	}
	if c.Mode == cavpDomain.ModeGCM {
		return nil, fmt.Errorf("%s: authenticated mode requires the AEAD operations", c.Name)
	}

	if c.Family == cavpDomain.FamilyRC4 {
		stream, err := rc4.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to key %s: %w", c.Name, err)
		}
		out := make([]byte, len(input))
		stream.XORKeyStream(out, input)
		p.logger.Info(c.Name, " cipher operation succeeded")
		return out, nil
	}

	if c.KeySize != 0 && len(key) != c.KeySize {
		return nil, fmt.Errorf("%s: key length %d does not match required length %d", c.Name, len(key), c.KeySize)
	}

	block, err := newBlock(c, key)
	if err != nil {
		return nil, fmt.Errorf("failed to key %s: %w", c.Name, err)
	}

	out := make([]byte, len(input))
	switch c.Mode {
	case cavpDomain.ModeECB:
		if len(input)%c.BlockSize != 0 {
			return nil, fmt.Errorf("%s: input length %d is not a multiple of the block size", c.Name, len(input))
		}
		cryptECB(block, encrypt, out, input)
	case cavpDomain.ModeCBC:
		if len(input)%c.BlockSize != 0 {
			return nil, fmt.Errorf("%s: input length %d is not a multiple of the block size", c.Name, len(input))
		}
		if len(iv) != c.IVSize {
			return nil, fmt.Errorf("%s: IV length %d does not match required length %d", c.Name, len(iv), c.IVSize)
		}
		if encrypt {
			cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, input)
		} else {
			cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, input)
		}
	case cavpDomain.ModeCTR:
		if len(iv) != c.IVSize {
			return nil, fmt.Errorf("%s: IV length %d does not match required length %d", c.Name, len(iv), c.IVSize)
		}
		cipher.NewCTR(block, iv).XORKeyStream(out, input)
	case cavpDomain.ModeOFB:
		if len(iv) != c.IVSize {
			return nil, fmt.Errorf("%s: IV length %d does not match required length %d", c.Name, len(iv), c.IVSize)
		}
		cipher.NewOFB(block, iv).XORKeyStream(out, input)
	default:
		return nil, fmt.Errorf("%s: unsupported mode %s", c.Name, c.Mode)
	}

	p.logger.Info(c.Name, " cipher operation succeeded")
	return out, nil
}

// newBlock instantiates the underlying block cipher for the descriptor.
func newBlock(c *cavpDomain.Cipher, key []byte) (cipher.Block, error) {
	switch c.Family {
	case cavpDomain.FamilyAES:
		return aes.NewCipher(key)
	case cavpDomain.FamilyDES:
		return des.NewCipher(key)
	case cavpDomain.FamilyTripleDES:
		if len(key) == cavpDomain.DESEDEKeySize {
			// Two-key EDE keying: K1, K2, K1.
			expanded := make([]byte, 0, cavpDomain.DESEDE3KeySize)
			expanded = append(expanded, key...)
			expanded = append(expanded, key[:8]...)
			return des.NewTripleDESCipher(expanded)
		}
		return des.NewTripleDESCipher(key)
	default:
		return nil, fmt.Errorf("unsupported cipher family %s", c.Family)
	}
}

// cryptECB applies the block cipher to each block independently. The wrapped
// library exposes no ECB mode of its own, so validation vectors drive the
// raw block interface directly.
func cryptECB(block cipher.Block, encrypt bool, dst, src []byte) {
	bs := block.BlockSize()
	for i := 0; i < len(src); i += bs {
		if encrypt {
			block.Encrypt(dst[i:i+bs], src[i:i+bs])
		} else {
			block.Decrypt(dst[i:i+bs], src[i:i+bs])
		}
	}
}
