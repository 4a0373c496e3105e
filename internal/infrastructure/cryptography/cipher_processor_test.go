//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"crypto/rand"
	"testing"

	cavpDomain "cavp_harness_service/internal/domain/cavp"
	"cavp_harness_service/internal/pkg/strutil"
	pkgTesting "cavp_harness_service/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCipherProcessor(t *testing.T) cavpDomain.CipherProcessor {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	processor, err := NewCipherProcessor(logger)
	require.NoError(t, err)
	return processor
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return buf
}

func TestCipherProcessor(t *testing.T) {
	processor := setupCipherProcessor(t)

	t.Run("RoundTripAllSupportedCiphers", func(t *testing.T) {
		for _, name := range supportedCipherNames {
			handle := processor.Lookup(name)
			require.NotNil(t, handle, "expected handle for %s", name)
			if handle.Mode == cavpDomain.ModeGCM {
				continue
			}

			keySize := handle.KeySize
			if keySize == 0 {
				keySize = 16
			}
			key := randomBytes(t, keySize)
			iv := randomBytes(t, handle.IVSize)
			plaintext := randomBytes(t, 4*handle.BlockSize)

			ciphertext, err := processor.Operate(handle, true, key, iv, plaintext)
			require.NoError(t, err, "encrypt failed for %s", name)
			assert.Equal(t, len(plaintext), len(ciphertext), "output length for %s", name)
			assert.NotEqual(t, plaintext, ciphertext, "ciphertext equals plaintext for %s", name)

			decrypted, err := processor.Operate(handle, false, key, iv, ciphertext)
			require.NoError(t, err, "decrypt failed for %s", name)
			assert.Equal(t, plaintext, decrypted, "round trip failed for %s", name)
		}
	})

	t.Run("DeterministicEncryption", func(t *testing.T) {
		handle := processor.Lookup("aes-128-cbc")
		require.NotNil(t, handle)

		key := make([]byte, 16)
		iv := make([]byte, 16)
		input := make([]byte, 16)

		first, err := processor.Operate(handle, true, key, iv, input)
		require.NoError(t, err)
		second, err := processor.Operate(handle, true, key, iv, input)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("KnownAnswerAES128ECB", func(t *testing.T) {
		handle := processor.Lookup("aes-128-ecb")
		require.NotNil(t, handle)

		out, err := processor.Operate(handle, true, make([]byte, 16), nil, make([]byte, 16))
		require.NoError(t, err)
		assert.Equal(t, "66e94bd4ef8a2c3b884cfa59ca342b2e", strutil.EncodeHex(out))
	})

	t.Run("IVLengthMismatchFails", func(t *testing.T) {
		handle := processor.Lookup("aes-128-cbc")
		require.NotNil(t, handle)

		_, err := processor.Operate(handle, true, make([]byte, 16), make([]byte, 12), make([]byte, 16))
		assert.Error(t, err)

		// ECB takes no IV at all.
		handle = processor.Lookup("aes-128-ecb")
		require.NotNil(t, handle)
		_, err = processor.Operate(handle, true, make([]byte, 16), make([]byte, 16), make([]byte, 16))
		assert.Error(t, err)
	})

	t.Run("MissingIVFails", func(t *testing.T) {
		handle := processor.Lookup("aes-256-cbc")
		require.NotNil(t, handle)

		_, err := processor.Operate(handle, true, make([]byte, 32), nil, make([]byte, 16))
		assert.Error(t, err)
	})

	t.Run("WrongKeyLengthFails", func(t *testing.T) {
		handle := processor.Lookup("aes-128-cbc")
		require.NotNil(t, handle)

		_, err := processor.Operate(handle, true, make([]byte, 24), make([]byte, 16), make([]byte, 16))
		assert.Error(t, err)

		handle = processor.Lookup("des-cbc")
		require.NotNil(t, handle)
		_, err = processor.Operate(handle, true, make([]byte, 16), make([]byte, 8), make([]byte, 8))
		assert.Error(t, err)
	})

	t.Run("PartialBlockFailsForBlockModes", func(t *testing.T) {
		for _, name := range []string{"aes-128-ecb", "aes-128-cbc", "des-ecb", "des-ede3-cbc"} {
			handle := processor.Lookup(name)
			require.NotNil(t, handle)

			key := make([]byte, handle.KeySize)
			iv := make([]byte, handle.IVSize)
			_, err := processor.Operate(handle, true, key, iv, make([]byte, handle.BlockSize-1))
			assert.Error(t, err, "expected partial block failure for %s", name)
		}
	})

	t.Run("StreamModesAcceptAnyLength", func(t *testing.T) {
		for _, name := range []string{"aes-192-ctr", "aes-256-ofb", "rc4"} {
			handle := processor.Lookup(name)
			require.NotNil(t, handle)

			keySize := handle.KeySize
			if keySize == 0 {
				keySize = 5
			}
			key := randomBytes(t, keySize)
			iv := randomBytes(t, handle.IVSize)
			plaintext := []byte("odd-sized input")

			ciphertext, err := processor.Operate(handle, true, key, iv, plaintext)
			require.NoError(t, err, "encrypt failed for %s", name)
			assert.Equal(t, len(plaintext), len(ciphertext))

			decrypted, err := processor.Operate(handle, false, key, iv, ciphertext)
			require.NoError(t, err, "decrypt failed for %s", name)
			assert.Equal(t, plaintext, decrypted)
		}
	})

	t.Run("TwoKeyTripleDESMatchesExpandedThreeKey", func(t *testing.T) {
		twoKey := processor.Lookup("des-ede")
		threeKey := processor.Lookup("des-ede3")
		require.NotNil(t, twoKey)
		require.NotNil(t, threeKey)

		key := randomBytes(t, 16)
		expanded := append(append([]byte{}, key...), key[:8]...)
		input := randomBytes(t, 16)

		twoKeyOut, err := processor.Operate(twoKey, true, key, nil, input)
		require.NoError(t, err)
		threeKeyOut, err := processor.Operate(threeKey, true, expanded, nil, input)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(twoKeyOut, threeKeyOut))
	})

	t.Run("GCMDescriptorRejectsCipherOperation", func(t *testing.T) {
		handle := processor.Lookup("aes-128-gcm")
		require.NotNil(t, handle)

		_, err := processor.Operate(handle, true, make([]byte, 16), make([]byte, 12), make([]byte, 16))
		assert.Error(t, err)
	})

	t.Run("NilDescriptorFails", func(t *testing.T) {
		_, err := processor.Operate(nil, true, make([]byte, 16), nil, make([]byte, 16))
		assert.Error(t, err)
	})
}
