package cavp

// CipherProcessor resolves textual algorithm names to cipher handles and
// performs single-shot, no-padding cipher operations with them.
// All cryptographic work is delegated to the wrapped library; implementations
// hold no per-call state and are safe for concurrent use.
type CipherProcessor interface {
	// Lookup returns the descriptor registered for name, or nil if the name
	// is not recognized.
	Lookup(name string) *Cipher

	// Operate encrypts (encrypt=true) or decrypts (encrypt=false) input in a
	// single shot without padding, producing output of the same length as
	// input. An IV of the wrong length fails before any cipher work is done.
	Operate(cipher *Cipher, encrypt bool, key, iv, input []byte) ([]byte, error)
}

// VectorService runs single validation operations and reports their outcome.
// Every failure mode collapses into a result with Passed set to false; the
// driver treats any such result as a test-vector failure.
type VectorService interface {
	// RunCipherVector performs one symmetric cipher operation.
	RunCipherVector(algorithm string, encrypt bool, key, iv, input []byte) *VectorResult

	// RunSealVector performs one AEAD seal operation.
	RunSealVector(algorithm string, tagLen int, key, plaintext, aad []byte) (*VectorResult, *SealResult)

	// RunOpenVector performs one AEAD open operation.
	RunOpenVector(algorithm string, ptLen, aadLen int, key, ciphertext, tag, nonce, aad []byte) (*VectorResult, *OpenResult)
}

// AEADProcessor resolves textual AEAD names to handles and performs
// single-shot seal and open operations with them.
type AEADProcessor interface {
	// Lookup returns the descriptor registered for name, or nil if the name
	// is not recognized.
	Lookup(name string) *AEAD

	// Seal encrypts and authenticates plaintext with the associated data,
	// generating the nonce internally and detaching a tag of tagLen bytes.
	Seal(aead *AEAD, tagLen int, key, plaintext, aad []byte) (*SealResult, error)

	// Open verifies and decrypts a sealed message. The associated data is
	// normalized to aadLen bytes before verification; a tag mismatch or a
	// plaintext length other than ptLen fails.
	Open(aead *AEAD, ptLen, aadLen int, key, ciphertext, tag, nonce, aad []byte) (*OpenResult, error)
}
