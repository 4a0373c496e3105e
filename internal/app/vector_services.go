// Package app wires the cryptographic processors into the vector-level
// operations consumed by the CAVP test driver.
package app

import (
	"fmt"

	"cavp_harness_service/internal/domain/cavp"
	"cavp_harness_service/internal/infrastructure/cryptography"
	"cavp_harness_service/internal/pkg/logger"
	"cavp_harness_service/internal/pkg/strutil"

	"github.com/google/uuid"
)

// vectorService implements the VectorService contract on top of the cipher
// and AEAD processors.
type vectorService struct {
	cipherProcessor cavp.CipherProcessor
	aeadProcessor   cavp.AEADProcessor
	logger          logger.Logger
}

// NewVectorService creates a new instance of vectorService
func NewVectorService(logger logger.Logger) (cavp.VectorService, error) {
	cipherProcessor, err := cryptography.NewCipherProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher processor: %w", err)
	}

	aeadProcessor, err := cryptography.NewAEADProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AEAD processor: %w", err)
	}

	return &vectorService{
		cipherProcessor: cipherProcessor,
		aeadProcessor:   aeadProcessor,
		logger:          logger,
	}, nil
}

// RunCipherVector performs one symmetric cipher operation and records the
// outcome. Unrecognized algorithm names are reported as failed vectors.
func (s *vectorService) RunCipherVector(algorithm string, encrypt bool, key, iv, input []byte) *cavp.VectorResult {
	operation := cavp.OperationEncrypt
	if !encrypt {
		operation = cavp.OperationDecrypt
	}
	result := newVectorResult(algorithm, operation)

	handle := s.cipherProcessor.Lookup(algorithm)
	if handle == nil {
		s.logger.Warn("unsupported cipher ", algorithm)
		return result
	}

	output, err := s.cipherProcessor.Operate(handle, encrypt, key, iv, input)
	if err != nil {
		s.logger.Error(err)
		return result
	}

	result.Passed = true
	result.Output = strutil.EncodeHex(output)
	return result
}

// RunSealVector performs one AEAD seal operation and records the outcome.
func (s *vectorService) RunSealVector(algorithm string, tagLen int, key, plaintext, aad []byte) (*cavp.VectorResult, *cavp.SealResult) {
	result := newVectorResult(algorithm, cavp.OperationSeal)

	handle := s.aeadProcessor.Lookup(algorithm)
	if handle == nil {
		s.logger.Warn("unsupported AEAD ", algorithm)
		return result, nil
	}

	sealed, err := s.aeadProcessor.Seal(handle, tagLen, key, plaintext, aad)
	if err != nil {
		s.logger.Error(err)
		return result, nil
	}

	result.Passed = true
	result.Output = strutil.EncodeHex(sealed.Ciphertext)
	return result, sealed
}

// RunOpenVector performs one AEAD open operation and records the outcome.
func (s *vectorService) RunOpenVector(algorithm string, ptLen, aadLen int, key, ciphertext, tag, nonce, aad []byte) (*cavp.VectorResult, *cavp.OpenResult) {
	result := newVectorResult(algorithm, cavp.OperationOpen)

	handle := s.aeadProcessor.Lookup(algorithm)
	if handle == nil {
		s.logger.Warn("unsupported AEAD ", algorithm)
		return result, nil
	}

	opened, err := s.aeadProcessor.Open(handle, ptLen, aadLen, key, ciphertext, tag, nonce, aad)
	if err != nil {
		s.logger.Error(err)
		return result, nil
	}

	result.Passed = true
	result.Output = strutil.EncodeHex(opened.Plaintext)
	return result, opened
}

func newVectorResult(algorithm, operation string) *cavp.VectorResult {
	return &cavp.VectorResult{
		ID:        uuid.New().String(),
		Algorithm: algorithm,
		Operation: operation,
	}
}
