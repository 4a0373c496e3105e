package cryptography

import (
	cavpDomain "cavp_harness_service/internal/domain/cavp"

	"golang.org/x/crypto/chacha20poly1305"
)

// cipherSuite maps the textual algorithm names understood by the harness to
// their primitive descriptors. Descriptors are immutable after init and are
// shared between calls.
var cipherSuite = map[string]*cavpDomain.Cipher{
	"des-cbc":      {Name: "des-cbc", Family: cavpDomain.FamilyDES, Mode: cavpDomain.ModeCBC, KeySize: cavpDomain.DESKeySize, BlockSize: 8, IVSize: 8},
	"des-ecb":      {Name: "des-ecb", Family: cavpDomain.FamilyDES, Mode: cavpDomain.ModeECB, KeySize: cavpDomain.DESKeySize, BlockSize: 8, IVSize: 0},
	"des-ede":      {Name: "des-ede", Family: cavpDomain.FamilyTripleDES, Mode: cavpDomain.ModeECB, KeySize: cavpDomain.DESEDEKeySize, BlockSize: 8, IVSize: 0},
	"des-ede3":     {Name: "des-ede3", Family: cavpDomain.FamilyTripleDES, Mode: cavpDomain.ModeECB, KeySize: cavpDomain.DESEDE3KeySize, BlockSize: 8, IVSize: 0},
	"des-ede-cbc":  {Name: "des-ede-cbc", Family: cavpDomain.FamilyTripleDES, Mode: cavpDomain.ModeCBC, KeySize: cavpDomain.DESEDEKeySize, BlockSize: 8, IVSize: 8},
	"des-ede3-cbc": {Name: "des-ede3-cbc", Family: cavpDomain.FamilyTripleDES, Mode: cavpDomain.ModeCBC, KeySize: cavpDomain.DESEDE3KeySize, BlockSize: 8, IVSize: 8},
	"rc4":          {Name: "rc4", Family: cavpDomain.FamilyRC4, Mode: cavpDomain.ModeStream, KeySize: 0, BlockSize: 1, IVSize: 0},
	"aes-128-ecb":  {Name: "aes-128-ecb", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeECB, KeySize: cavpDomain.AESKeySize128, BlockSize: 16, IVSize: 0},
	"aes-192-ecb":  {Name: "aes-192-ecb", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeECB, KeySize: cavpDomain.AESKeySize192, BlockSize: 16, IVSize: 0},
	"aes-256-ecb":  {Name: "aes-256-ecb", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeECB, KeySize: cavpDomain.AESKeySize256, BlockSize: 16, IVSize: 0},
	"aes-128-cbc":  {Name: "aes-128-cbc", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeCBC, KeySize: cavpDomain.AESKeySize128, BlockSize: 16, IVSize: 16},
	"aes-192-cbc":  {Name: "aes-192-cbc", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeCBC, KeySize: cavpDomain.AESKeySize192, BlockSize: 16, IVSize: 16},
	"aes-256-cbc":  {Name: "aes-256-cbc", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeCBC, KeySize: cavpDomain.AESKeySize256, BlockSize: 16, IVSize: 16},
	"aes-128-ctr":  {Name: "aes-128-ctr", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeCTR, KeySize: cavpDomain.AESKeySize128, BlockSize: 16, IVSize: 16},
	"aes-192-ctr":  {Name: "aes-192-ctr", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeCTR, KeySize: cavpDomain.AESKeySize192, BlockSize: 16, IVSize: 16},
	"aes-256-ctr":  {Name: "aes-256-ctr", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeCTR, KeySize: cavpDomain.AESKeySize256, BlockSize: 16, IVSize: 16},
	"aes-128-ofb":  {Name: "aes-128-ofb", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeOFB, KeySize: cavpDomain.AESKeySize128, BlockSize: 16, IVSize: 16},
	"aes-192-ofb":  {Name: "aes-192-ofb", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeOFB, KeySize: cavpDomain.AESKeySize192, BlockSize: 16, IVSize: 16},
	"aes-256-ofb":  {Name: "aes-256-ofb", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeOFB, KeySize: cavpDomain.AESKeySize256, BlockSize: 16, IVSize: 16},
	"aes-128-gcm":  {Name: "aes-128-gcm", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeGCM, KeySize: cavpDomain.AESKeySize128, BlockSize: 16, IVSize: 12},
	"aes-192-gcm":  {Name: "aes-192-gcm", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeGCM, KeySize: cavpDomain.AESKeySize192, BlockSize: 16, IVSize: 12},
	"aes-256-gcm":  {Name: "aes-256-gcm", Family: cavpDomain.FamilyAES, Mode: cavpDomain.ModeGCM, KeySize: cavpDomain.AESKeySize256, BlockSize: 16, IVSize: 12},
}

// aeadSuite maps AEAD names to their descriptors.
var aeadSuite = map[string]*cavpDomain.AEAD{
	"aes-128-gcm":       {Name: "aes-128-gcm", Family: cavpDomain.FamilyAES, KeySize: cavpDomain.AESKeySize128, NonceSize: 12, TagSize: 16},
	"aes-192-gcm":       {Name: "aes-192-gcm", Family: cavpDomain.FamilyAES, KeySize: cavpDomain.AESKeySize192, NonceSize: 12, TagSize: 16},
	"aes-256-gcm":       {Name: "aes-256-gcm", Family: cavpDomain.FamilyAES, KeySize: cavpDomain.AESKeySize256, NonceSize: 12, TagSize: 16},
	"chacha20-poly1305": {Name: "chacha20-poly1305", Family: cavpDomain.FamilyChaCha20Poly1305, KeySize: chacha20poly1305.KeySize, NonceSize: chacha20poly1305.NonceSize, TagSize: chacha20poly1305.Overhead},
}

// LookupCipher returns the descriptor for a named symmetric cipher, or nil
// if the name is not recognized.
func LookupCipher(name string) *cavpDomain.Cipher {
	return cipherSuite[name]
}

// LookupAEAD returns the descriptor for a named AEAD, or nil if the name is
// not recognized.
func LookupAEAD(name string) *cavpDomain.AEAD {
	return aeadSuite[name]
}
