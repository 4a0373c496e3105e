package cavp

// OperationEncrypt represents the encrypt direction of a cipher operation
const OperationEncrypt = "encrypt"

// OperationDecrypt represents the decrypt direction of a cipher operation
const OperationDecrypt = "decrypt"

// OperationSeal represents the AEAD seal operation
const OperationSeal = "seal"

// OperationOpen represents the AEAD open operation
const OperationOpen = "open"

// FamilyAES represents the AES block cipher family
const FamilyAES = "AES"

// FamilyDES represents the single DES block cipher family
const FamilyDES = "DES"

// FamilyTripleDES represents the two- and three-key triple DES family
const FamilyTripleDES = "3DES"

// FamilyRC4 represents the RC4 stream cipher family
const FamilyRC4 = "RC4"

// FamilyChaCha20Poly1305 represents the ChaCha20-Poly1305 AEAD family
const FamilyChaCha20Poly1305 = "ChaCha20-Poly1305"

// ModeStream marks ciphers that apply a key stream directly (RC4)
const ModeStream = "stream"

// ModeECB represents electronic codebook mode
const ModeECB = "ecb"

// ModeCBC represents cipher block chaining mode
const ModeCBC = "cbc"

// ModeCTR represents counter mode
const ModeCTR = "ctr"

// ModeOFB represents output feedback mode
const ModeOFB = "ofb"

// ModeGCM represents Galois/counter mode; such descriptors are only usable
// through the AEAD operations
const ModeGCM = "gcm"

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// DESKeySize is the single DES key size in bytes
const DESKeySize = 8

// DESEDEKeySize is the two-key triple DES key size in bytes
const DESEDEKeySize = 16

// DESEDE3KeySize is the three-key triple DES key size in bytes
const DESEDE3KeySize = 24
