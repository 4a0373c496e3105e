// Package cavp defines the core interfaces and structures for mapping textual
// algorithm names to symmetric cipher and AEAD primitive descriptors and for
// performing single-shot encrypt, decrypt, seal and open operations against them.
package cavp
