package transferrequest

import (
	"bytes"
	"crypto/sha512"
	"encoding/base32"
)

const (
	publicKeySize     = 32
	checksumSize      = 4
	addressLength     = 58
	decodedAddressLen = publicKeySize + checksumSize
)

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func addressChecksum(publicKey []byte) []byte {
	hash := sha512.Sum512_256(publicKey)
	return hash[len(hash)-checksumSize:]
}

// EncodeAddress returns the address of the given public key.
func EncodeAddress(publicKey [publicKeySize]byte) string {
	decoded := make([]byte, 0, decodedAddressLen)
	decoded = append(decoded, publicKey[:]...)
	decoded = append(decoded, addressChecksum(publicKey[:])...)
	return addressEncoding.EncodeToString(decoded)
}

// IsValidAddress returns true if address is a 58 character base32 string whose
// last 4 decoded bytes are the checksum of the public key before them.
func IsValidAddress(address string) bool {
	if len(address) != addressLength {
		return false
	}
	decoded, err := addressEncoding.DecodeString(address)
	if err != nil || len(decoded) != decodedAddressLen {
		return false
	}
	publicKey, checksum := decoded[:publicKeySize], decoded[publicKeySize:]
	return bytes.Equal(addressChecksum(publicKey), checksum)
}
