package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

func GenerateUniqueHash() string {
	// Combine the current time and random data for the hash input
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16) // 128 bits of random data
	_, err := rand.Read(randomBytes)
	if err != nil {
		// Handle random generator failure
		panic("random number generator failed")
	}

	// Convert both pieces of data to byte slices and concatenate
	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)

	// Compute SHA-256 hash
	hash := sha256.Sum256(hashInput)

	// Return the hexadecimal string representation of the hash
	return hex.EncodeToString(hash[:])
}
