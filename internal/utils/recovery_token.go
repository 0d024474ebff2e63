// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// RecoveryTokenLength is the number of characters of a recovery token.
	RecoveryTokenLength = 12

	// RecoveryTokenAlphabet omits look-alike characters (0, O, 1, I, l) and
	// adds five symbols.
	RecoveryTokenAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz$_#@!"
)

// NewRecoveryToken draws a [RecoveryTokenLength] token from
// [RecoveryTokenAlphabet] using crypto/rand.
func NewRecoveryToken() (string, error) {
	alphabetLen := big.NewInt(int64(len(RecoveryTokenAlphabet)))
	token := make([]byte, RecoveryTokenLength)
	for i := range token {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("error generating recovery token: %w", err)
		}
		token[i] = RecoveryTokenAlphabet[n.Int64()]
	}
	return string(token), nil
}
