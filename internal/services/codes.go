package services

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

const (
	verificationCodeBytes = 8
	issueCodeBytes        = 16

	// maxNicknameLen matches profiles.nickname.
	maxNicknameLen = 64
)

// randomHex returns n random bytes hex encoded.
func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// defaultNickname is the local part of email.
func defaultNickname(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// clampNickname cuts s to maxNicknameLen runes.
func clampNickname(s string) string {
	if utf8.RuneCountInString(s) <= maxNicknameLen {
		return s
	}
	return string([]rune(s)[:maxNicknameLen])
}
