package jwt

import (
	"crypto"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrWeakSecret           = errors.New("hmac secret must be at least 8 bytes")
	ErrMissingKey           = errors.New("signing key material missing")
)

const minSecretLen = 8

// Key is the signing configuration of a single token kind. A Key without a
// private half can still verify tokens.
type Key struct {
	method    jwt.SigningMethod
	signKey   any
	verifyKey any
	ttl       time.Duration
}

// Algorithm returns the JWS algorithm name, e.g. "HS256".
func (k *Key) Algorithm() string { return k.method.Alg() }

// TTL returns the default lifetime of tokens signed with k.
func (k *Key) TTL() time.Duration { return k.ttl }

// NewHMACKey builds a shared-secret key for HS256, HS384 or HS512.
func NewHMACKey(alg string, secret []byte, ttl time.Duration) (*Key, error) {
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an HMAC algorithm", ErrUnsupportedAlgorithm, alg)
	}
	if len(secret) < minSecretLen {
		return nil, ErrWeakSecret
	}
	return &Key{method: method, signKey: secret, verifyKey: secret, ttl: ttl}, nil
}

// NewAsymmetricKey builds an RSA, RSA-PSS, ECDSA or EdDSA key from PEM blocks.
// publicPEM may be empty when privatePEM is given; privatePEM may be empty for
// verify-only keys.
func NewAsymmetricKey(alg string, privatePEM, publicPEM []byte, ttl time.Duration) (*Key, error) {
	if len(privatePEM) == 0 && len(publicPEM) == 0 {
		return nil, ErrMissingKey
	}

	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	var (
		parsePrivate func([]byte) (any, error)
		parsePublic  func([]byte) (any, error)
	)
	switch method.(type) {
	case *jwt.SigningMethodRSA, *jwt.SigningMethodRSAPSS:
		parsePrivate = func(b []byte) (any, error) { return jwt.ParseRSAPrivateKeyFromPEM(b) }
		parsePublic = func(b []byte) (any, error) { return jwt.ParseRSAPublicKeyFromPEM(b) }
	case *jwt.SigningMethodECDSA:
		parsePrivate = func(b []byte) (any, error) { return jwt.ParseECPrivateKeyFromPEM(b) }
		parsePublic = func(b []byte) (any, error) { return jwt.ParseECPublicKeyFromPEM(b) }
	case *jwt.SigningMethodEd25519:
		parsePrivate = func(b []byte) (any, error) { return jwt.ParseEdPrivateKeyFromPEM(b) }
		parsePublic = func(b []byte) (any, error) { return jwt.ParseEdPublicKeyFromPEM(b) }
	default:
		return nil, fmt.Errorf("%w: %q is not an asymmetric algorithm", ErrUnsupportedAlgorithm, alg)
	}

	key := &Key{method: method, ttl: ttl}
	if len(privatePEM) > 0 {
		priv, err := parsePrivate(privatePEM)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		key.signKey = priv
		if signer, ok := priv.(crypto.Signer); ok {
			key.verifyKey = signer.Public()
		}
	}
	if len(publicPEM) > 0 {
		pub, err := parsePublic(publicPEM)
		if err != nil {
			return nil, fmt.Errorf("parse public key: %w", err)
		}
		key.verifyKey = pub
	}
	if key.verifyKey == nil {
		return nil, ErrMissingKey
	}
	return key, nil
}

// LoadKey builds a Key from configuration values: a shared secret for HMAC
// algorithms, PEM files otherwise.
func LoadKey(alg, secret, privateKeyFile, publicKeyFile string, ttl time.Duration) (*Key, error) {
	if _, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC); ok {
		return NewHMACKey(alg, []byte(secret), ttl)
	}

	var privatePEM, publicPEM []byte
	var err error
	if privateKeyFile != "" {
		if privatePEM, err = os.ReadFile(privateKeyFile); err != nil {
			return nil, fmt.Errorf("read private key: %w", err)
		}
	}
	if publicKeyFile != "" {
		if publicPEM, err = os.ReadFile(publicKeyFile); err != nil {
			return nil, fmt.Errorf("read public key: %w", err)
		}
	}
	return NewAsymmetricKey(alg, privatePEM, publicPEM, ttl)
}
