package usecase

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // X-Hub-Signature is defined as HMAC-SHA1
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildhook/pkg/domain/types"
)

// Algorithm is the HMAC digest named by a signature prefix
type Algorithm string

const (
	AlgorithmSHA1   Algorithm = "sha1"
	AlgorithmSHA256 Algorithm = "sha256"
)

func (a Algorithm) hash() (func() hash.Hash, bool) {
	switch a {
	case AlgorithmSHA1:
		return sha1.New, true
	case AlgorithmSHA256:
		return sha256.New, true
	default:
		return nil, false
	}
}

// Sign returns the signature header value ("sha1=<hex>") of body
func Sign(secret string, body []byte, algo Algorithm) (string, error) {
	newHash, ok := algo.hash()
	if !ok {
		return "", goerr.New("unsupported signature algorithm", goerr.V("algorithm", algo))
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write(body)
	return string(algo) + "=" + hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks signature against body. The prefix of signature selects the
// digest; the comparison runs in constant time.
func Verify(secret string, body []byte, signature string) error {
	if secret == "" {
		return goerr.New("invalid: webhook secret is not configured", goerr.T(types.ErrTagInvalid))
	}
	if signature == "" {
		return goerr.New("invalid: missing signature", goerr.T(types.ErrTagInvalid))
	}

	prefix, _, found := strings.Cut(signature, "=")
	if !found {
		return goerr.New("invalid: malformed signature", goerr.T(types.ErrTagInvalid))
	}

	expected, err := Sign(secret, body, Algorithm(prefix))
	if err != nil {
		return goerr.Wrap(err, "invalid: signature does not match", goerr.T(types.ErrTagInvalid))
	}

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return goerr.New("invalid: signature does not match", goerr.T(types.ErrTagInvalid))
	}

	return nil
}
