package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashWithSecretIsDeterministic(t *testing.T) {
	first := HashWithSecret("pw1", "secret")
	second := HashWithSecret("pw1", "secret")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestHashWithSecretConcatenatesValueThenSecret(t *testing.T) {
	// The digest covers value ‖ secret as a single byte string.
	assert.Equal(t, HashWithSecret("ab", "cd"), HashWithSecret("abcd", ""))
	assert.NotEqual(t, HashWithSecret("ab", "cd"), HashWithSecret("cd", "ab"))
}

func TestHashWithSecretKnownVector(t *testing.T) {
	// sha256("abc") from the FIPS 180-2 test vectors.
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		HashWithSecret("abc", ""))
}

func TestDifferentSecretsProduceDifferentDigests(t *testing.T) {
	assert.NotEqual(t, HashWithSecret("pw1", "s1"), HashWithSecret("pw1", "s2"))
}
