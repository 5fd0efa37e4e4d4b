package keyring_test

import (
	"testing"

	"github.com/alkime/procflow/internal/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestSetGet(t *testing.T) {
	gokeyring.MockInit()

	assert.False(t, keyring.IsSet(keyring.OpenAI))

	require.NoError(t, keyring.Set(keyring.OpenAI, "sk-test"))
	assert.True(t, keyring.IsSet(keyring.OpenAI))

	secret, err := keyring.Get(keyring.OpenAI)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", secret)

	_, err = keyring.Get(keyring.Anthropic)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	gokeyring.MockInit()
	require.NoError(t, keyring.Set(keyring.Anthropic, "sk-ant-stored"))

	assert.Equal(t, "explicit", keyring.Resolve("explicit", "anthropic"))
	assert.Equal(t, "sk-ant-stored", keyring.Resolve("", "anthropic"))
	assert.Equal(t, "", keyring.Resolve("", "openai"))
	assert.Equal(t, "", keyring.Resolve("", "mistral"))
}

func TestAPIKeyFromServiceName(t *testing.T) {
	k, err := keyring.APIKeyFromServiceName("openai")
	require.NoError(t, err)
	assert.Equal(t, keyring.OpenAI, k)
	assert.Equal(t, "openai", k.DisplayName())

	_, err = keyring.APIKeyFromServiceName("gemini")
	assert.Error(t, err)
}
