package royaltyhook

import (
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtraAccountMetaListAddress(t *testing.T) {
	address, bump, err := GetExtraAccountMetaListAddress(
		mustBase58Decode("kinXdEcpDQeHPEuQnqmUgtYykqKGVFq6CeVX5iAHJq6"),
	)
	require.NoError(t, err)
	assert.Equal(t, "9cwaCghxM9DTZwxCErcm8nSaU17Yg4Vm8kcn6yom2CpG", base58.Encode(address))
	assert.EqualValues(t, 255, bump)
}
