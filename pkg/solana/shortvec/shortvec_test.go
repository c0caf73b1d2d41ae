package shortvec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 5, 127, 128, 255, 256, 16384, 65535} {
		buf := new(bytes.Buffer)
		_, err := EncodeLen(buf, v)
		require.NoError(t, err)

		decoded, err := DecodeLen(buf)
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestEncodeLen_TooLarge(t *testing.T) {
	buf := new(bytes.Buffer)
	_, err := EncodeLen(buf, 1<<16)
	assert.Error(t, err)
}

func TestDecodeLen_TooLong(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xff, 0xff, 0xff, 0xff, 0x01})
	_, err := DecodeLen(buf)
	assert.Error(t, err)
}
