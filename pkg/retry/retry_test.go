package retry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_NoStrategies(t *testing.T) {
	var calls int
	attempts, err := Retry(func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, attempts)
}

func TestRetry_Limit(t *testing.T) {
	terminal := errors.New("terminal")

	var calls int
	attempts, err := Retry(func() error {
		calls++
		return terminal
	}, Limit(3))
	assert.Equal(t, terminal, err)
	assert.EqualValues(t, 3, attempts)
	assert.Equal(t, 3, calls)
}

func TestRetry_RetriableErrors(t *testing.T) {
	retriable := errors.New("retriable")
	terminal := errors.New("terminal")

	var calls int
	_, err := Retry(func() error {
		calls++
		if calls == 1 {
			return retriable
		}
		return terminal
	}, RetriableErrors(retriable), Limit(5))
	assert.Equal(t, terminal, err)
	assert.Equal(t, 2, calls)
}
