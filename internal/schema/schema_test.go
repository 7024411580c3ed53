package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c := NewCollector("thing")
		c.Required("name", "ok")
		require.NoError(t, c.Err())
	})

	t.Run("single", func(t *testing.T) {
		c := NewCollector("thing")
		c.Required("name", "   ")
		err := c.Err()
		require.ErrorIs(t, err, ErrInvalid)
		require.EqualError(t, err, "invalid thing: name is required")
	})

	t.Run("many", func(t *testing.T) {
		c := NewCollector("model")
		c.Required("name", "")
		c.Add("api-base", "must be an absolute http(s) URL, got %q", "ftp://x")
		c.Add("temperature", "nope")

		var verr *ValidationError
		require.True(t, errors.As(c.Err(), &verr))
		require.Equal(t, []string{"name", "api-base", "temperature"}, verr.Fields())
		require.Equal(t, `invalid model: name is required, api-base must be an absolute http(s) URL, got "ftp://x", and temperature nope`, verr.Error())
	})
}
