package serverstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQtvusersResponse(t *testing.T) {
	t.Run("with viewers", func(t *testing.T) {
		response, err := ParseQtvusersResponse([]byte("\xff\xff\xff\xffnqtvusers 12 \"[streambot]\" \"XantoM\"\n"))
		require.NoError(t, err)
		assert.Equal(t, QtvusersResponse{
			StreamID:    12,
			ClientNames: []string{"[streambot]", "XantoM"},
		}, response)
	})

	t.Run("without viewers", func(t *testing.T) {
		response, err := ParseQtvusersResponse([]byte("\xff\xff\xff\xffnqtvusers 1\n"))
		require.NoError(t, err)
		assert.Equal(t, QtvusersResponse{StreamID: 1, ClientNames: []string{}}, response)
	})

	t.Run("duplicate names preserved in order", func(t *testing.T) {
		response, err := ParseQtvusersResponse([]byte("\xff\xff\xff\xffnqtvusers 1 \"a\" \"b\" \"a\"\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "a"}, response.ClientNames)
	})
}

func TestParseQtvusersResponseErrors(t *testing.T) {
	t.Run("wrong header", func(t *testing.T) {
		_, err := ParseQtvusersResponse([]byte("\xff\xff\xff\xffn1 \"a\"\n"))
		assert.ErrorIs(t, err, ErrHeaderMismatch)
	})

	t.Run("missing line feed", func(t *testing.T) {
		_, err := ParseQtvusersResponse([]byte("\xff\xff\xff\xffnqtvusers 1 \"a\""))
		assert.ErrorIs(t, err, ErrBodyTooShort)
	})

	t.Run("unparsable stream id", func(t *testing.T) {
		_, err := ParseQtvusersResponse([]byte("\xff\xff\xff\xffnqtvusers x \"a\"\n"))
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})
}
