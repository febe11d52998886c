package serverstat

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/quakeworld/serverstat/qwtext"
)

// QtvusersQuery is the out-of-band request for the viewer names of a
// server's QTV stream.
var QtvusersQuery = []byte("\xff\xff\xff\xffqtvusers")

var qtvusersResponseHeader = []byte("\xff\xff\xff\xffnqtvusers ")

// QtvusersResponse is the decoded qtvusers reply: the stream id and the
// names of everyone watching through the relay, in announcement order.
type QtvusersResponse struct {
	StreamID    uint32
	ClientNames []string
}

// ParseQtvusersResponse decodes one qtvusers reply. The body is a single
// record terminated by the first line feed.
func ParseQtvusersResponse(response []byte) (QtvusersResponse, error) {
	if !bytes.HasPrefix(response, qtvusersResponseHeader) {
		return QtvusersResponse{}, ErrHeaderMismatch
	}

	end := bytes.IndexByte(response, '\n')
	if end < 0 {
		return QtvusersResponse{}, ErrBodyTooShort
	}

	tokens := Tokenize(qwtext.Decode(response[len(qtvusersResponseHeader):end]))

	streamID, err := strconv.ParseUint(tokens[0], 10, 32)
	if err != nil {
		return QtvusersResponse{}, fmt.Errorf("%w: stream id %q", ErrInvalidRecord, tokens[0])
	}

	return QtvusersResponse{
		StreamID:    uint32(streamID),
		ClientNames: append([]string{}, tokens[1:]...),
	}, nil
}
