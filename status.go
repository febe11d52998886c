package serverstat

import (
	"bytes"

	"github.com/quakeworld/serverstat/qwinfo"
	"github.com/quakeworld/serverstat/qwtext"
)

// StatusQuery is the out-of-band status request. Flag value 119 asks for
// serverinfo, players, spectators, teams, QTV announcements and flags.
var StatusQuery = []byte("\xff\xff\xff\xffstatus 119")

var statusResponseHeader = []byte{0xff, 0xff, 0xff, 0xff, 'n'}

var qtvRecordPrefix = []byte("qtv ")

// minSettingsLength is the shortest serverinfo record worth parsing.
const minSettingsLength = len(`hostname\x`)

// StatusResponse is the raw decoded status 119 reply: settings plus the
// client records and optional QTV announcement, before classification.
type StatusResponse struct {
	Settings  qwinfo.Settings
	Clients   []QuakeClient
	QtvStream *QtvStream
}

// ParseStatusResponse decodes one status 119 reply. Structural problems
// (bad header, truncated settings record) fail the whole response, while
// malformed client or qtv records are dropped per line: truncated
// trailing records are common in the wild and should not hide the valid
// ones.
func ParseStatusResponse(response []byte) (StatusResponse, error) {
	if !bytes.HasPrefix(response, statusResponseHeader) {
		return StatusResponse{}, ErrHeaderMismatch
	}

	body := response[len(statusResponseHeader):]
	records := bytes.Split(body, []byte{'\n'})

	if len(records[0]) < minSettingsLength {
		return StatusResponse{}, ErrBodyTooShort
	}

	result := StatusResponse{
		Settings: qwinfo.Parse(qwtext.Decode(records[0])),
		Clients:  []QuakeClient{},
	}

	for _, record := range records[1:] {
		if bytes.HasPrefix(record, qtvRecordPrefix) {
			if stream, err := ParseQtvStream(record); err == nil {
				result.QtvStream = &stream
			} else {
				result.QtvStream = nil
			}
			continue
		}

		if client, err := ParseQuakeClient(record); err == nil {
			result.Clients = append(result.Clients, client)
		}
	}

	return result, nil
}
