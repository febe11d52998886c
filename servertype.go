package serverstat

import "strings"

// ServerType is the topological role a server plays, derived from the
// version string it advertises.
type ServerType string

const (
	ServerTypeGame    ServerType = "game_server"
	ServerTypeProxy   ServerType = "proxy_server"
	ServerTypeQtv     ServerType = "qtv_server"
	ServerTypeUnknown ServerType = "unknown"
)

func (t ServerType) String() string {
	switch t {
	case ServerTypeGame:
		return "GameServer"
	case ServerTypeProxy:
		return "ProxyServer"
	case ServerTypeQtv:
		return "QtvServer"
	default:
		return "Unknown"
	}
}

// SoftwareType is the server program that produced a response, derived
// from the version string it advertises.
type SoftwareType string

const (
	SoftwareTypeFortressOne SoftwareType = "fortress_one"
	SoftwareTypeFte         SoftwareType = "fte"
	SoftwareTypeMvdsv       SoftwareType = "mvdsv"
	SoftwareTypeQtv         SoftwareType = "qtv"
	SoftwareTypeQwfwd       SoftwareType = "qwfwd"
	SoftwareTypeUnknown     SoftwareType = "unknown"
)

func (t SoftwareType) String() string {
	switch t {
	case SoftwareTypeFortressOne:
		return "FortressOne"
	case SoftwareTypeFte:
		return "FTE"
	case SoftwareTypeMvdsv:
		return "MVDSV"
	case SoftwareTypeQtv:
		return "QTV"
	case SoftwareTypeQwfwd:
		return "QWFWD"
	default:
		return "Unknown"
	}
}

// versionPrefix is the part of a version string before the first space,
// lowercased. Classification matches it exactly, never by substring.
func versionPrefix(version string) string {
	prefix, _, _ := strings.Cut(version, " ")
	return strings.ToLower(prefix)
}

// SoftwareTypeFromVersion classifies which server program advertised the
// given version string.
func SoftwareTypeFromVersion(version string) SoftwareType {
	switch versionPrefix(version) {
	case "fo":
		return SoftwareTypeFortressOne
	case "fte":
		return SoftwareTypeFte
	case "mvdsv":
		return SoftwareTypeMvdsv
	case "qtv", "qtvgo":
		return SoftwareTypeQtv
	case "qwfwd":
		return SoftwareTypeQwfwd
	default:
		return SoftwareTypeUnknown
	}
}

// ServerTypeFromVersion classifies the topological role behind the given
// version string.
func ServerTypeFromVersion(version string) ServerType {
	switch SoftwareTypeFromVersion(version) {
	case SoftwareTypeFortressOne, SoftwareTypeFte, SoftwareTypeMvdsv:
		return ServerTypeGame
	case SoftwareTypeQtv:
		return ServerTypeQtv
	case SoftwareTypeQwfwd:
		return ServerTypeProxy
	default:
		return ServerTypeUnknown
	}
}
