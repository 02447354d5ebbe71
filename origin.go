package urlparser

import "strconv"

// Origin implements §4.4's origin algorithm: scheme//host[:port] for
// the network schemes, null for file, a recursive path-as-URL lookup
// for blob (there is no blob-URL store, so this always falls back to
// parsing the path, per §9's design note), and null otherwise.
func (u *URL) Origin() string {
	if !u.valid {
		return ""
	}
	switch u.scheme {
	case "ftp", "http", "https", "ws", "wss":
		port := u.port
		if port < 0 {
			port = u.info.defaultPort
		}
		out := u.scheme + "://" + u.host.String()
		if port >= 0 && port != u.info.defaultPort {
			out += ":" + strconv.Itoa(port)
		}
		return out
	case "file":
		return "null"
	case "blob":
		if u.cannotBeBase {
			inner := u.opaquePath
			parsed, err := Parse(inner)
			if err != nil {
				return "null"
			}
			return parsed.Origin()
		}
		return "null"
	default:
		return "null"
	}
}
