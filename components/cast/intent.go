package cast

// IntentKind is a command that can be sent to a media receiver.
type IntentKind int

const (
	// IntentCast starts playing a URL on the device.
	IntentCast IntentKind = iota

	// IntentStop stops whatever the device is playing.
	IntentStop
)

func (k IntentKind) String() string {
	switch k {
	case IntentCast:
		return "cast"
	case IntentStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Intent describes what should happen on the device.
type Intent struct {
	Kind IntentKind

	// URL is the percent-encoded site to cast, set only for IntentCast.
	URL string
}

// NewCastIntent returns the intent to cast the site with the URL.
func NewCastIntent(url string) Intent {
	return Intent{Kind: IntentCast, URL: url}
}

// NewStopIntent returns the intent to stop playing.
func NewStopIntent() Intent {
	return Intent{Kind: IntentStop}
}
