package model

// VideoFormat is the choice of the video container selector
type VideoFormat string

const (
	VideoFormatUnset VideoFormat = ""
	VideoFormatMP4   VideoFormat = "MP4"
	// VideoFormatMKV is matched against WebM streams: YouTube serves no
	// Matroska files, and the selector label says so.
	VideoFormatMKV VideoFormat = "MKV"
)

// AudioFormat is the choice of the audio container selector
type AudioFormat string

const (
	AudioFormatUnset AudioFormat = ""
	// AudioFormatMP3 picks the first audio-only stream; the file keeps the
	// container the stream comes in (m4a or webm), it is not transcoded.
	AudioFormatMP3 AudioFormat = "MP3"
)

// UnsetLabel is shown for the "nothing selected" entry of both selectors
const UnsetLabel = "—"

// VideoFormats returns the selectable video formats in display order
func VideoFormats() []VideoFormat {
	return []VideoFormat{VideoFormatUnset, VideoFormatMP4, VideoFormatMKV}
}

// AudioFormats returns the selectable audio formats in display order
func AudioFormats() []AudioFormat {
	return []AudioFormat{AudioFormatUnset, AudioFormatMP3}
}

// Label returns the selector text
func (f VideoFormat) Label() string {
	switch f {
	case VideoFormatUnset:
		return UnsetLabel
	case VideoFormatMKV:
		return "MKV (WebM)"
	default:
		return string(f)
	}
}

// Container returns the stream container the format is matched against
func (f VideoFormat) Container() string {
	switch f {
	case VideoFormatMP4:
		return "mp4"
	case VideoFormatMKV:
		return "webm"
	default:
		return ""
	}
}

// IsSet returns true for any choice other than the placeholder
func (f VideoFormat) IsSet() bool {
	return f != VideoFormatUnset
}

// Label returns the selector text
func (f AudioFormat) Label() string {
	if f == AudioFormatUnset {
		return UnsetLabel
	}
	return string(f)
}

// IsSet returns true for any choice other than the placeholder
func (f AudioFormat) IsSet() bool {
	return f != AudioFormatUnset
}

// ParseVideoFormat maps a selector label back to its format; unknown labels are unset.
func ParseVideoFormat(label string) VideoFormat {
	for _, f := range VideoFormats() {
		if f.Label() == label {
			return f
		}
	}
	return VideoFormatUnset
}

// ParseAudioFormat maps a selector label back to its format; unknown labels are unset.
func ParseAudioFormat(label string) AudioFormat {
	for _, f := range AudioFormats() {
		if f.Label() == label {
			return f
		}
	}
	return AudioFormatUnset
}
