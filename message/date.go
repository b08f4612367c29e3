package message

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

const (
	// Preferred format: IMF-fixdate. RFC 1123 with the zone pinned to
	// GMT so formatting stays wire-correct.
	imfFixDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
	// Obsolete RFC 850 format
	rfc850DateFormat = time.RFC850
	// Obsolete asctime format
	asctimeDateFormat = time.ANSIC
)

// ParseDate parses an HTTP date in any of the three accepted formats.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.7
func ParseDate(raw string) (time.Time, error) {
	layouts := []string{imfFixDateFormat, time.RFC1123, rfc850DateFormat, asctimeDateFormat}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("invalid time format: %q", raw)
}

// FormatDate renders t as IMF-fixdate.
func FormatDate(t time.Time) string {
	return t.UTC().Format(imfFixDateFormat)
}

// WithDate returns a message whose Date header is stamped from c.
func (m Message) WithDate(c clock.Clock) (Message, error) {
	return m.WithHeader("Date", FormatDate(c.Now()))
}

// Date returns the parsed Date header. ok is false when the header is
// absent; err is set when it is present but unparsable.
func (m Message) Date() (t time.Time, ok bool, err error) {
	values := m.headers.Values("Date")
	if len(values) == 0 {
		return time.Time{}, false, nil
	}

	t, err = ParseDate(values[0])
	if err != nil {
		return time.Time{}, true, errors.Wrap(err, "parsing Date header")
	}
	return t, true, nil
}
