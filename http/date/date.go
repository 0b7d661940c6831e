// Package date renders timestamps in the form used by Date, Last-Modified and cookie
// Expires values: "Fri, 01 Jan 2021 00:00:00 GMT".
package date

import "time"

// Layout covers everything but the zone, which is always appended as a literal.
const Layout = "Mon, 02 Jan 2006 15:04:05"

const suffix = " GMT"

var zoneGMT = time.FixedZone("GMT", 0)

// Format converts t into GMT and renders it.
func Format(t time.Time) string {
	return string(Append(make([]byte, 0, len(Layout)+len(suffix)), t))
}

// Append is like Format, but appends the rendered value to buff.
func Append(buff []byte, t time.Time) []byte {
	buff = t.In(zoneGMT).AppendFormat(buff, Layout)
	return append(buff, suffix...)
}
