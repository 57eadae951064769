package badger

import "encoding/binary"

// Key prefixes for stored data
const (
	meetingPrefix = "meeting:"
	meetingIDSeq  = "meetingseq"
)

// makeMeetingKey generates a key for a meeting by its sequence number.
// The sequence number is written in BigEndian order so lexicographic key
// order matches insertion order during iteration.
func makeMeetingKey(seq uint64) []byte {
	prefixBytes := []byte(meetingPrefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}
