package loghandler

import (
	"encoding/binary"
	"fmt"
)

// EncodeRecord marshals r into the wire format DecodeRecord expects: a fixed
// header (level, pid, tid, line) followed by four length-delimited strings
// in a fixed order — filename, funcname, logger name, message — mirroring
// the source material's bxilog_record_s layout (spec.md §4.4). Producers
// outside this module (a bus controller, a test harness) use this to build
// payloads for transport.DataDial.Send.
func EncodeRecord(r Record) []byte {
	buf := make([]byte, 0, 13+4*4+len(r.Filename)+len(r.Funcname)+len(r.LoggerName)+len(r.LogMessage))
	buf = append(buf, byte(r.Level))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(r.PID))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(r.TID))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(r.Line))
	for _, s := range []string{r.Filename, r.Funcname, r.LoggerName, r.LogMessage} {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
		buf = append(buf, s...)
	}
	return buf
}

// DecodeRecord parses a payload produced by EncodeRecord. It performs no
// bounds validation beyond what's needed to avoid a panic: a malformed
// payload returns an error rather than a partially populated Record, and
// the caller (the event loop) treats that as an internal error to hand to
// ProcessIErr, same as the source material treats a demarshalling failure
// (spec.md §4.4, §7).
func DecodeRecord(payload []byte) (Record, error) {
	const headerLen = 1 + 4 + 4 + 4
	if len(payload) < headerLen {
		return Record{}, fmt.Errorf("loghandler: record payload too short (%d bytes)", len(payload))
	}
	r := Record{
		Level: Level(payload[0]),
		PID:   int32(binary.LittleEndian.Uint32(payload[1:5])),
		TID:   int32(binary.LittleEndian.Uint32(payload[5:9])),
		Line:  int32(binary.LittleEndian.Uint32(payload[9:13])),
	}
	rest := payload[headerLen:]
	fields := make([]string, 4)
	for i := range fields {
		if len(rest) < 4 {
			return Record{}, fmt.Errorf("loghandler: record payload truncated before field %d length", i)
		}
		n := binary.LittleEndian.Uint32(rest[:4])
		rest = rest[4:]
		if uint64(len(rest)) < uint64(n) {
			return Record{}, fmt.Errorf("loghandler: record payload truncated in field %d", i)
		}
		fields[i] = string(rest[:n])
		rest = rest[n:]
	}
	r.Filename, r.Funcname, r.LoggerName, r.LogMessage = fields[0], fields[1], fields[2], fields[3]
	return r, nil
}
