package screen

import (
	"encoding/binary"
	"time"

	"go.uber.org/zap"
)

// send writes one message: command code, one argument byte, big-endian
// payload length, then the payload itself. The firmware answers every
// message with a short ack which is drained but not interpreted.
func (s *Screen) send(code uint8, arg uint8, payload []byte) error {
	head := make([]byte, 6)
	head[0] = code
	head[1] = arg
	binary.BigEndian.PutUint32(head[2:6], uint32(len(payload)))

	sentStart := time.Now()

	sent, err := s.rw.Write(head)
	if err != nil {
		return err
	}

	if len(payload) > 0 {
		n, err := s.rw.Write(payload)
		if err != nil {
			return err
		}
		sent += n
	}

	sentCost := time.Since(sentStart)

	recvStart := time.Now()
	ack := make([]byte, 2)
	recv, err := s.rw.Read(ack)
	if err != nil {
		return err
	}

	s.logger.With(
		zap.Uint8("code", code),
		zap.Int("sent", sent),
		zap.Duration("sentCost", sentCost),
		zap.Int("recv", recv),
		zap.Duration("recvCost", time.Since(recvStart)),
	).Debug("transfer done")

	return nil
}
