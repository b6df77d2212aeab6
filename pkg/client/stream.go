package client

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"squire/pkg/lichess"
)

// ndjsonReader pulls newline-delimited JSON records off a response body.
// The server sends a bare newline every few seconds as a keepalive; those
// blank lines are skipped, never surfaced.
type ndjsonReader struct {
	body io.ReadCloser
	br   *bufio.Reader
}

func newNDJSONReader(body io.ReadCloser) *ndjsonReader {
	return &ndjsonReader{body: body, br: bufio.NewReader(body)}
}

// next returns the next non-blank line, or io.EOF when the server closed
// the stream. A final line without a trailing newline is still returned.
func (r *ndjsonReader) next() ([]byte, error) {
	for {
		line, err := r.br.ReadBytes('\n')
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			return line, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (r *ndjsonReader) close() error {
	return r.body.Close()
}

// EventStream is an open account event stream. It is lazy: records are read
// off the wire only as Recv is called, and the stream cannot be restarted
// once drained or closed.
type EventStream struct {
	r *ndjsonReader
}

// Recv blocks for the next event. It returns io.EOF when the server ends
// the stream, and a decode error if a record does not parse; decode errors
// do not consume the stream, but the records they describe are lost.
func (s *EventStream) Recv() (*lichess.BotEvent, error) {
	line, err := s.r.next()
	if err != nil {
		return nil, err
	}
	var ev lichess.BotEvent
	if err := json.Unmarshal(line, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Close releases the underlying connection. Any blocked Recv fails.
func (s *EventStream) Close() error {
	return s.r.close()
}

// GameStream is an open per-game event stream, with the same laziness and
// lifecycle as EventStream.
type GameStream struct {
	r *ndjsonReader
}

// Recv blocks for the next game event, returning io.EOF when the server
// ends the stream.
func (s *GameStream) Recv() (*lichess.GameEvent, error) {
	line, err := s.r.next()
	if err != nil {
		return nil, err
	}
	var ev lichess.GameEvent
	if err := json.Unmarshal(line, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Close releases the underlying connection. Any blocked Recv fails.
func (s *GameStream) Close() error {
	return s.r.close()
}
