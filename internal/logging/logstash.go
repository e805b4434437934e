package logging

import (
	"errors"
	"io"
	"log"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogstashSink ships newline-delimited log lines to a Logstash TCP input.
// Write only enqueues: a single goroutine owns the connection, so callers
// never wait on dialing or a slow peer. Lines that arrive while the queue is
// full, or while Logstash is unreachable, are dropped and counted.
type LogstashSink struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration
	queueSize     int

	lines   chan []byte
	done    chan struct{}
	dropped atomic.Uint64

	mu     sync.Mutex
	closed bool

	// owned by the run goroutine
	conn      net.Conn
	nextRetry time.Time
}

type SinkOption func(*LogstashSink)

func WithDialTimeout(d time.Duration) SinkOption {
	return func(s *LogstashSink) { s.dialTimeout = d }
}

func WithWriteTimeout(d time.Duration) SinkOption {
	return func(s *LogstashSink) { s.writeTimeout = d }
}

// WithRetryInterval sets how long the sink stays disconnected after a failed
// dial or write.
func WithRetryInterval(d time.Duration) SinkOption {
	return func(s *LogstashSink) { s.retryInterval = d }
}

// WithQueueSize bounds the number of lines waiting to be sent.
func WithQueueSize(n int) SinkOption {
	return func(s *LogstashSink) { s.queueSize = n }
}

func NewLogstashSink(addr string, opts ...SinkOption) (*LogstashSink, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("logstash: empty address")
	}
	s := &LogstashSink{
		addr:          addr,
		dialTimeout:   2 * time.Second,
		writeTimeout:  time.Second,
		retryInterval: 5 * time.Second,
		queueSize:     1024,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.queueSize < 1 {
		s.queueSize = 1
	}
	s.lines = make(chan []byte, s.queueSize)
	s.done = make(chan struct{})
	go s.run()
	return s, nil
}

func (s *LogstashSink) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	line := make([]byte, len(p), len(p)+1)
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, io.ErrClosedPipe
	}
	select {
	case s.lines <- line:
	default:
		s.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped reports how many lines were discarded so far.
func (s *LogstashSink) Dropped() uint64 {
	return s.dropped.Load()
}

// Close stops accepting lines, flushes what is queued and closes the
// connection.
func (s *LogstashSink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.lines)
	s.mu.Unlock()

	<-s.done
	return nil
}

func (s *LogstashSink) run() {
	defer close(s.done)
	for line := range s.lines {
		s.send(line)
	}
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
}

func (s *LogstashSink) send(line []byte) {
	if s.conn == nil {
		if time.Now().Before(s.nextRetry) {
			s.dropped.Add(1)
			return
		}
		conn, err := net.DialTimeout("tcp", s.addr, s.dialTimeout)
		if err != nil {
			s.nextRetry = time.Now().Add(s.retryInterval)
			s.dropped.Add(1)
			return
		}
		s.conn = conn
	}

	if s.writeTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	if _, err := s.conn.Write(line); err != nil {
		_ = s.conn.Close()
		s.conn = nil
		s.nextRetry = time.Now().Add(s.retryInterval)
		s.dropped.Add(1)
	}
}

// Setup points the standard logger at stderr and, when logstashAddr is set,
// mirrors every line to Logstash. The returned func flushes and releases the
// sink.
func Setup(logstashAddr string) (func(), error) {
	log.SetFlags(log.LstdFlags | log.LUTC)
	if strings.TrimSpace(logstashAddr) == "" {
		log.SetOutput(os.Stderr)
		return func() {}, nil
	}

	sink, err := NewLogstashSink(logstashAddr)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stderr, sink))
	return func() {
		log.SetOutput(os.Stderr)
		_ = sink.Close()
		if n := sink.Dropped(); n > 0 {
			log.Printf("logstash: %d log lines were not delivered", n)
		}
	}, nil
}
