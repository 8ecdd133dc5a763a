package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var logger = newSimpleLogger()

type logLevel int

const (
	logLevelDebug logLevel = iota
	logLevelInfo
	logLevelWarn
	logLevelError
)

const logRetentionDays = 3

func (l logLevel) String() string {
	switch l {
	case logLevelDebug:
		return "DEBUG"
	case logLevelInfo:
		return "INFO"
	case logLevelWarn:
		return "WARN"
	case logLevelError:
		return "ERROR"
	}
	return "LEVEL(" + strconv.Itoa(int(l)) + ")"
}

func parseLogLevel(name string) (logLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return logLevelDebug, nil
	case "", "info":
		return logLevelInfo, nil
	case "warn", "warning":
		return logLevelWarn, nil
	case "error":
		return logLevelError, nil
	default:
		return logLevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", name)
	}
}

type logEvent struct {
	at    time.Time
	level logLevel
	msg   string
	attrs []any
}

// simpleLogger formats and writes entries on its own goroutine so request
// handlers never block on disk.
type simpleLogger struct {
	level    atomic.Int32
	queue    chan logEvent
	done     chan struct{}
	writerMu sync.RWMutex
	out      io.Writer
	stdout   bool
	wg       sync.WaitGroup
	stopOnce sync.Once
	closing  atomic.Bool
}

func newSimpleLogger() *simpleLogger {
	l := &simpleLogger{
		queue: make(chan logEvent, 1024),
		done:  make(chan struct{}),
		out:   os.Stdout,
	}
	l.level.Store(int32(logLevelInfo))
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *simpleLogger) run() {
	defer l.wg.Done()
	for {
		select {
		case evt := <-l.queue:
			l.writeEntry(evt)
		case <-l.done:
			l.drain()
			return
		}
	}
}

// drain writes whatever log calls managed to enqueue before Stop.
func (l *simpleLogger) drain() {
	for n := len(l.queue); n > 0; n-- {
		l.writeEntry(<-l.queue)
	}
}

func (l *simpleLogger) log(level logLevel, msg string, attrs ...any) {
	if level < logLevel(l.level.Load()) || l.closing.Load() {
		return
	}
	evt := logEvent{at: time.Now(), level: level, msg: msg, attrs: append([]any(nil), attrs...)}
	select {
	case l.queue <- evt:
	case <-l.done:
	}
}

func (l *simpleLogger) Debug(msg string, attrs ...any) { l.log(logLevelDebug, msg, attrs...) }
func (l *simpleLogger) Info(msg string, attrs ...any)  { l.log(logLevelInfo, msg, attrs...) }
func (l *simpleLogger) Warn(msg string, attrs ...any)  { l.log(logLevelWarn, msg, attrs...) }
func (l *simpleLogger) Error(msg string, attrs ...any) { l.log(logLevelError, msg, attrs...) }

func (l *simpleLogger) setLevel(level logLevel) {
	l.level.Store(int32(level))
}

func (l *simpleLogger) configureOutput(out io.Writer, stdout bool) {
	if out == nil {
		out = io.Discard
	}
	l.writerMu.Lock()
	prev := l.out
	l.out = out
	l.stdout = stdout
	l.writerMu.Unlock()
	if prev != out {
		closeWriter(prev)
	}
}

func (l *simpleLogger) mirrorsStdout() bool {
	l.writerMu.RLock()
	defer l.writerMu.RUnlock()
	return l.stdout
}

// Stop drains queued entries and closes the output. Later calls are no-ops.
func (l *simpleLogger) Stop() {
	l.stopOnce.Do(func() {
		l.closing.Store(true)
		close(l.done)
		l.wg.Wait()
		l.writerMu.Lock()
		closeWriter(l.out)
		l.out = io.Discard
		l.writerMu.Unlock()
	})
}

func closeWriter(w io.Writer) {
	if w == os.Stdout || w == os.Stderr {
		return
	}
	if closer, ok := w.(io.Closer); ok {
		_ = closer.Close()
	}
}

func (l *simpleLogger) writeEntry(evt logEvent) {
	line := formatLogLine(evt)

	l.writerMu.RLock()
	out := l.out
	stdout := l.stdout
	l.writerMu.RUnlock()

	if stdout && out != os.Stdout {
		_, _ = os.Stdout.WriteString(line)
	}
	if out != nil {
		_, _ = io.WriteString(out, line)
	}
}

func formatLogLine(evt logEvent) string {
	var entry strings.Builder
	entry.WriteString(evt.at.UTC().Format(time.RFC3339Nano))
	entry.WriteString(" [")
	entry.WriteString(evt.level.String())
	entry.WriteString("] ")
	entry.WriteString(evt.msg)
	if attrs := formatAttrs(evt.attrs); attrs != "" {
		entry.WriteByte(' ')
		entry.WriteString(attrs)
	}
	entry.WriteByte('\n')
	return entry.String()
}

func formatAttrs(attrs []any) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(attrs); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprint(attrs[i]))
		if i+1 < len(attrs) {
			b.WriteByte('=')
			b.WriteString(fmt.Sprint(attrs[i+1]))
		}
	}
	return b.String()
}

const logDateLayout = "2006-01-02"

// dailyRollingFileWriter writes to one file per UTC day, status-2023-04-23.log
// for a base path of status.log, and keeps logRetentionDays of them.
type dailyRollingFileWriter struct {
	dir    string
	prefix string // "status-"
	ext    string // ".log"
	now    func() time.Time

	mu   sync.Mutex
	day  string
	file *os.File
}

func newDailyRollingFileWriter(path string) io.Writer {
	if path == "" {
		return io.Discard
	}
	ext := filepath.Ext(path)
	return &dailyRollingFileWriter{
		dir:    filepath.Dir(path),
		prefix: strings.TrimSuffix(filepath.Base(path), ext) + "-",
		ext:    ext,
		now:    time.Now,
	}
}

func (w *dailyRollingFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	day := w.now().UTC().Format(logDateLayout)
	if w.file == nil || day != w.day {
		if err := w.rollTo(day); err != nil {
			return 0, err
		}
	}
	return w.file.Write(p)
}

// rollTo swaps the open file for day's file. Caller holds mu.
func (w *dailyRollingFileWriter) rollTo(day string) error {
	if w.prefix == "-" {
		return fmt.Errorf("invalid log path %q", filepath.Join(w.dir, w.ext))
	}
	f, err := os.OpenFile(w.dayPath(day), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	prev := w.file
	w.file, w.day = f, day
	if prev != nil {
		_ = prev.Close()
	}
	w.removeExpired(day)
	return nil
}

func (w *dailyRollingFileWriter) dayPath(day string) string {
	return filepath.Join(w.dir, w.prefix+day+w.ext)
}

// removeExpired deletes dated siblings older than the retention window.
// Dates in logDateLayout sort lexically, so the cutoff is a string compare.
func (w *dailyRollingFileWriter) removeExpired(today string) {
	t, err := time.Parse(logDateLayout, today)
	if err != nil {
		return
	}
	oldest := t.AddDate(0, 0, -(logRetentionDays - 1)).Format(logDateLayout)
	matches, err := filepath.Glob(filepath.Join(w.dir, w.prefix+"*"+w.ext))
	if err != nil {
		return
	}
	for _, path := range matches {
		day := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(path), w.prefix), w.ext)
		if _, err := time.Parse(logDateLayout, day); err != nil {
			continue
		}
		if day < oldest {
			_ = os.Remove(path)
		}
	}
}

func (w *dailyRollingFileWriter) Close() error {
	w.mu.Lock()
	f := w.file
	w.file, w.day = nil, ""
	w.mu.Unlock()
	if f == nil {
		return nil
	}
	return f.Close()
}

func setLogLevel(level logLevel) {
	logger.setLevel(level)
}

// debugEnabled guards debug calls whose attributes cost something to build.
func debugEnabled() bool {
	return logLevel(logger.level.Load()) <= logLevelDebug
}

// initLogOutput points the logger at <dataDir>/logs/status.log, creating
// the directory. Returns the base path used for the rolling files.
func initLogOutput(dataDir string, stdout bool) (string, error) {
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(logDir, "status.log")
	logger.configureOutput(newDailyRollingFileWriter(path), stdout)
	return path, nil
}

func fatal(msg string, err error, attrs ...any) {
	logger.Error(msg, append(attrs, "error", err)...)
	logger.Stop()
	os.Exit(1)
}
