package delimiter

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"time"

	"wordbound/internal/platform/logger"

	"github.com/fsnotify/fsnotify"
)

// Live holds a Set that can be swapped at runtime. Readers never block
type Live struct {
	cur atomic.Pointer[Set]
}

// NewLive starts with s
func NewLive(s *Set) *Live {
	l := &Live{}
	l.cur.Store(s)
	return l
}

// Load returns the current set
func (l *Live) Load() *Set { return l.cur.Load() }

// Store swaps in s
func (l *Live) Store(s *Set) { l.cur.Store(s) }

// IsWordDelimiter implements Classifier against the current set
func (l *Live) IsWordDelimiter(g string) bool { return l.cur.Load().IsWordDelimiter(g) }

// IsSentenceDelimiter implements SentenceClassifier against the current set
func (l *Live) IsSentenceDelimiter(g string) bool { return l.cur.Load().IsSentenceDelimiter(g) }

// Name reports the name of the current set
func (l *Live) Name() string { return l.cur.Load().Name() }

// Reload loads path, compiles it against reg and swaps it in.
// On error the previous set stays active
func (l *Live) Reload(path string, reg *Registry) error {
	p, err := LoadFile(path)
	if err != nil {
		return err
	}
	s, err := reg.Compile(p)
	if err != nil {
		return err
	}
	l.Store(s)
	return nil
}

// DefaultDebounce coalesces the burst of events editors emit on save
const DefaultDebounce = 250 * time.Millisecond

// WatchOptions tunes Watch
type WatchOptions struct {
	Debounce time.Duration
	// OnReload is called after every reload attempt with its error, if any
	OnReload func(err error)
}

// Watch reloads path into l whenever the file changes, until ctx is done.
// The parent directory is watched so atomic rename-on-save is picked up
func Watch(ctx context.Context, path string, l *Live, reg *Registry, opt WatchOptions) error {
	log := logger.Named("delimiter")
	debounce := opt.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return err
	}

	go func() {
		defer func() { _ = w.Close() }()

		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				err := l.Reload(abs, reg)
				if opt.OnReload != nil {
					opt.OnReload(err)
				}
				if err != nil {
					log.Warn().Err(err).Str("path", abs).Msg("delimiter pack reload failed; keeping previous set")
					continue
				}
				log.Info().Str("path", abs).Str("preset", l.Name()).Msg("delimiter pack reloaded")
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("delimiter pack watcher error")
			}
		}
	}()
	return nil
}
