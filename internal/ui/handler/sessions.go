package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cryptoquote/internal/ui/page"
	"cryptoquote/internal/widget"
	"cryptoquote/pkg/integrations/memcache"
	"cryptoquote/pkg/types/cache"
	"cryptoquote/pkg/types/quotes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "cq_session"
	sessionKey    = "session"
)

var (
	ErrNilWidgetFactory = errors.New("widget factory is required")
	ErrNilLogger        = errors.New("logger is required")
)

// Session is one browser's widget and the page it renders into.
type Session struct {
	ID     string
	Page   *page.Page
	Widget *widget.Widget

	loading sync.Mutex
}

// WidgetFactory builds a widget that renders into r.
type WidgetFactory func(r quotes.Renderer) (*widget.Widget, error)

type Sessions struct {
	store     cache.Expirable[string, *Session]
	newWidget WidgetFactory
	logger    *slog.Logger
	ttl       time.Duration
}

func NewSessions(newWidget WidgetFactory, logger *slog.Logger, ttl time.Duration) (*Sessions, error) {
	if newWidget == nil {
		return nil, ErrNilWidgetFactory
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &Sessions{
		store:     memcache.New[string, *Session](),
		newWidget: newWidget,
		logger:    logger,
		ttl:       ttl,
	}, nil
}

// Resolve returns the caller's session, creating it when the cookie is
// missing, malformed or expired.
func (s *Sessions) Resolve(c *gin.Context) (*Session, error) {
	id, err := c.Cookie(SessionCookie)
	if err == nil {
		if _, parseErr := uuid.Parse(id); parseErr == nil {
			if sess, ok := s.store.Get(id); ok {
				return sess, nil
			}
		}
	}

	id = uuid.NewString()
	sess, _, err := s.store.GetOrCreate(id, func() (*Session, error) {
		p := page.New()
		w, err := s.newWidget(p)
		if err != nil {
			return nil, err
		}
		return &Session{ID: id, Page: p, Widget: w}, nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("session created", "session", id)
	return sess, nil
}

// LoadPage starts a fresh page load for sess: the options rendered so far are
// dropped and the catalog is fetched again.
func (s *Sessions) LoadPage(ctx context.Context, sess *Session) {
	sess.loading.Lock()
	defer sess.loading.Unlock()

	sess.Page.ResetOptions()
	sess.Widget.LoadCatalog(ctx)
}

func (s *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := s.Resolve(c)
		if err != nil {
			s.logger.Error("failed to create session", "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		// Refreshed on every request so the cookie lives as long as the
		// server-side idle timer.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sess.ID, int(s.ttl.Seconds()), "/", "", false, true)

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Sweep closes and drops sessions idle for longer than the TTL.
func (s *Sessions) Sweep(context.Context) error {
	evicted := s.store.EvictIdle(s.ttl)
	for _, sess := range evicted {
		sess.Widget.Close()
	}
	if len(evicted) > 0 {
		s.logger.Debug("sessions evicted", "count", len(evicted), "active", s.store.Len())
	}
	return nil
}

// Close aborts every session's in-flight requests.
func (s *Sessions) Close() {
	for _, id := range s.store.Keys() {
		if sess, ok := s.store.Get(id); ok {
			sess.Widget.Close()
		}
		s.store.Delete(id)
	}
}

func (s *Sessions) Len() int {
	return s.store.Len()
}

func sessionFrom(c *gin.Context) *Session {
	return c.MustGet(sessionKey).(*Session)
}
