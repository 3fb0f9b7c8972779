package notification

import (
	"sync"
	"time"

	"premierlodge/models"
	"premierlodge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// feedLimit bounds the retained notice feed.
const feedLimit = 100

// DefaultNotifier logs every notice and retains a bounded in-memory feed that
// the dashboard polls.
type DefaultNotifier struct {
	mu     sync.Mutex
	feed   []models.Notice
	logger *zap.Logger
}

func NewDefaultNotifier(logger *zap.Logger) *DefaultNotifier {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &DefaultNotifier{logger: logger}
}

func (n *DefaultNotifier) Success(message string) {
	n.logger.Info("notice", zap.String("level", models.NoticeSuccess), zap.String("message", message))
	n.push(models.NoticeSuccess, message)
}

func (n *DefaultNotifier) Error(message string) {
	n.logger.Warn("notice", zap.String("level", models.NoticeError), zap.String("message", message))
	n.push(models.NoticeError, message)
}

func (n *DefaultNotifier) Info(message string) {
	n.logger.Info("notice", zap.String("level", models.NoticeInfo), zap.String("message", message))
	n.push(models.NoticeInfo, message)
}

// Feed returns the retained notices, newest last.
func (n *DefaultNotifier) Feed() []models.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.Notice, len(n.feed))
	copy(out, n.feed)
	return out
}

func (n *DefaultNotifier) push(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.feed = append(n.feed, models.Notice{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if len(n.feed) > feedLimit {
		n.feed = n.feed[len(n.feed)-feedLimit:]
	}
}
