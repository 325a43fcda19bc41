package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/store-service/pkg/kafka"
	"github.com/Astemirdum/store-service/store/internal/model"
)

// ActivityEvent is published after a committed relation write for
// downstream stats. Best effort: failures only log.
type ActivityEvent struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	BookID      int64     `json:"bookID"`
	Like        *bool     `json:"like,omitempty"`
	InBookmarks *bool     `json:"inBookmarks,omitempty"`
	Rate        *int      `json:"rate,omitempty"`
	At          time.Time `json:"at"`
}

func (s *Service) publishActivity(username string, bookID int64, patch model.RelationPatch) {
	if s.producer == nil {
		return
	}
	event := ActivityEvent{
		ID:          uuid.NewString(),
		Username:    username,
		BookID:      bookID,
		Like:        patch.Like,
		InBookmarks: patch.InBookmarks,
		Rate:        patch.Rate,
		At:          time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		s.log.Error("activity marshal", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.ActivityTopic, Value: sarama.StringEncoder(data)}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		s.log.Error("activity publish", zap.Error(err), zap.Int64("bookID", bookID))
	}
}
