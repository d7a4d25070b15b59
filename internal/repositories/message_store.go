package repositories

import (
	"sort"
	"sync"
	"time"

	"gigbook_backend/internal/models"
)

// MessageStore - потокобезопасное хранилище сообщений со сквозной
// нумерацией id. Сообщения неизменяемы после записи.
type MessageStore struct {
	mu       sync.RWMutex
	messages []models.Message
	nextID   uint
}

func NewMessageStore() *MessageStore {
	return &MessageStore{nextID: 1}
}

// Append записывает сообщение, назначая следующий глобальный id
func (s *MessageStore) Append(proposalID, senderID uint, senderType models.UserRole, text string) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.Message{
		ID:         s.nextID,
		ProposalID: proposalID,
		SenderID:   senderID,
		SenderType: senderType,
		Message:    text,
		CreatedAt:  time.Now(),
	}
	s.nextID++
	s.messages = append(s.messages, m)

	return m
}

// ListByProposal возвращает страницу сообщений предложения,
// отсортированных по createdAt по убыванию (свежие первыми),
// и полное число сообщений этого предложения.
func (s *MessageStore) ListByProposal(proposalID uint, offset, limit int) ([]models.Message, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []models.Message
	for _, m := range s.messages {
		if m.ProposalID == proposalID {
			all = append(all, m)
		}
	}

	// сортируем явно, а не полагаемся на порядок вставки
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return []models.Message{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]models.Message, end-offset)
	copy(page, all[offset:end])
	return page, total
}
