package service

import (
	"encoding/json"
	"fmt"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/internal/workflow"
	"go-glassfloor-ws/internal/ws"
	"go-glassfloor-ws/pkg/validator"

	"github.com/google/uuid"
)

// BroadcastService persists shop-wide messages and pushes them to connected
// clients. A blood-priority message is the emergency path: same pipeline,
// but clients render it as a full-screen interrupt.
type BroadcastService interface {
	SendMessage(req *model.BroadcastMessage, userID, userName string) error
	GetMessages(search string) ([]model.BroadcastMessage, error)
	GetMessage(id uuid.UUID) (*model.BroadcastMessage, error)
	DeleteMessage(id uuid.UUID) error
}

type broadcastService struct {
	messageRepo repository.MessageRepository
	wsHub       *ws.Hub
}

func NewBroadcastService(messageRepo repository.MessageRepository, hub *ws.Hub) BroadcastService {
	return &broadcastService{
		messageRepo: messageRepo,
		wsHub:       hub,
	}
}

func (s *broadcastService) SendMessage(req *model.BroadcastMessage, userID, userName string) error {
	if req.Priority == "" {
		req.Priority = model.PriorityNormal
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID

	// Persist first: a message that reached nobody must still show up in the
	// message list when clients reconnect.
	if err := s.messageRepo.Create(req); err != nil {
		return err
	}

	go func() {
		payload := map[string]interface{}{
			"type": "broadcast_message",
			"message": map[string]interface{}{
				"id":             req.ID,
				"title":          req.Title,
				"body":           req.Body,
				"priority":       req.Priority,
				"attachment_url": req.AttachmentURL,
				"sent_by":        userName,
			},
			"interrupt": req.Priority == model.PriorityBlood,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return nil
}

func (s *broadcastService) GetMessages(search string) ([]model.BroadcastMessage, error) {
	messages, err := s.messageRepo.FindAll()
	if err != nil {
		return nil, err
	}
	// Repo already orders newest first; only the search filter runs here.
	return workflow.FilterBySearch(messages, search, model.BroadcastMessage.SearchFields), nil
}

func (s *broadcastService) GetMessage(id uuid.UUID) (*model.BroadcastMessage, error) {
	return s.messageRepo.FindByID(id)
}

func (s *broadcastService) DeleteMessage(id uuid.UUID) error {
	return s.messageRepo.Delete(id)
}
