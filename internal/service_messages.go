package internal

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/DrGermanius/Shopmart/internal/model"
)

func (s Service) SendMessage(ctx context.Context, uid int, in model.MessageInput) (model.Message, error) {
	in.Body = strings.TrimSpace(in.Body)
	if err := validate(s.validate, in); err != nil {
		return model.Message{}, err
	}

	if in.RecipientID == uid {
		return model.Message{}, ErrMessageToSelf
	}

	m := model.Message{
		ID:          uuid.NewString(),
		SenderID:    uid,
		RecipientID: in.RecipientID,
		Body:        in.Body,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.Repository.CreateMessage(ctx, m); err != nil {
		return model.Message{}, err
	}

	s.Hub.Publish(m.RecipientID, model.Event{Type: model.EventMessage, Payload: m})
	return m, nil
}

func (s Service) GetConversation(ctx context.Context, uid, peer int) ([]model.Message, error) {
	ms, err := s.Repository.GetConversation(ctx, uid, peer)
	if err != nil {
		return nil, err
	}
	if ms == nil {
		ms = []model.Message{}
	}
	return ms, nil
}

// MarkConversationRead marks everything peer sent to uid as read and lets
// peer know, so both sides agree on the read state.
func (s Service) MarkConversationRead(ctx context.Context, uid, peer int) (int64, error) {
	n, err := s.Repository.MarkConversationRead(ctx, uid, peer)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		s.Hub.Publish(peer, model.Event{
			Type:    model.EventMessagesRead,
			Payload: map[string]interface{}{"reader_id": uid, "count": n},
		})
	}
	return n, nil
}

func (s Service) UnreadMessages(ctx context.Context, uid int) (int, error) {
	return s.Repository.CountUnreadMessages(ctx, uid)
}

func (s Service) GetNotifications(ctx context.Context, uid int) ([]model.Notification, error) {
	ns, err := s.Repository.GetNotifications(ctx, uid)
	if err != nil {
		return nil, err
	}
	if ns == nil {
		ns = []model.Notification{}
	}
	return ns, nil
}

func (s Service) MarkNotificationRead(ctx context.Context, uid int, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotificationNotFound
	}
	return s.Repository.MarkNotificationRead(ctx, uid, id)
}
