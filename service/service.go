package service

import (
	"github.com/dilshat/guest-book/dao"
	"github.com/dilshat/guest-book/model"
	"github.com/dilshat/guest-book/service/dto"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

const DefaultLimit uint64 = 10

// Invocation is the context the host attaches to a call: who made it
// and how much was deposited with it.
type Invocation struct {
	Caller  string
	Deposit *uint256.Int
}

type Publisher interface {
	Publish(event dto.MessageEvent)
}

type Service interface {
	AddMessage(inv Invocation, text string) (uint64, error)
	GetMessages(from *uint256.Int, limit *uint64) ([]dto.PostedMessage, error)
	TotalMessages() (uint64, error)
}

type service struct {
	messageDao dao.MessageDao
	publisher  Publisher
}

func NewService(messageDao dao.MessageDao, publisher Publisher) Service {
	return &service{
		messageDao: messageDao,
		publisher:  publisher,
	}
}

func (s service) AddMessage(inv Invocation, text string) (uint64, error) {
	msg := &model.Message{
		Premium: model.IsPremium(inv.Deposit),
		Sender:  inv.Caller,
		Text:    text,
	}

	idx, err := s.messageDao.Append(msg)
	if err != nil {
		return 0, err
	}

	zap.L().Debug("Message added",
		zap.Uint64("index", idx),
		zap.String("sender", msg.Sender),
		zap.Bool("premium", msg.Premium))

	s.publisher.Publish(dto.MessageEvent{Index: idx, Message: toPosted(*msg)})

	return idx, nil
}

func (s service) GetMessages(from *uint256.Int, limit *uint64) ([]dto.PostedMessage, error) {
	var start uint64
	if from != nil {
		//nothing can be stored past 64 bit indexes
		if !from.IsUint64() {
			return []dto.PostedMessage{}, nil
		}
		start = from.Uint64()
	}

	count := DefaultLimit
	if limit != nil {
		count = *limit
	}

	messages, err := s.messageDao.Range(start, count)
	if err != nil {
		return nil, err
	}

	posted := make([]dto.PostedMessage, 0, len(messages))
	for _, msg := range messages {
		posted = append(posted, toPosted(msg))
	}

	return posted, nil
}

func (s service) TotalMessages() (uint64, error) {
	return s.messageDao.Count()
}

func toPosted(msg model.Message) dto.PostedMessage {
	return dto.PostedMessage{
		Premium: msg.Premium,
		Sender:  msg.Sender,
		Text:    msg.Text,
	}
}
