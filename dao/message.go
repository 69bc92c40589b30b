package dao

import (
	"github.com/asdine/storm/v3"
	"github.com/dilshat/guest-book/model"
)

type MessageDao interface {
	//Append stores the message at the end of the sequence and returns its index
	Append(msg *model.Message) (uint64, error)
	//Range returns at most {limit} messages starting at index {from}
	Range(from, limit uint64) ([]model.Message, error)
	//Count returns the number of stored messages
	Count() (uint64, error)
}

func NewMessageDao(db Db) MessageDao {
	return &messageDao{node: db.From(MessagesNode)}
}

type messageDao struct {
	node storm.Node
}

func (d messageDao) Append(msg *model.Message) (uint64, error) {
	//ids are assigned by storm starting from 1
	msg.Id = 0
	err := d.node.Save(msg)
	if err != nil {
		return 0, err
	}
	return msg.Id - 1, nil
}

func (d messageDao) Range(from, limit uint64) ([]model.Message, error) {
	messages := []model.Message{}

	total, err := d.Count()
	if err != nil || limit == 0 || from >= total {
		return messages, err
	}
	if limit > total-from {
		limit = total - from
	}

	//bucket keys are big-endian ids so key order is insertion order
	err = d.node.All(&messages, storm.Skip(int(from)), storm.Limit(int(limit)))
	if err == storm.ErrNotFound {
		return []model.Message{}, nil
	}
	return messages, err
}

func (d messageDao) Count() (uint64, error) {
	n, err := d.node.Count(&model.Message{})
	if err == storm.ErrNotFound {
		return 0, nil
	}
	return uint64(n), err
}
