package dao

import (
	"sync"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/asdine/storm/v3/index"
	"github.com/dilshat/guest-book/model"
	"github.com/dilshat/guest-book/util"
	bolt "go.etcd.io/bbolt"
)

//MessagesNode is the fixed storage prefix of the message sequence
const MessagesNode = "m"

type Db interface {
	Init(data interface{}) error
	Save(data interface{}) error
	All(to interface{}, options ...func(*index.Options)) error
	Count(data interface{}) (int, error)
	From(prefix ...string) storm.Node
	Close() error
}

var (
	once     sync.Once
	instance Db
)

func open(dbFilePath string) (*storm.DB, error) {
	return storm.Open(dbFilePath,
		storm.Codec(msgpack.Codec),
		storm.BoltOptions(0600, &bolt.Options{Timeout: 10 * time.Second, ReadOnly: false}))
}

func GetClient(dbFilePath string) (Db, error) {
	var err error

	once.Do(func() {
		exists := util.FileExists(dbFilePath)

		var db *storm.DB
		db, err = open(dbFilePath)
		if err != nil {
			return
		}
		instance = db

		if !exists {
			//init db structs
			err = db.From(MessagesNode).Init(&model.Message{})
		}
	})

	return instance, err
}
