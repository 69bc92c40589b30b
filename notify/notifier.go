package notify

import (
	"github.com/cskr/pubsub"
	"github.com/dilshat/guest-book/log"
	"github.com/dilshat/guest-book/service/dto"
)

const (
	OUT = "out"
)

type Notifier interface {
	Start()
	Publish(event dto.MessageEvent)
	Stop()
}

type notifier struct {
	hook WebHook
	ps   *pubsub.PubSub
	out  chan interface{}
}

//NewNotifier returns a notifier delivering events to the web hook at {url}.
//A blank url yields a notifier that drops every event.
func NewNotifier(url string, tps int) Notifier {
	if url == "" {
		return noop{}
	}
	return newNotifier(NewWebHook(url, tps))
}

func newNotifier(hook WebHook) *notifier {
	ps := pubsub.New(100)
	return &notifier{hook: hook, ps: ps, out: ps.Sub(OUT)}
}

func (n *notifier) Start() {
	go n.processOutgoing()
}

func (n *notifier) Publish(event dto.MessageEvent) {
	n.ps.TryPub(event, OUT)
}

func (n *notifier) Stop() {
	n.ps.Shutdown()
}

func (n *notifier) processOutgoing() {
	for val := range n.out {
		event, ok := val.(dto.MessageEvent)
		if !ok {
			continue
		}
		log.ErrIfErr("Error calling web hook", n.hook.Post(event))
	}
}

type noop struct{}

func (noop) Start() {}

func (noop) Publish(dto.MessageEvent) {}

func (noop) Stop() {}
