package eventbus

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

// EventBus is an in-process publisher. Handlers are plain functions; an event
// is dispatched to every subscriber whose parameter list matches the
// published arguments.
type EventBus interface {
	Publish(args ...any)
	Subscribe(handler any)
	Unsubscribe(handler any)
	Clear()
	SubscribersCount() int
}

type publisherImpl struct {
	log      *logrus.Logger
	handlers []reflect.Value
}

func NewEventPublisher(log *logrus.Logger) EventBus {
	return &publisherImpl{log: log}
}

// MatchSignature reports whether the handler function accepts the given
// argument list. Interface parameters match any implementing argument; nil
// arguments match pointer and interface parameters.
func MatchSignature(handler any, args []any) bool {
	t := reflect.TypeOf(handler)
	if t.Kind() != reflect.Func || t.NumIn() != len(args) {
		return false
	}

	for i, arg := range args {
		param := t.In(i)
		if arg == nil {
			if param.Kind() != reflect.Interface && param.Kind() != reflect.Ptr {
				return false
			}
			continue
		}
		argType := reflect.TypeOf(arg)
		if param.Kind() == reflect.Interface {
			if !argType.Implements(param) {
				return false
			}
			continue
		}
		if !argType.AssignableTo(param) {
			return false
		}
	}
	return true
}

// call invokes the handler, converting panics into errors.
func call(handler reflect.Value, in []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("eventbus: handler %s panicked: %v", handler.Type().String(), r)
		}
	}()
	return handler.Call(in), nil
}

func (p *publisherImpl) Publish(args ...any) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}

	handled := false
	for _, handler := range p.handlers {
		if !MatchSignature(handler.Interface(), args) {
			continue
		}
		if _, err := call(handler, in); err != nil {
			if p.log != nil {
				p.log.Errorf("eventbus: %v (args %v)", err, args)
			}
			continue
		}
		handled = true
	}

	if !handled && p.log != nil {
		p.log.Warnf("eventbus.Publish: no matching subscribers for event with args: %v", in)
	}
}

func (p *publisherImpl) Subscribe(handler any) {
	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	p.handlers = append(p.handlers, v)
}

func (p *publisherImpl) Unsubscribe(handler any) {
	target := reflect.ValueOf(handler)
	for i, h := range p.handlers {
		if h.Pointer() == target.Pointer() {
			p.handlers = append(p.handlers[:i], p.handlers[i+1:]...)
			return
		}
	}
}

func (p *publisherImpl) Clear() {
	p.handlers = nil
}

func (p *publisherImpl) SubscribersCount() int {
	return len(p.handlers)
}
