package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/you-humble/partsyard/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type closeFn struct {
	name string
	fn   func(ctx context.Context) error
}

type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	funcs []closeFn
	log   Logger
	err   error
}

var global = New()

func New() *Closer {
	return &Closer{log: logger.NoopLogger{}}
}

func SetLogger(l Logger)                                   { global.SetLogger(l) }
func AddNamed(name string, fn func(context.Context) error) { global.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error                   { return global.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = l
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, closeFn{name: name, fn: fn})
}

// CloseAll runs the registered functions in reverse order of registration.
// Later calls return the result of the first one.
func (c *Closer) CloseAll(ctx context.Context) error {
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.log
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]

			if ctx.Err() != nil {
				errs = append(errs, fmt.Errorf("%s: %w", f.name, ctx.Err()))
				continue
			}

			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "❌ failed to close", logger.String("name", f.name), logger.ErrorF(err))
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}
			log.Info(ctx, "closed", logger.String("name", f.name))
		}

		c.err = errors.Join(errs...)
	})

	return c.err
}
