package worker

import (
	"context"
	"errors"
	"sync"
)

// Task 一個工作單元；回傳的錯誤會在 Stop 時一起回報
type Task func(ctx context.Context) error

// Pool 固定數量 worker 的工作池
type Pool interface {
	Submit(Task)
	// Stop 等待所有已送出的工作完成並回傳合併後的錯誤
	Stop() error
}

// NewPool 建立 n 個 worker；n<=0 時使用 1。ctx 取消後尚未開始的工作直接略過
func NewPool(ctx context.Context, n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{ctx: ctx, jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.runJob(job)
			}
		}()
	}
	return p
}

type pool struct {
	ctx  context.Context
	jobs chan Task
	wg   sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

func (p *pool) runJob(job Task) {
	if job == nil {
		return
	}
	err := p.ctx.Err()
	if err == nil {
		err = job(p.ctx)
	}
	if err != nil {
		p.mu.Lock()
		p.errs = append(p.errs, err)
		p.mu.Unlock()
	}
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() error {
	close(p.jobs)
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
