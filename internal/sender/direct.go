package sender

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Progress is the state of a direct run as pushed to the progress hub.
type Progress struct {
	RunID      string `json:"run_id"`
	UserID     string `json:"user_id"`
	Customers  int    `json:"customers"`
	Processed  int    `json:"processed"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
	CustomerID uint   `json:"customer_id,omitempty"`
	Stopped    bool   `json:"stopped"`
	Finished   bool   `json:"finished"`
}

// Run is one sequential send loop. Stop is cooperative: it is checked
// between customers and never interrupts a request already in flight.
type Run struct {
	ID     string
	UserID string

	stop atomic.Bool
	done chan struct{}

	mu       sync.Mutex
	progress Progress
}

func (r *Run) Stop() {
	r.stop.Store(true)
}

func (r *Run) Done() <-chan struct{} {
	return r.done
}

func (r *Run) Snapshot() Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.progress
}

func (r *Run) update(fn func(p *Progress)) Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.progress)
	return r.progress
}

// StartDirect loads and validates the batch, then sends it in the
// background one message at a time. Fetch failures are returned before
// anything is sent.
func (o *Orchestrator) StartDirect(ctx context.Context, req Request) (*Run, error) {
	if o.WhatsApp == nil {
		return nil, failf(CategoryValidation, "direct sending is not configured")
	}

	b, err := o.load(ctx, req)
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:     uuid.New().String(),
		UserID: req.UserID,
		done:   make(chan struct{}),
	}
	run.progress = Progress{RunID: run.ID, UserID: req.UserID, Customers: len(b.customers)}

	o.mu.Lock()
	if o.runs == nil {
		o.runs = make(map[string]*Run)
	}
	o.runs[run.ID] = run
	o.mu.Unlock()

	delay := time.Duration(o.delaySeconds(req)) * time.Second
	go o.runDirect(context.WithoutCancel(ctx), run, b, delay)

	log.WithFields(log.Fields{"run_id": run.ID, "user_id": req.UserID, "customers": len(b.customers)}).
		Info("Direct send started")
	return run, nil
}

// Stop raises the stop flag of a run owned by userID.
func (o *Orchestrator) Stop(userID, runID string) bool {
	o.mu.Lock()
	run, ok := o.runs[runID]
	o.mu.Unlock()
	if !ok || run.UserID != userID {
		return false
	}
	run.Stop()
	return true
}

func (o *Orchestrator) runDirect(ctx context.Context, run *Run, b *batch, delay time.Duration) {
	defer func() {
		o.mu.Lock()
		delete(o.runs, run.ID)
		o.mu.Unlock()
		close(run.done)
	}()

	first := true
	for _, c := range b.customers {
		if run.stop.Load() {
			run.update(func(p *Progress) { p.Stopped = true })
			break
		}

		comp := b.compose(c)
		sent, failed := 0, 0
		for _, phone := range recipients(c) {
			for _, text := range comp.Texts() {
				if !first && delay > 0 {
					if err := o.wait(ctx, delay); err != nil {
						return
					}
				}
				first = false

				if _, err := o.WhatsApp.SendText(ctx, phone, text); err != nil {
					log.WithError(err).WithFields(log.Fields{"run_id": run.ID, "customer_id": c.ID}).
						Warn("Direct send failed")
					failed++
					continue
				}
				sent++
			}
		}

		p := run.update(func(p *Progress) {
			p.Processed++
			p.Sent += sent
			p.Failed += failed
			p.CustomerID = c.ID
		})
		if o.Notifier != nil {
			o.Notifier.NotifySendProgress(p)
		}
	}

	p := run.update(func(p *Progress) { p.Finished = true })
	if o.Notifier != nil {
		o.Notifier.NotifySendFinished(p)
	}
	log.WithFields(log.Fields{
		"run_id":  run.ID,
		"sent":    p.Sent,
		"failed":  p.Failed,
		"stopped": p.Stopped,
	}).Info("Direct send finished")
}

// recipients returns the customer's distinct, non-empty phone numbers.
func recipients(c models.Customer) []string {
	var phones []string
	if c.Phone != "" {
		phones = append(phones, c.Phone)
	}
	if c.Phone2 != "" && c.Phone2 != c.Phone {
		phones = append(phones, c.Phone2)
	}
	return phones
}

func (o *Orchestrator) wait(ctx context.Context, d time.Duration) error {
	if o.sleep != nil {
		return o.sleep(ctx, d)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
