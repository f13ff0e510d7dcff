// Package sender prepares personalized batches for a user's customers and
// hands them to the background sending service, or sends them one by one
// over the WhatsApp Cloud API.
package sender

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/directory"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/personalize"

	log "github.com/sirupsen/logrus"
)

type CustomerSource interface {
	ListForUser(ctx context.Context, userID string, f directory.CustomerFilter) ([]models.Customer, error)
}

type TemplateSource interface {
	GetForUser(ctx context.Context, userID string, id uint) (*models.Template, error)
	DefaultForUser(ctx context.Context, userID string) (*models.Template, error)
}

type ETASource interface {
	ForAreas(ctx context.Context, userID string, areaIDs []uint) (map[uint]models.ETA, error)
}

type BatchSubmitter interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
	Status(ctx context.Context, processID string) (map[string]interface{}, error)
}

type TextSender interface {
	SendText(ctx context.Context, to, body string) (string, error)
}

// Notifier receives direct-send progress.
type Notifier interface {
	NotifySendProgress(data interface{})
	NotifySendFinished(data interface{})
}

// Request selects what to send and to whom.
type Request struct {
	UserID       string `json:"-"`
	TemplateID   uint   `json:"template_id"`
	CustomerIDs  []uint `json:"customer_ids"`
	AreaIDs      []uint `json:"area_ids"`
	DelaySeconds int    `json:"delay_seconds"`
	SessionID    string `json:"session_id"`
	Combined     bool   `json:"combined"`
}

type Orchestrator struct {
	Customers CustomerSource
	Templates TemplateSource
	Areas     directory.AreaReader
	ETAs      ETASource
	Submitter BatchSubmitter
	Processes *ProcessStore
	WhatsApp  TextSender
	Notifier  Notifier

	DefaultDelay time.Duration

	sleep func(ctx context.Context, d time.Duration) error

	mu   sync.Mutex
	runs map[string]*Run
}

// CustomerPreview is the composed output for one customer.
type CustomerPreview struct {
	CustomerID uint                              `json:"customer_id"`
	Name       string                            `json:"name"`
	Phone      string                            `json:"phone"`
	Messages   []personalize.PersonalizedMessage `json:"messages"`
	Combined   string                            `json:"combined,omitempty"`
}

// BackgroundResult is what the user sees after a background submission.
type BackgroundResult struct {
	ProcessID     string `json:"process_id"`
	Estimate      string `json:"estimate"`
	CustomerCount int    `json:"customer_count"`
	MessageCount  int    `json:"message_count"`
}

// batch is the fetched input of one preview or send attempt.
type batch struct {
	template  *models.Template
	body      personalize.Body
	customers []models.Customer
	areas     map[uint]models.Area
	etas      map[uint]models.ETA
}

func (b *batch) area(id uint) *models.Area {
	a, ok := b.areas[id]
	if !ok {
		return nil
	}
	return &a
}

// eta returns the ETA text for an area, or "" when the user set none.
func (b *batch) eta(areaID uint) string {
	row, ok := b.etas[areaID]
	if !ok {
		return ""
	}
	return personalize.ETAText(row)
}

func (b *batch) compose(c models.Customer) personalize.Composition {
	return personalize.ComposeMessages(b.body, c, b.eta(c.AreaID), b.area(c.AreaID))
}

// load fetches everything a batch needs. Any failure aborts the attempt.
func (o *Orchestrator) load(ctx context.Context, req Request) (*batch, error) {
	if req.UserID == "" {
		return nil, failf(CategoryValidation, "user id is required")
	}

	var (
		tmpl *models.Template
		err  error
	)
	if req.TemplateID == 0 {
		tmpl, err = o.Templates.DefaultForUser(ctx, req.UserID)
	} else {
		tmpl, err = o.Templates.GetForUser(ctx, req.UserID, req.TemplateID)
	}
	if errors.Is(err, directory.ErrNotFound) {
		return nil, fail(CategoryValidation, err)
	}
	if err != nil {
		return nil, fail(CategoryFetch, err)
	}

	body := personalize.FromTemplate(*tmpl)
	if body.IsEmpty() {
		return nil, fail(CategoryValidation, directory.ErrEmptyTemplate)
	}

	customers, err := o.Customers.ListForUser(ctx, req.UserID, directory.CustomerFilter{
		IDs:     req.CustomerIDs,
		AreaIDs: req.AreaIDs,
	})
	if err != nil {
		return nil, fail(CategoryFetch, err)
	}
	if len(customers) == 0 {
		return nil, failf(CategoryValidation, "no customers selected")
	}

	areaIDs := distinctAreaIDs(customers)
	areas, err := o.Areas.GetMany(ctx, areaIDs)
	if err != nil {
		return nil, fail(CategoryFetch, err)
	}
	etas, err := o.ETAs.ForAreas(ctx, req.UserID, areaIDs)
	if err != nil {
		return nil, fail(CategoryFetch, err)
	}

	return &batch{template: tmpl, body: body, customers: customers, areas: areas, etas: etas}, nil
}

func distinctAreaIDs(customers []models.Customer) []uint {
	seen := make(map[uint]bool)
	var ids []uint
	for _, c := range customers {
		if c.AreaID == 0 || seen[c.AreaID] {
			continue
		}
		seen[c.AreaID] = true
		ids = append(ids, c.AreaID)
	}
	return ids
}

// Preview composes the messages for every selected customer without sending.
func (o *Orchestrator) Preview(ctx context.Context, req Request) ([]CustomerPreview, error) {
	b, err := o.load(ctx, req)
	if err != nil {
		return nil, err
	}

	previews := make([]CustomerPreview, 0, len(b.customers))
	for _, c := range b.customers {
		p := CustomerPreview{
			CustomerID: c.ID,
			Name:       c.Name,
			Phone:      c.Phone,
			Messages:   b.compose(c).Messages,
		}
		if req.Combined {
			p.Combined = personalize.ComposeDualLanguagePreview(b.body, c, b.area(c.AreaID))
		}
		previews = append(previews, p)
	}
	return previews, nil
}

// records turns the loaded customers into background records, in input
// order.
func (b *batch) records() ([]BatchRecord, int) {
	records := make([]BatchRecord, 0, len(b.customers))
	total := 0
	for _, c := range b.customers {
		comp := b.compose(c)
		area := c.Area
		if len(comp.Messages) > 0 {
			area = comp.Messages[0].AreaName
		}
		records = append(records, BatchRecord{
			CustomerID: c.ID,
			Name:       c.Name,
			Phone:      c.Phone,
			Phone2:     c.Phone2,
			Messages:   comp.Texts(),
			Languages:  comp.Languages(),
			Area:       area,
		})
		total += len(comp.Messages)
	}
	return records, total
}

// SubmitBackground composes the whole batch and submits it once to the
// background service. A rejected submission is terminal; nothing is sent
// through another path.
func (o *Orchestrator) SubmitBackground(ctx context.Context, req Request) (*BackgroundResult, error) {
	b, err := o.load(ctx, req)
	if err != nil {
		return nil, err
	}

	records, total := b.records()
	delay := o.delaySeconds(req)

	resp, err := o.Submitter.Submit(ctx, SubmitRequest{
		UserID:       req.UserID,
		Customers:    records,
		DelaySeconds: delay,
		SessionID:    req.SessionID,
	})
	if err != nil {
		log.WithError(err).WithField("user_id", req.UserID).Error("Background submission failed")
		return nil, fail(CategorySubmit, err)
	}

	result := &BackgroundResult{
		ProcessID:     resp.ProcessID,
		Estimate:      resp.Estimate,
		CustomerCount: len(records),
		MessageCount:  total,
	}

	if o.Processes != nil {
		err := o.Processes.Record(ctx, &models.SendProcess{
			ProcessID:     resp.ProcessID,
			UserID:        req.UserID,
			TemplateID:    b.template.ID,
			SessionID:     req.SessionID,
			CustomerCount: result.CustomerCount,
			MessageCount:  result.MessageCount,
			DelaySeconds:  delay,
			Estimate:      resp.Estimate,
		})
		if err != nil {
			// the batch is already with the service; only our bookkeeping is lost
			log.WithError(err).WithField("process_id", resp.ProcessID).Warn("Could not record send process")
		}
	}

	log.WithFields(log.Fields{
		"user_id":    req.UserID,
		"process_id": resp.ProcessID,
		"customers":  result.CustomerCount,
		"messages":   result.MessageCount,
	}).Info("Batch submitted to background service")
	return result, nil
}

// ProcessStatus asks the background service how a submitted process is doing.
func (o *Orchestrator) ProcessStatus(ctx context.Context, processID string) (map[string]interface{}, error) {
	if processID == "" {
		return nil, failf(CategoryValidation, "process id is required")
	}
	status, err := o.Submitter.Status(ctx, processID)
	if err != nil {
		return nil, fail(CategoryFetch, err)
	}
	return status, nil
}

func (o *Orchestrator) delaySeconds(req Request) int {
	if req.DelaySeconds > 0 {
		return req.DelaySeconds
	}
	return int(o.DefaultDelay / time.Second)
}
