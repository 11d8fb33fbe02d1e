package domain

import (
	"errors"
	"slices"
	"time"
)

var ErrInvalidTransition = errors.New("invalid workflow state transition")

// WorkflowState is where a confirmation is in its lifecycle.
type WorkflowState string

const (
	StateValidating        WorkflowState = "VALIDATING"
	StateInvalid           WorkflowState = "INVALID"
	StateConfirmingPayment WorkflowState = "CONFIRMING_PAYMENT"
	StateAborted           WorkflowState = "ABORTED"
	StateCreatingOrder     WorkflowState = "CREATING_ORDER"
	StateCompleted         WorkflowState = "COMPLETED"
	StatePartiallyComplete WorkflowState = "PARTIALLY_COMPLETE"
	StateFailed            WorkflowState = "FAILED"
)

// Workflow tracks one confirmation request. It lives for the duration of
// the request and is never stored.
type Workflow struct {
	IDNumber           ProviderOrderID
	State              WorkflowState
	StartedAt          time.Time
	PaymentConfirmedAt *time.Time
	FinishedAt         *time.Time
}

func NewWorkflow(id ProviderOrderID) *Workflow {
	return &Workflow{
		IDNumber:  id,
		State:     StateValidating,
		StartedAt: time.Now(),
	}
}

func (w *Workflow) RejectInput() error {
	return w.transition(StateInvalid)
}

func (w *Workflow) StartPaymentConfirmation() error {
	return w.transition(StateConfirmingPayment)
}

// Abort records that Cashea did not confirm the down payment.
func (w *Workflow) Abort() error {
	return w.transition(StateAborted)
}

// StartOrderCreation records that Cashea confirmed the down payment.
func (w *Workflow) StartOrderCreation() error {
	if err := w.transition(StateCreatingOrder); err != nil {
		return err
	}
	now := time.Now()
	w.PaymentConfirmedAt = &now
	return nil
}

func (w *Workflow) Complete() error {
	return w.transition(StateCompleted)
}

// CompletePartially records a confirmed payment whose order was refused.
func (w *Workflow) CompletePartially() error {
	return w.transition(StatePartiallyComplete)
}

func (w *Workflow) Fail() error {
	return w.transition(StateFailed)
}

func (w *Workflow) transition(target WorkflowState) error {
	if err := w.canTransitionTo(target); err != nil {
		return err
	}
	w.State = target
	if w.IsTerminal() {
		now := time.Now()
		w.FinishedAt = &now
	}
	return nil
}

func (w *Workflow) canTransitionTo(target WorkflowState) error {
	switch w.State {
	case StateValidating:
		return allow(target, StateConfirmingPayment, StateInvalid)
	case StateConfirmingPayment:
		return allow(target, StateCreatingOrder, StateAborted, StateFailed)
	case StateCreatingOrder:
		return allow(target, StateCompleted, StatePartiallyComplete, StateFailed)
	}
	return ErrInvalidTransition
}

func allow(target WorkflowState, allowed ...WorkflowState) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return ErrInvalidTransition
}

// PaymentConfirmed stays true once set, so a FAILED workflow tells whether
// money moved before the failure.
func (w *Workflow) PaymentConfirmed() bool {
	return w.PaymentConfirmedAt != nil
}

func (w *Workflow) IsTerminal() bool {
	switch w.State {
	case StateInvalid, StateAborted, StateCompleted, StatePartiallyComplete, StateFailed:
		return true
	default:
		return false
	}
}

// Duration is the time spent so far, or in total once terminal.
func (w *Workflow) Duration() time.Duration {
	if w.FinishedAt != nil {
		return w.FinishedAt.Sub(w.StartedAt)
	}
	return time.Since(w.StartedAt)
}
