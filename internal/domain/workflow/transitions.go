// Package workflow holds the order state machine: board columns and the
// transitions that move an order between them. Every function here mutates
// the order it is given and appends history; persistence is the caller's job.
package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printdesk/internal/domain/entities"
)

var (
	ErrUnknownColumn      = errors.New("unknown workflow column")
	ErrNoPendingProof     = errors.New("order has no pending proof")
	ErrRejectReason       = errors.New("a reason is required to request changes")
	ErrIssueDescription   = errors.New("issue description is required")
	ErrInvalidIssueType   = errors.New("invalid issue type")
	ErrNoActiveIssue      = errors.New("order has no active issue")
	ErrProofImageRequired = errors.New("proof image url is required")
)

// Move places o in col. A Status Change entry is appended only when the
// display status actually changes. It reports whether the order changed.
func Move(o *entities.Order, col entities.WorkflowColumn, actor entities.Actor, now time.Time) bool {
	from := o.Status
	idChanged := o.StatusColumnID != col.ID
	o.StatusColumnID = col.ID
	if from == col.Title {
		return idChanged
	}
	o.Status = col.Title
	o.AppendHistory(now, actor, entities.ActionStatusChange, fmt.Sprintf("Moved from %s to %s", from, col.Title))
	return true
}

// SendProof attaches the next proof version and parks the order waiting for
// the customer.
func SendProof(o *entities.Order, r Resolver, proofID, imageURL, comment string, actor entities.Actor, now time.Time) (entities.Proof, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return entities.Proof{}, ErrProofImageRequired
	}
	proof := entities.Proof{
		ID:           proofID,
		Version:      len(o.Proofs) + 1,
		ImageURL:     imageURL,
		Status:       entities.ProofStatusPending,
		AdminComment: comment,
		CreatedAt:    now,
	}
	o.Proofs = append(o.Proofs, proof)
	setStage(o, r.Stage(entities.StatusWaitingCustomer))
	o.AppendHistory(now, actor, entities.ActionProofSent, fmt.Sprintf("Proof v%d sent - Waiting confirmation.", proof.Version))
	return proof, nil
}

// RespondToProof records the customer's answer on the latest pending proof.
// Approval sends the order to Ready to Print, a change request back to Refining.
func RespondToProof(o *entities.Order, r Resolver, approve bool, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if !approve && reason == "" {
		return ErrRejectReason
	}
	idx := -1
	for i := len(o.Proofs) - 1; i >= 0; i-- {
		if o.Proofs[i].Status == entities.ProofStatusPending {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNoPendingProof
	}

	responded := now
	proof := &o.Proofs[idx]
	proof.RespondedAt = &responded

	var details, stage string
	if approve {
		proof.Status = entities.ProofStatusApproved
		details = "Approved by Customer"
		stage = entities.StatusReadyToPrint
	} else {
		proof.Status = entities.ProofStatusRejected
		proof.CustomerComment = reason
		details = entities.ChangesRequestedPrefix + reason
		stage = entities.StatusRefining
	}
	setStage(o, r.Stage(stage))
	o.AppendHistory(now, entities.CustomerActor(), entities.ActionCustomerProofResponse, details)
	return nil
}

// RefiningFeedback returns the customer's latest change request. It is empty
// when the latest proof response was an approval.
func RefiningFeedback(o entities.Order) string {
	entry := o.LastHistory(entities.ActionCustomerProofResponse)
	if entry == nil || !strings.HasPrefix(entry.Details, entities.ChangesRequestedPrefix) {
		return ""
	}
	return strings.TrimPrefix(entry.Details, entities.ChangesRequestedPrefix)
}

// ReportIssue flags a production issue and puts the order on hold.
func ReportIssue(o *entities.Order, r Resolver, issueType entities.IssueType, description string, actor entities.Actor, now time.Time) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrIssueDescription
	}
	if issueType == "" {
		issueType = entities.IssueOther
	}
	if !issueType.Valid() {
		return ErrInvalidIssueType
	}
	o.Issue = &entities.Issue{
		Type:        issueType,
		Description: description,
		ReportedAt:  now,
		Active:      true,
	}
	setStage(o, r.Stage(entities.StatusIssueOnHold))
	o.AppendHistory(now, actor, entities.ActionIssueReported, fmt.Sprintf("%s: %s", issueType, description))
	return nil
}

// ResolveIssue clears the active issue. The order stays in its current column
// until someone moves it.
func ResolveIssue(o *entities.Order, actor entities.Actor, now time.Time) error {
	if !o.HasActiveIssue() {
		return ErrNoActiveIssue
	}
	o.Issue.Active = false
	o.AppendHistory(now, actor, entities.ActionIssueResolved, "Issue marked as resolved")
	return nil
}

func setStage(o *entities.Order, col entities.WorkflowColumn) {
	o.Status = col.Title
	o.StatusColumnID = col.ID
}
