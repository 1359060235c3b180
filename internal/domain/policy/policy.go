// Package policy holds the per-action authorization table for businesses and offers.
// Decisions depend only on the acting subject, the action and, for object-level
// actions, the loaded object. No I/O happens here.
package policy

import (
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"

	"github.com/google/uuid"
)

type Resource string

const (
	ResourceBusiness Resource = "business"
	ResourceOffer    Resource = "offer"
)

type Action string

const (
	ActionList          Action = "list"
	ActionRetrieve      Action = "retrieve"
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
	ActionDestroy       Action = "destroy"
	ActionMyBusiness    Action = "my_business"
	ActionMyOffers      Action = "my_offers"
)

// Key identifies one row of the policy table.
type Key struct {
	Resource Resource
	Action   Action
}

// Rule lists the requirements an action places on the acting subject.
type Rule struct {
	// Safe actions need only an authenticated subject.
	Safe bool
	// RequiresBusinessOwner demands a currently entitled subject.
	RequiresBusinessOwner bool
	// RequiresObjectOwnership demands that the subject owns the target object.
	RequiresObjectOwnership bool
}

var (
	read      = Rule{Safe: true}
	create    = Rule{RequiresBusinessOwner: true}
	mutate    = Rule{RequiresBusinessOwner: true, RequiresObjectOwnership: true}
	ownerOnly = Rule{RequiresBusinessOwner: true}
)

var table = map[Key]Rule{
	{ResourceBusiness, ActionList}:          read,
	{ResourceBusiness, ActionRetrieve}:      read,
	{ResourceBusiness, ActionMyBusiness}:    read,
	{ResourceBusiness, ActionCreate}:        create,
	{ResourceBusiness, ActionUpdate}:        mutate,
	{ResourceBusiness, ActionPartialUpdate}: mutate,
	{ResourceBusiness, ActionDestroy}:       mutate,

	{ResourceOffer, ActionList}:          read,
	{ResourceOffer, ActionRetrieve}:      read,
	{ResourceOffer, ActionMyOffers}:      ownerOnly,
	{ResourceOffer, ActionCreate}:        create,
	{ResourceOffer, ActionUpdate}:        mutate,
	{ResourceOffer, ActionPartialUpdate}: mutate,
	{ResourceOffer, ActionDestroy}:       mutate,
}

// RuleFor returns the rule registered for key.
func RuleFor(key Key) (Rule, bool) {
	rule, ok := table[key]

	return rule, ok
}

// Subject is the acting user as seen by the policy.
type Subject struct {
	UserID          uuid.UUID
	Authenticated   bool
	IsBusinessOwner bool
	IsStaff         bool
}

// SubjectOf builds a Subject from a resolved user. A nil user is anonymous.
func SubjectOf(user *entity.User) Subject {
	if user == nil {
		return Subject{}
	}

	return Subject{
		UserID:          user.ID,
		Authenticated:   true,
		IsBusinessOwner: user.IsBusinessOwner,
		IsStaff:         user.IsStaff,
	}
}

// Object is anything with an owning user.
type Object interface {
	OwnedBy(userID uuid.UUID) bool
}

type Reason string

const (
	ReasonNone             Reason = ""
	ReasonUnauthenticated  Reason = "unauthenticated"
	ReasonUnknownAction    Reason = "unknown_action"
	ReasonNotBusinessOwner Reason = "not_business_owner"
	ReasonNotObjectOwner   Reason = "not_object_owner"
)

// Decision is the outcome of Evaluate.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason Reason) Decision { return Decision{Reason: reason} }

// Evaluate decides whether subject may perform key on object. Object may be nil
// for collection-level actions.
//
// Precedence: authentication, known action, safe actions, staff bypass,
// entitlement, object ownership.
func Evaluate(subject Subject, key Key, object Object) Decision {
	if !subject.Authenticated {
		return deny(ReasonUnauthenticated)
	}

	rule, ok := table[key]
	if !ok {
		return deny(ReasonUnknownAction)
	}

	if rule.Safe || subject.IsStaff {
		return allow()
	}

	if rule.RequiresBusinessOwner && !subject.IsBusinessOwner {
		return deny(ReasonNotBusinessOwner)
	}

	if rule.RequiresObjectOwnership && (object == nil || !object.OwnedBy(subject.UserID)) {
		return deny(ReasonNotObjectOwner)
	}

	return allow()
}

// Err converts a denial into the matching application error, or nil when allowed.
func (d Decision) Err(resource Resource) error {
	if d.Allowed {
		return nil
	}

	switch d.Reason {
	case ReasonUnauthenticated:
		return domainerrors.ErrInvalidCredential
	case ReasonNotBusinessOwner:
		return domainerrors.ErrNotBusinessOwner
	case ReasonNotObjectOwner:
		if resource == ResourceOffer {
			return domainerrors.ErrNotOfferObjectOwner
		}

		return domainerrors.ErrNotBusinessObjectOwner
	default:
		return domainerrors.ErrForbidden
	}
}

// Authorize evaluates and converts the decision in one step.
func Authorize(subject Subject, key Key, object Object) error {
	return Evaluate(subject, key, object).Err(key.Resource)
}
